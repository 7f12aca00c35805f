package evolife

import (
	"evo-ca/internal/core"
	pcore "evo-ca/pkg/core"
)

const clusterStreamMask = 0x9ABCDEF0

// Initialize clears the world and seeds generation 0 with the given
// strategy. Unknown strategies fall back to clusters. A zero seed is replaced
// by the default seed.
func (w *World) Initialize(strategy Strategy, seed uint32) {
	if w.empty() {
		return
	}
	w.wipe()
	rng := pcore.NewLCG(seed)
	w.seed = rng.Value()
	switch strategy {
	case StrategyUniform:
		w.seedUniform(&rng)
	case StrategyCenter:
		w.seedCenter(&rng)
	default:
		strategy = StrategyClusters
		w.seedClusters(rng)
	}
	w.strategy = strategy
	w.population = w.countAlive()
	w.refreshDisplay()
}

func (w *World) seedUniform(rng *pcore.LCG) {
	p := &w.cfg.Params
	threshold := pcore.PercentThreshold((p.DensityMin + p.DensityMax) / 2)
	cells := w.cells[w.cur]
	for i := range cells {
		if rng.Next() < threshold {
			w.randomizeCell(&cells[i], rng)
		}
	}
}

// seedCenter scales density from DensityMax at the centre down to
// DensityMin at the border.
func (w *World) seedCenter(rng *pcore.LCG) {
	p := &w.cfg.Params
	width, height := w.grid.W, w.grid.H
	halfW, halfH := max(width/2, 1), max(height/2, 1)
	cells := w.cells[w.cur]
	for y := 0; y < height; y++ {
		dy := float64(absInt(y-height/2)) / float64(halfH)
		for x := 0; x < width; x++ {
			r := rng.Next()
			dx := float64(absInt(x-width/2)) / float64(halfW)
			dist := (dx + dy) / 2
			density := p.DensityMax - int(float64(p.DensityMax-p.DensityMin)*dist)
			if r < pcore.PercentThreshold(density) {
				w.randomizeCell(&cells[y*width+x], rng)
			}
		}
	}
}

// randomizeCell brings c to life with traits derived from the draw that
// selected it, plus one more draw for the biological traits.
func (w *World) randomizeCell(c *Cell, rng *pcore.LCG) {
	p := &w.cfg.Params
	r := rng.Value()
	c.Alive = true
	c.Age = clampByte(p.FertilityOnset + int(r%uint32(p.FertilityOptimal-p.FertilityOnset)))
	c.SurvivalGenotype = uint8(100 + r%56)
	c.BirthGenotype = uint8(100 + (r>>8)%56)
	c.Health = birthHealth
	c.Race = Race(r % raceCount)
	c.Polarization = Direction((r >> 4) % directionCount)
	c.PolarizationStrength = clampByte(p.InitialPolarization + int(r%64))
	c.MovementCounter = r % uint32(p.SlowMovementPeriod)
	c.ReproductiveFitness = uint8(30 + r%40)
	c.EnergyEfficiency = uint8(80 + r%80)
	c.SpeciesID = 0

	r = rng.Next()
	c.DiseaseResistance = uint8(80 + r%50)
	c.PredationCamouflage = uint8(70 + (r>>8)%60)
	c.Territoriality = uint8(60 + (r>>16)%70)
	c.StressAdaptability = uint8(85 + (r>>24)%40)
	c.BirthGeneration = 0
}

// seedClusters grows blobs: two independent streams are combined per cell and
// the threshold rises near the centre and next to already placed cells. Only
// age, genotypes and health are set; other traits keep their dead defaults.
func (w *World) seedClusters(g1 pcore.LCG) {
	p := &w.cfg.Params
	g2 := pcore.LCG2(g1.Value() ^ clusterStreamMask)

	base := uint64(pcore.PercentThreshold(p.DensityMin))
	variation := uint64(pcore.PercentThreshold(p.DensityMax)) - base
	bonus := uint64(pcore.PercentThreshold(p.ClusterBonus))

	width, height := w.grid.W, w.grid.H
	span := uint64(width + height)
	cells := w.cells[w.cur]
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := g1.Next()
			b := g2.Next()

			dist := absInt(x-width/2) + absInt(y-height/2)
			threshold := base + variation*(span-uint64(dist))/span
			if w.hasPlacedNeighbor(x, y) {
				threshold += bonus
			}

			combined := (a ^ (b >> 3)) + uint32(y*7+x*11)
			if uint64(combined) < threshold {
				c := &cells[y*width+x]
				c.Alive = true
				c.Age = clampByte(p.FertilityOnset + int(a%uint32(p.FertilityOptimal-p.FertilityOnset)))
				c.SurvivalGenotype = uint8(100 + a%56)
				c.BirthGenotype = uint8(100 + (b>>8)%56)
				c.Health = birthHealth
			}
		}
	}
}

// hasPlacedNeighbor reports whether any in-bounds neighbour is alive. It does
// not wrap.
func (w *World) hasPlacedNeighbor(x, y int) bool {
	cells := w.cells[w.cur]
	for _, off := range core.MooreOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || ny < 0 || nx >= w.grid.W || ny >= w.grid.H {
			continue
		}
		if cells[ny*w.grid.W+nx].Alive {
			return true
		}
	}
	return false
}

func (w *World) countAlive() int {
	n := 0
	for _, c := range w.cells[w.cur] {
		if c.Alive {
			n++
		}
	}
	return n
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
