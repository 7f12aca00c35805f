package evolife

import (
	"evo-ca/internal/core"
	pcore "evo-ca/pkg/core"
)

// World is an evolutionary automaton on a toroidal grid. Two cell buffers
// alternate as current and next; environment state is a single persistent
// layer updated in place.
type World struct {
	cfg  Config
	grid core.Torus

	birthMask    uint16
	survivalMask uint16

	cells [2][]Cell
	cur   int
	env   []Environment

	generation uint32
	population int
	strategy   Strategy
	seed       uint32

	display []uint8
	moved   []bool
	parents [8]*Cell
}

// New creates a world of the given size using the default configuration.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	return NewWithConfig(cfg)
}

// NewWithConfig creates a world from cfg. The grid starts all dead; call
// Reset or Initialize to seed it.
func NewWithConfig(cfg Config) *World {
	cfg.Sanitize()
	w := &World{cfg: cfg, grid: core.NewTorus(cfg.Width, cfg.Height)}
	w.birthMask, w.survivalMask = ParseRules(cfg.Rules)

	n := w.grid.Len()
	w.cells[0] = make([]Cell, n)
	w.cells[1] = make([]Cell, n)
	w.env = make([]Environment, n)
	w.display = make([]uint8, n)
	w.moved = make([]bool, n)
	w.wipe()
	return w
}

// Name identifies the simulation.
func (w *World) Name() string { return "evolife" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Cells exposes the display encoding of the current generation. See
// DisplayValue.
func (w *World) Cells() []uint8 { return w.display }

// Config returns a copy of the active configuration.
func (w *World) Config() Config { return w.cfg }

// Generation returns the number of completed steps since initialization.
func (w *World) Generation() uint32 { return w.generation }

// Population returns the number of live cells.
func (w *World) Population() int { return w.population }

// Rules returns the active rule masks in canonical text form.
func (w *World) Rules() string { return FormatRules(w.birthMask, w.survivalMask) }

// SetRules replaces the birth and survival masks. The grid is untouched.
func (w *World) SetRules(spec string) {
	w.cfg.Rules = spec
	w.birthMask, w.survivalMask = ParseRules(spec)
}

// Reset seeds the grid with the configured strategy. A zero seed falls back
// to the configured one. Only the low 32 bits of seed reach the generator, so
// a nonzero multiple of 1<<32 seeds like zero and takes pcore.DefaultSeed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.Initialize(w.cfg.Strategy, uint32(seed&0xFFFFFFFF))
}

func (w *World) empty() bool {
	return w == nil || len(w.cells[0]) == 0
}

// wipe resets both buffers to dead cells and the environment to its base
// values.
func (w *World) wipe() {
	dead := DeadCell()
	base := w.resetEnvironment()
	for i := range w.env {
		w.cells[0][i] = dead
		w.cells[1][i] = dead
		w.env[i] = base
	}
	w.cur = 0
	w.generation = 0
	w.population = 0
}

// Step advances the automaton by one generation.
func (w *World) Step() {
	if w.empty() {
		return
	}
	rng := pcore.ForGeneration(w.generation)
	w.updateEnvironment()

	cur := w.cells[w.cur]
	nxt := w.cells[1-w.cur]
	cyc := cyclesFor(&w.cfg.Params, w.generation)
	population := 0

	width, height := w.grid.W, w.grid.H
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			next := &nxt[idx]
			*next = DeadCell()

			neighbors, parents := w.gather(cur, x, y)
			env := &w.env[idx]
			if cur[idx].Alive {
				w.survive(&cur[idx], next, env, neighbors, &rng)
			} else if len(parents) > 0 {
				w.birth(parents, next, env, x, y, neighbors, cyc, &rng)
			}
			if next.Alive {
				population++
			}
		}
	}

	w.cur = 1 - w.cur
	w.population = population
	if w.generation%uint32(w.cfg.Params.MovementInterval) == 0 {
		w.move(&rng)
	}
	w.generation++
	w.refreshDisplay()
}

// gather counts live Moore neighbours of (x, y) and collects the fertile ones
// as potential parents, in scan order.
func (w *World) gather(cells []Cell, x, y int) (int, []*Cell) {
	p := &w.cfg.Params
	neighbors := 0
	parents := w.parents[:0]
	for _, off := range core.MooreOffsets {
		n := &cells[w.grid.WrapIndex(x+off[0], y+off[1])]
		if !n.Alive {
			continue
		}
		neighbors++
		if p.Fertility(n.Age) > fertileThreshold && len(parents) < len(w.parents) {
			parents = append(parents, n)
		}
	}
	return neighbors, parents
}

// survive evaluates a live cell. Causes of death are checked in order and
// the first one that applies leaves next as a dead cell.
func (w *World) survive(c, next *Cell, env *Environment, neighbors int, rng *pcore.LCG) {
	p := &w.cfg.Params

	step := 1
	if int(c.Age) > p.AgingAcceleration {
		step = p.AgingFactor
	}
	age := int(c.Age) + step
	if age >= p.MaxAge {
		return
	}

	health := int(c.Health)
	consumption := p.NutrientConsumption
	if neighbors >= p.CompetitionThreshold {
		share := int(env.Nutrients) / (1 + neighbors/2)
		if share >= consumption {
			env.Nutrients = clampByte(int(env.Nutrients) - consumption)
			if health > p.CompetitionStress {
				health -= p.CompetitionStress
			}
		} else {
			health = max(health-3, 0)
		}
	} else if int(env.Nutrients) >= consumption {
		env.Nutrients = clampByte(int(env.Nutrients) - consumption)
		health = min(health+1, maxHealth)
	} else {
		health = max(health-2, 0)
	}

	if age > p.FertilityDecline {
		health = max(health-(age-p.FertilityDecline)/20, 0)
	}

	if env.PathogenPresence > 0 {
		r := rng.Next()
		resistance := float64(c.DiseaseResistance) / 255
		risk := float64(env.PathogenPresence) / 255
		if float64(r%1000)/1000 > resistance/(risk+0.1) {
			return
		}
	}

	if env.PredationPressure > 0 {
		r := rng.Next()
		escape := float64(c.PredationCamouflage) / 255
		risk := float64(env.PredationPressure) / 255
		if float64(r%1000)/1000 > escape && risk > p.PredationMinimum {
			return
		}
	}

	if env.LocalToxicity > 100 {
		health = max(health-2, 0)
	}
	if health < 1 {
		return
	}

	instability := 0
	if age > p.InstabilityAge {
		instability += (age - p.InstabilityAge) / 10
	}
	instability += int(uint64(w.generation) * uint64(p.GenerationInstability) / 10000)
	r := rng.Next()
	if int(r%1000) < instability && (r>>8)%100 < uint32(p.InstabilityDeathChance) {
		return
	}

	if neighbors >= p.FatalDensity {
		if rng.Next()%100 < uint32(p.DensityDeathChance) {
			return
		}
	}

	if w.adjustedSurvivalMask(c.SurvivalGenotype, neighbors)&(1<<neighbors) == 0 {
		return
	}

	*next = *c
	next.Age = clampByte(age)
	next.Health = uint8(health)
	next.MovementCounter++
}

// adjustedSurvivalMask applies the per-cell genotype tweak to the global
// survival mask.
func (w *World) adjustedSurvivalMask(genotype uint8, neighbors int) uint16 {
	mask := w.survivalMask
	switch {
	case genotype > genotypeTolerant:
		mask |= 1 << (neighbors + 1)
	case genotype < genotypeSensitive && neighbors > 0:
		mask &^= 1 << (neighbors - 1)
	}
	return mask
}

// birth evaluates a dead cell with at least one fertile parent.
func (w *World) birth(parents []*Cell, next *Cell, env *Environment, x, y, neighbors int, cyc cycles, rng *pcore.LCG) {
	p := &w.cfg.Params
	cost := 2 * p.NutrientConsumption
	if int(env.Nutrients) < cost {
		return
	}

	fitnessSum, fertilitySum := 0.0, 0.0
	for _, par := range parents {
		fertilitySum += p.Fertility(par.Age)
		fitnessSum += float64(w.fitness(par, x, y, cyc)) / 255
	}
	n := float64(len(parents))
	meanFitness := fitnessSum / n
	prob := fertilitySum / n
	prob *= 0.5 + 0.5*meanFitness

	r := rng.Next()
	if w.birthMask&(1<<neighbors) == 0 || float64(r%1000)/1000 >= prob {
		return
	}

	child := DeadCell()
	child.Alive = true
	child.Age = w.inheritAge(parents, rng)
	child.Race = w.inheritRace(parents, rng)
	child.Polarization = inheritPolarization(parents, rng)
	child.PolarizationStrength = clampByte(p.InitialPolarization + int(rng.Value()%64))

	stress := w.stressLevel(env, neighbors)
	rate := p.BaseMutationRate + int(stress*float64(p.StressMutationMultiplier))

	child.ReproductiveFitness = mutateTrait(meanOf(parents, func(c *Cell) uint8 { return c.ReproductiveFitness }), rng, rate, traitMutationSpan)
	child.EnergyEfficiency = mutateTrait(meanOf(parents, func(c *Cell) uint8 { return c.EnergyEfficiency }), rng, rate, traitMutationSpan)
	child.DiseaseResistance = mutateTrait(meanOf(parents, func(c *Cell) uint8 { return c.DiseaseResistance }), rng, p.ResistanceEvolutionRate, resistanceMutationSpan)
	child.PredationCamouflage = mutateTrait(meanOf(parents, func(c *Cell) uint8 { return c.PredationCamouflage }), rng, rate, traitMutationSpan)

	last := rng.Value()
	child.Territoriality = wrapOffset(parents[0].Territoriality, offset(last, inheritedOffsetSpan))
	child.StressAdaptability = wrapOffset(parents[0].StressAdaptability, offset(last>>8, inheritedOffsetSpan))
	child.BirthGeneration = uint8(w.generation)
	child.SpeciesID = speciesAt(x, y, w.grid.W, w.grid.H)

	if neighbors >= 3 && rng.Next()%100 < uint32(p.DispersalChance) {
		return
	}

	genotypeRate := p.MutationRate
	if neighbors >= p.CompetitionThreshold {
		genotypeRate *= 2
	}
	survivalGene := meanOf(parents, func(c *Cell) uint8 { return c.SurvivalGenotype })
	birthGene := meanOf(parents, func(c *Cell) uint8 { return c.BirthGenotype })
	r = rng.Next()
	if r%100 < uint32(genotypeRate) {
		survivalGene += offset(r>>8, genotypeMutationSpan)
		birthGene += offset(r>>16, genotypeMutationSpan)
	}
	child.SurvivalGenotype = clampByte(survivalGene)
	child.BirthGenotype = clampByte(birthGene)
	child.Health = birthHealth

	env.Nutrients = clampByte(int(env.Nutrients) - cost)
	*next = child
}

// move runs the polarised movement pass over the freshly swapped buffer. Each
// cell moves at most once and the movement predicates see the live neighbour
// count. Both depart from the classic pass, which tested every cell with zero
// neighbours and could carry a cell along the scan direction twice.
func (w *World) move(rng *pcore.LCG) {
	p := &w.cfg.Params
	cells := w.cells[w.cur]
	clear(w.moved)

	width, height := w.grid.W, w.grid.H
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			c := &cells[idx]
			if !c.Alive || w.moved[idx] {
				continue
			}
			neighbors := w.grid.CountMoore(x, y, func(i int) bool { return cells[i].Alive })
			if !behaviorOf(c.Race).moves(p, c.MovementCounter, neighbors) {
				continue
			}
			dx, dy := c.Polarization.Delta()
			dest := w.grid.WrapIndex(x+dx, y+dy)
			if cells[dest].Alive {
				continue
			}
			if rng.Next()%100 < uint32(p.MoveChance) {
				cells[dest] = *c
				*c = DeadCell()
				w.moved[dest] = true
			}
		}
	}
}

func init() {
	core.Register("evolife", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
