package evolife

import "math"

const fertileThreshold = 0.1

// cycles holds the generation-wide environmental coefficients that feed the
// fitness function.
type cycles struct {
	phase  float64
	energy float64
}

func cyclesFor(p *Params, gen uint32) cycles {
	phase := 2 * math.Pi * float64(gen) / float64(p.EnvironmentCycle)
	return cycles{phase: phase, energy: 1 + 0.3*math.Sin(phase)}
}

// raceBehavior is the per-race dispatch entry: when a cell of that race
// moves, and how much its fitness is boosted.
type raceBehavior struct {
	moves func(p *Params, counter uint32, neighbors int) bool
	bonus func(niche float64, c cycles) float64
}

var raceBehaviors = [raceCount]raceBehavior{
	RaceExplorer: {
		moves: func(p *Params, counter uint32, neighbors int) bool {
			return neighbors <= 2 && counter%uint32(p.FastMovementPeriod) == 0
		},
		bonus: func(niche float64, _ cycles) float64 { return 1 + 0.2*(1-niche) },
	},
	RaceColonizer: {
		moves: func(p *Params, counter uint32, neighbors int) bool {
			return neighbors == 0 && counter%uint32(p.SlowMovementPeriod) == 0
		},
		bonus: func(niche float64, _ cycles) float64 { return 1 + 0.2*niche },
	},
	RaceNomad: {
		moves: func(p *Params, counter uint32, _ int) bool {
			return counter%uint32(p.FastMovementPeriod) == 0
		},
		bonus: func(_ float64, c cycles) float64 { return 1 + 0.1*c.energy },
	},
	RaceAdaptive: {
		moves: func(p *Params, counter uint32, neighbors int) bool {
			return (neighbors > 4 || neighbors == 0) && counter%uint32(p.FastMovementPeriod+1) == 0
		},
		bonus: func(_ float64, c cycles) float64 { return 1 + 0.15*math.Abs(math.Sin(c.phase*2)) },
	},
}

var inertBehavior = raceBehavior{
	moves: func(*Params, uint32, int) bool { return false },
	bonus: func(float64, cycles) float64 { return 1 },
}

func behaviorOf(r Race) raceBehavior {
	if int(r) < len(raceBehaviors) {
		return raceBehaviors[r]
	}
	return inertBehavior
}

// Fertility maps age onto the 0..1 reproduction curve: zero before onset, a
// linear ramp to the optimal age, a plateau until decline, then a linear fall
// to zero at MaxAge.
func (p *Params) Fertility(age uint8) float64 {
	a := int(age)
	switch {
	case a < p.FertilityOnset, a >= p.MaxAge:
		return 0
	case a <= p.FertilityOptimal:
		return float64(a-p.FertilityOnset) / float64(p.FertilityOptimal-p.FertilityOnset)
	case a <= p.FertilityDecline:
		return 1
	default:
		return 1 - float64(a-p.FertilityDecline)/float64(p.MaxAge-p.FertilityDecline)
	}
}

// fitness scores a parent for reproduction into position (x, y).
func (w *World) fitness(c *Cell, x, y int, cyc cycles) uint8 {
	p := &w.cfg.Params
	byAge := p.Fertility(c.Age)

	dx := 2*float64(x)/float64(w.grid.W) - 1
	dy := 2*float64(y)/float64(w.grid.H) - 1
	niche := 1 - 0.3*(dx*dx+dy*dy)

	bonus := behaviorOf(c.Race).bonus(niche, cyc)
	efficiency := float64(c.EnergyEfficiency) / 255
	effBonus := 1 + 0.25*efficiency*cyc.energy

	return saturateByte(float64(p.FitnessAmplitude) * byAge * cyc.energy * niche * bonus * effBonus)
}

// speciesAt labels the quadrant containing (x, y): 1 NW, 2 NE, 3 SW, 4 SE.
func speciesAt(x, y, width, height int) uint8 {
	west := 2*x < width
	north := 2*y < height
	switch {
	case west && north:
		return 1
	case north:
		return 2
	case west:
		return 3
	default:
		return 4
	}
}
