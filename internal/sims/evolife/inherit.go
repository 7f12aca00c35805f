package evolife

import "evo-ca/pkg/core"

const (
	traitMutationSpan      = 10
	resistanceMutationSpan = 15
	genotypeMutationSpan   = 20
	inheritedOffsetSpan    = 10
	polarizationJitter     = 2
)

// mutateTrait draws once and, with probability rate%, shifts v by a uniform
// offset in [-span, span]. The result saturates at 0 and 255.
func mutateTrait(v int, rng *core.LCG, rate, span int) uint8 {
	r := rng.Next()
	if r%100 < uint32(max(rate, 0)) {
		v += offset(r>>8, span)
	}
	return clampByte(v)
}

// offset maps a draw onto [-span, span].
func offset(r uint32, span int) int {
	return int(r%uint32(2*span+1)) - span
}

// wrapOffset adds a signed offset modulo 256.
func wrapOffset(v uint8, delta int) uint8 {
	return uint8(int(v) + delta)
}

func (w *World) inheritAge(parents []*Cell, rng *core.LCG) uint8 {
	p := &w.cfg.Params
	sum := 0
	for _, par := range parents {
		sum += int(par.Age)
	}
	age := sum / len(parents) * p.AgeHeredity / 100

	r := rng.Next()
	if r%100 < uint32(p.MutationRate) {
		age = max(age+offset(r>>8, p.AgeMutationSpan), 0)
	}
	return clampByte(age)
}

// inheritRace keeps the first parent's race, hybridises into Adaptive when
// the parents disagree, or mutates to a random race.
func (w *World) inheritRace(parents []*Cell, rng *core.LCG) Race {
	p := &w.cfg.Params
	dominant := parents[0].Race
	mixed := false
	for _, par := range parents[1:] {
		if par.Race != dominant {
			mixed = true
			break
		}
	}

	r := rng.Next()
	roll := r % 100
	switch {
	case mixed && roll < uint32(p.HybridChance):
		return RaceAdaptive
	case roll < uint32(p.RaceInheritance):
		return dominant
	default:
		return Race((r >> 8) % raceCount)
	}
}

func inheritPolarization(parents []*Cell, rng *core.LCG) Direction {
	sum := 0
	for _, par := range parents {
		sum += int(par.Polarization)
	}
	mean := sum / len(parents)
	jitter := offset(rng.Next(), polarizationJitter)
	return Direction((mean + jitter + directionCount) % directionCount)
}

// stressLevel weighs the normalised environmental pressures at a birth site.
func (w *World) stressLevel(env *Environment, neighbors int) float64 {
	stress := 0.0
	stress += float64(env.PathogenPresence) / 255 * 0.3
	stress += float64(env.PredationPressure) / 255 * 0.4
	stress += float64(env.LocalToxicity) / 255 * 0.2
	if neighbors > w.cfg.Params.MigrationThreshold {
		stress += 0.1
	}
	return stress
}

func meanOf(parents []*Cell, trait func(*Cell) uint8) int {
	sum := 0
	for _, par := range parents {
		sum += int(trait(par))
	}
	return sum / len(parents)
}
