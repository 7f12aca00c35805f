package evolife

import "math"

// Environment is the local ecological state of one grid position. It
// persists across generations regardless of whether the cell lives.
type Environment struct {
	Nutrients              uint8
	Temperature            uint8
	PredationPressure      uint8
	PathogenPresence       uint8
	LocalToxicity          uint8
	TerritorialCompetition uint8
}

const (
	neutralTemperature = 128

	toxicDensity    = 6
	toxicityPerCell = 20
	toxicityDecay   = 5

	densePathogenThreshold = 4
	densePathogenFactor    = 1.5
	sparsePathogenFactor   = 0.8
)

func (w *World) resetEnvironment() Environment {
	return Environment{
		Nutrients:   uint8(w.cfg.Params.InitialNutrients),
		Temperature: neutralTemperature,
	}
}

// seasonalAvailability is the fraction of InitialNutrients the soil can hold
// at generation gen.
func seasonalAvailability(p *Params, gen uint32) float64 {
	phase := 2 * math.Pi * float64(gen) / float64(p.FoodCycle)
	return 0.6 + 0.4*math.Sin(phase+math.Pi/2)
}

// NutrientCeiling reports the nutrient level the environment drifts toward
// during generation gen.
func (w *World) NutrientCeiling(gen uint32) int {
	p := &w.cfg.Params
	return int(float64(p.InitialNutrients) * seasonalAvailability(p, gen))
}

// updateEnvironment refreshes every environment entry from the global cycles
// and the live density around it. It runs once per generation, before the
// cell pass, and reads only the current cell buffer.
func (w *World) updateEnvironment() {
	p := &w.cfg.Params
	gen := w.generation
	cells := w.cells[w.cur]
	width, height := w.grid.W, w.grid.H

	ceiling := w.NutrientCeiling(gen)
	predation := 0.5 + 0.5*math.Sin(2*math.Pi*float64(gen)/float64(p.PredationCycle))
	epidemic := math.Abs(math.Sin(2 * math.Pi * float64(gen) / float64(p.EpidemicCycle)))
	halfW := max(width/2, 1)
	halfH := max(height/2, 1)

	for y := 0; y < height; y++ {
		by := edgeRatio(y, height, halfH)
		for x := 0; x < width; x++ {
			idx := y*width + x
			env := &w.env[idx]

			density := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if cells[w.grid.WrapIndex(x+dx, y+dy)].Alive {
						density++
					}
				}
			}

			n := int(env.Nutrients)
			if n < ceiling {
				n += p.NutrientRegeneration
				if n > ceiling {
					n = ceiling
				}
			} else if n > ceiling {
				n--
			}
			env.Nutrients = clampByte(n)

			bx := edgeRatio(x, width, halfW)
			edge := 1 - (bx+by)/2
			env.PredationPressure = saturateByte(predation * (0.3 + 0.7*edge) * float64(p.PredationPressure))

			factor := sparsePathogenFactor
			if density > densePathogenThreshold {
				factor = densePathogenFactor
			}
			env.PathogenPresence = saturateByte(epidemic * factor * float64(p.EpidemicMortality))

			env.TerritorialCompetition = 0
			if density > p.MigrationThreshold {
				env.TerritorialCompetition = clampByte(density * p.TerritorialCompetition)
			}

			if density > toxicDensity {
				env.LocalToxicity = clampByte((density - toxicDensity) * toxicityPerCell)
			} else {
				env.LocalToxicity = clampByte(int(env.LocalToxicity) - toxicityDecay)
			}
		}
	}
}

// edgeRatio is 0 on the border and approaches 1 towards the middle of an
// axis of length size.
func edgeRatio(pos, size, half int) float64 {
	if pos < size/2 {
		return float64(pos) / float64(half)
	}
	return float64(size-pos) / float64(half)
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// saturateByte truncates v toward zero into 0..255.
func saturateByte(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
