package evolife

// Sample is the per-cell view handed to a Plotter.
type Sample struct {
	Alive  bool
	Race   Race
	Health uint8
	Age    uint8
}

// Plotter receives one Sample per grid position. Implementations decide how
// to draw it; the engine never touches a display library.
type Plotter interface {
	Plot(x, y int, s Sample)
}

// PlotterFunc adapts a function to the Plotter interface.
type PlotterFunc func(x, y int, s Sample)

// Plot calls f(x, y, s).
func (f PlotterFunc) Plot(x, y int, s Sample) { f(x, y, s) }

// Stats summarises the current generation.
type Stats struct {
	Generation uint32
	Population int
}

// Stats returns the generation counter and live population.
func (w *World) Stats() Stats {
	if w == nil {
		return Stats{}
	}
	return Stats{Generation: w.generation, Population: w.population}
}

// CellAt returns a copy of the current cell at (x, y), wrapping out-of-range
// coordinates.
func (w *World) CellAt(x, y int) Cell {
	if w.empty() {
		return DeadCell()
	}
	return w.cells[w.cur][w.grid.WrapIndex(x, y)]
}

// EnvironmentAt returns a copy of the environment at (x, y), wrapping
// out-of-range coordinates.
func (w *World) EnvironmentAt(x, y int) Environment {
	if w.empty() {
		return Environment{}
	}
	return w.env[w.grid.WrapIndex(x, y)]
}

// Render plots every cell in row-major order.
func (w *World) Render(p Plotter) {
	if w.empty() || p == nil {
		return
	}
	cells := w.cells[w.cur]
	for y := 0; y < w.grid.H; y++ {
		for x := 0; x < w.grid.W; x++ {
			c := &cells[y*w.grid.W+x]
			p.Plot(x, y, Sample{Alive: c.Alive, Race: c.Race, Health: c.Health, Age: c.Age})
		}
	}
}

// RaceCensus counts live cells per race.
type RaceCensus [raceCount]int

// Total sums the census.
func (rc RaceCensus) Total() int {
	n := 0
	for _, v := range rc {
		n += v
	}
	return n
}

// RaceCounts tallies live cells by race.
func (w *World) RaceCounts() RaceCensus {
	var rc RaceCensus
	if w.empty() {
		return rc
	}
	for i := range w.cells[w.cur] {
		c := &w.cells[w.cur][i]
		if c.Alive && int(c.Race) < raceCount {
			rc[c.Race]++
		}
	}
	return rc
}

// NutrientMask returns nutrients normalised to 0..1 per cell.
func (w *World) NutrientMask() []float32 {
	return w.envMask(func(e *Environment) uint8 { return e.Nutrients })
}

// PredationMask returns predation pressure normalised to 0..1 per cell.
func (w *World) PredationMask() []float32 {
	return w.envMask(func(e *Environment) uint8 { return e.PredationPressure })
}

// PathogenMask returns pathogen presence normalised to 0..1 per cell.
func (w *World) PathogenMask() []float32 {
	return w.envMask(func(e *Environment) uint8 { return e.PathogenPresence })
}

// ToxicityMask returns local toxicity normalised to 0..1 per cell.
func (w *World) ToxicityMask() []float32 {
	return w.envMask(func(e *Environment) uint8 { return e.LocalToxicity })
}

func (w *World) envMask(field func(*Environment) uint8) []float32 {
	if w.empty() {
		return nil
	}
	mask := make([]float32, len(w.env))
	for i := range w.env {
		mask[i] = float32(field(&w.env[i])) / 255
	}
	return mask
}
