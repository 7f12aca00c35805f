package evolife

// RunStats summarises a run of consecutive generations.
type RunStats struct {
	Strategy    Strategy
	Seed        uint32
	Generations int

	Initial    int
	Final      int
	Peak       int
	PeakGen    uint32
	ExtinctAt  uint32
	Extinct    bool
	Trajectory []int
	Census     RaceCensus
}

// Mean returns the average population over the trajectory.
func (s RunStats) Mean() float64 {
	if len(s.Trajectory) == 0 {
		return 0
	}
	sum := 0
	for _, p := range s.Trajectory {
		sum += p
	}
	return float64(sum) / float64(len(s.Trajectory))
}

// Simulate builds a fresh world from cfg, seeds it and runs steps
// generations. The trajectory holds the population after each step.
func Simulate(cfg Config, strategy Strategy, seed uint32, steps int) RunStats {
	w := NewWithConfig(cfg)
	w.Initialize(strategy, seed)
	return w.Run(steps)
}

// Run advances the world steps times and records statistics on the way.
func (w *World) Run(steps int) RunStats {
	steps = max(steps, 0)
	stats := RunStats{
		Strategy:   w.strategy,
		Seed:       w.seed,
		Initial:    w.population,
		Peak:       w.population,
		PeakGen:    w.generation,
		Trajectory: make([]int, 0, steps),
	}
	for i := 0; i < steps; i++ {
		w.Step()
		pop := w.population
		stats.Trajectory = append(stats.Trajectory, pop)
		if pop > stats.Peak {
			stats.Peak = pop
			stats.PeakGen = w.generation
		}
		if pop == 0 && !stats.Extinct {
			stats.Extinct = true
			stats.ExtinctAt = w.generation
		}
	}
	stats.Generations = steps
	stats.Final = w.population
	stats.Census = w.RaceCounts()
	return stats
}
