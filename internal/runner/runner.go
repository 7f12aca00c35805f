// Package runner drives evolife worlds without a display: single logged runs
// and concurrent sweeps over seeds and seeding strategies.
package runner

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"evo-ca/internal/sims/evolife"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Options controls a single headless run.
type Options struct {
	Generations int
	// LogEvery emits a progress line every n generations. Zero disables it.
	LogEvery int
	// StopOnExtinction ends the run at the first empty generation.
	StopOnExtinction bool
	Logger           *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Run steps w for opts.Generations generations, logging progress, and
// returns the collected statistics. Cancelling ctx stops the run early with
// the statistics gathered so far and ctx.Err().
func Run(ctx context.Context, w *evolife.World, opts Options) (evolife.RunStats, error) {
	logger := opts.logger()
	stats := w.Run(0)
	logger.Info("run started",
		"size", w.Size(), "rules", w.Rules(), "strategy", stats.Strategy,
		"seed", stats.Seed, "pop", stats.Initial,
	)
	for i := 0; i < opts.Generations; i++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("run cancelled", "gen", w.Generation(), "err", err)
			return finish(w, stats), err
		}
		w.Step()
		pop := w.Population()
		stats.Trajectory = append(stats.Trajectory, pop)
		stats.Generations++
		if pop > stats.Peak {
			stats.Peak = pop
			stats.PeakGen = w.Generation()
		}
		if opts.LogEvery > 0 && int(w.Generation())%opts.LogEvery == 0 {
			logger.Info("progress", "gen", w.Generation(), "pop", pop)
		}
		if pop == 0 && !stats.Extinct {
			stats.Extinct = true
			stats.ExtinctAt = w.Generation()
			logger.Warn("population extinct", "gen", stats.ExtinctAt)
			if opts.StopOnExtinction {
				break
			}
		}
	}
	stats = finish(w, stats)
	logger.Info("run finished",
		"gen", w.Generation(), "pop", stats.Final, "peak", stats.Peak,
		"mean", fmt.Sprintf("%.1f", stats.Mean()),
	)
	return stats, nil
}

func finish(w *evolife.World, stats evolife.RunStats) evolife.RunStats {
	stats.Final = w.Population()
	stats.Census = w.RaceCounts()
	return stats
}

// Job is one sweep entry.
type Job struct {
	Strategy evolife.Strategy
	Seed     uint32
}

// Jobs builds the cross product of strategies and seeds first..first+count-1.
func Jobs(strategies []evolife.Strategy, first uint32, count int) []Job {
	jobs := make([]Job, 0, len(strategies)*max(count, 0))
	for _, s := range strategies {
		for i := 0; i < count; i++ {
			jobs = append(jobs, Job{Strategy: s, Seed: first + uint32(i)})
		}
	}
	return jobs
}

// SweepOptions controls Sweep.
type SweepOptions struct {
	Generations int
	// Workers bounds the number of concurrent worlds. Zero uses GOMAXPROCS.
	Workers int
	Logger  *log.Logger
}

// Sweep runs every job on its own world built from cfg. Worlds are
// independent so jobs run concurrently; results keep the order of jobs.
func Sweep(ctx context.Context, cfg evolife.Config, jobs []Job, opts SweepOptions) ([]evolife.RunStats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]evolife.RunStats, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			w := evolife.NewWithConfig(cfg)
			w.Initialize(job.Strategy, job.Seed)
			stats, err := Run(ctx, w, Options{
				Generations: opts.Generations,
				Logger:      logger.With("strategy", job.Strategy, "seed", job.Seed),
			})
			if err != nil {
				return fmt.Errorf("sweep %s/%d: %w", job.Strategy, job.Seed, err)
			}
			results[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
