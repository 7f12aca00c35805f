// Command sweep runs many seeds and seeding strategies concurrently and
// prints one summary row per run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"evo-ca/internal/runner"
	"evo-ca/internal/sims/evolife"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML config file")
		strategies  = flag.String("strategies", "uniform,center,clusters", "comma separated strategies")
		firstSeed   = flag.Uint("seed", 1, "first seed")
		seeds       = flag.Int("seeds", 8, "seeds per strategy")
		generations = flag.Int("gens", 500, "generations per run")
		workers     = flag.Int("workers", 0, "concurrent runs (0 uses GOMAXPROCS)")
		profileMode = flag.String("profile", "", "profile the sweep: cpu or mem")
		profileDir  = flag.String("profile-dir", ".", "directory for profile output")
		verbose     = flag.Bool("v", false, "log every run")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "sweep"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	default:
		logger.Fatal("unknown profile mode", "mode", *profileMode)
	}

	cfg, err := evolife.Load(*configPath)
	if err != nil {
		logger.Fatal("loading configuration", "err", err)
	}
	list, err := parseStrategies(*strategies)
	if err != nil {
		logger.Fatal("parsing strategies", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	jobs := runner.Jobs(list, uint32(*firstSeed), *seeds)
	runLogger := logger
	if !*verbose {
		runLogger = log.NewWithOptions(os.Stderr, log.Options{Level: log.ErrorLevel})
	}
	logger.Info("sweep started", "jobs", len(jobs), "gens", *generations, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	start := time.Now()
	results, err := runner.Sweep(ctx, cfg, jobs, runner.SweepOptions{
		Generations: *generations,
		Workers:     *workers,
		Logger:      runLogger,
	})
	if err != nil {
		logger.Error("sweep aborted", "err", err)
		return
	}
	logger.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond))
	printTable(os.Stdout, results)
}

func parseStrategies(s string) ([]evolife.Strategy, error) {
	var out []evolife.Strategy
	for _, name := range strings.Split(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		st, err := evolife.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no strategies in %q", s)
	}
	return out, nil
}

func printTable(out *os.File, results []evolife.RunStats) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "strategy\tseed\tinitial\tfinal\tpeak\tpeak gen\tmean\textinct\texplorer\tcolonizer\tnomad\tadaptive\t")
	for _, r := range results {
		extinct := "-"
		if r.Extinct {
			extinct = fmt.Sprint(r.ExtinctAt)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%.1f\t%s\t%d\t%d\t%d\t%d\t\n",
			r.Strategy, r.Seed, r.Initial, r.Final, r.Peak, r.PeakGen, r.Mean(), extinct,
			r.Census[evolife.RaceExplorer], r.Census[evolife.RaceColonizer],
			r.Census[evolife.RaceNomad], r.Census[evolife.RaceAdaptive])
	}
	tw.Flush()
}
