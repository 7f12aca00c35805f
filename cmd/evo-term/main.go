// Command evo-term runs the evolutionary automaton in a terminal, or headless
// with periodic log lines.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"evo-ca/internal/runner"
	"evo-ca/internal/sims/evolife"
	"evo-ca/internal/term"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

type options struct {
	configPath  string
	writeConfig string
	set         map[string]string
	seed        int64
	strategy    string
	tps         int
	generations int
	fit         bool
	headless    bool
	logEvery    int
	logFile     string
	level       string
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "YAML config file; unset keys keep their defaults")
	fs.StringVar(&o.writeConfig, "write-config", "", "write the effective config to this YAML file and exit")
	fs.Func("set", "config override as key=value, repeatable (e.g. -set mutation_rate=12)", func(kv string) error {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return fmt.Errorf("override %q is not key=value", kv)
		}
		o.set[strings.TrimSpace(key)] = strings.TrimSpace(value)
		return nil
	})
	fs.Int64Var(&o.seed, "seed", 0, "seed (0 keeps the configured seed)")
	fs.StringVar(&o.strategy, "strategy", "", "initialization strategy: uniform, center or clusters")
	fs.IntVar(&o.tps, "tps", 10, "generations per second")
	fs.IntVar(&o.generations, "gens", 0, "stop after this many generations (0 runs until quit; headless default 1000)")
	fs.BoolVar(&o.fit, "fit", false, "size the world to the terminal")
	fs.BoolVar(&o.headless, "headless", false, "run without a screen and log progress")
	fs.IntVar(&o.logEvery, "log-every", 100, "headless progress interval in generations")
	fs.StringVar(&o.logFile, "log-file", "", "log destination while the screen is active (default: discard)")
	fs.StringVar(&o.level, "level", "info", "log level")
}

func main() {
	opts := &options{set: map[string]string{}}
	opts.bind(flag.CommandLine)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "evo-term"})
	if lvl, err := log.ParseLevel(opts.level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("ignoring log level", "level", opts.level, "err", err)
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		logger.Fatal("loading configuration", "err", err)
	}
	if opts.writeConfig != "" {
		if err := cfg.WriteYAML(opts.writeConfig); err != nil {
			logger.Fatal("writing configuration", "err", err)
		}
		logger.Info("configuration written", "path", opts.writeConfig)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.headless {
		err = runHeadless(ctx, cfg, opts, logger)
	} else {
		err = runScreen(ctx, cfg, opts, logger)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("run failed", "err", err)
	}
}

func buildConfig(o *options) (evolife.Config, error) {
	cfg, err := evolife.Load(o.configPath)
	if err != nil {
		return evolife.Config{}, err
	}
	if o.seed != 0 {
		o.set["seed"] = strconv.FormatInt(o.seed, 10)
	}
	if o.strategy != "" {
		if _, err := evolife.ParseStrategy(o.strategy); err != nil {
			return evolife.Config{}, err
		}
		o.set["strategy"] = o.strategy
	}
	return cfg.Apply(o.set), nil
}

func runHeadless(ctx context.Context, cfg evolife.Config, o *options, logger *log.Logger) error {
	gens := o.generations
	if gens <= 0 {
		gens = 1000
	}
	w := evolife.NewWithConfig(cfg)
	w.Reset(0)
	stats, err := runner.Run(ctx, w, runner.Options{
		Generations:      gens,
		LogEvery:         o.logEvery,
		StopOnExtinction: true,
		Logger:           logger,
	})
	for r, n := range stats.Census {
		logger.Info("census", "race", evolife.Race(r), "count", n)
	}
	return err
}

func runScreen(ctx context.Context, cfg evolife.Config, o *options, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.Clear()

	if o.fit {
		cols, rows := screen.Size()
		cfg.Width, cfg.Height = cols, rows-1
		cfg.Sanitize()
	}

	screenLog := log.New(io.Discard)
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		screenLog = log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "evo-term", Level: logger.GetLevel()})
	}

	w := evolife.NewWithConfig(cfg)
	w.Reset(0)
	err = term.Run(ctx, screen, w, term.Options{
		TPS:            o.tps,
		MaxGenerations: uint32(max(o.generations, 0)),
		Logger:         screenLog,
	})
	screen.Fini()
	st := w.Stats()
	logger.Info("finished", "gen", st.Generation, "pop", st.Population)
	return err
}
