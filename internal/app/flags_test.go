package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"evo-ca/internal/core"
	"evo-ca/internal/sims/evolife"
	_ "evo-ca/internal/sims/life"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestBindDefaults(t *testing.T) {
	cfg := parse(t)
	if cfg.Sim != "evolife" || cfg.Scale != 5 || cfg.TPS != 20 || cfg.Seed != 0 {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestBindOptions(t *testing.T) {
	cfg := parse(t, "-sim", "life", "-seed", "9", "-set", "w=30", "-set", " rules = B36/S23 ")
	if cfg.Sim != "life" || cfg.Seed != 9 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Options["w"] != "30" || cfg.Options["rules"] != "B36/S23" {
		t.Fatalf("options = %v", cfg.Options)
	}
}

func TestBindRejectsMalformedOption(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(discard{})
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("expected error for option without '='")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestNewSimFromOptions(t *testing.T) {
	cfg := parse(t, "-set", "w=20", "-set", "h=10", "-set", "strategy=uniform", "-seed", "1")
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if sim.Name() != "evolife" || sim.Size() != (core.Size{W: 20, H: 10}) {
		t.Fatalf("sim = %s %+v", sim.Name(), sim.Size())
	}
	w := sim.(*evolife.World)
	want := evolife.NewWithConfig(w.Config())
	want.Initialize(evolife.StrategyUniform, 1)
	if w.Population() != want.Population() {
		t.Fatalf("population = %d, want %d", w.Population(), want.Population())
	}
}

func TestNewSimFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evo.yaml")
	if err := os.WriteFile(path, []byte("width: 24\nheight: 12\nrules: B36/S23\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := parse(t, "-config", path, "-set", "h=16")
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	w := sim.(*evolife.World)
	if w.Size() != (core.Size{W: 24, H: 16}) {
		t.Fatalf("size = %+v, want 24x16", w.Size())
	}
	if w.Rules() != "B36/S23" {
		t.Fatalf("rules = %q", w.Rules())
	}
}

func TestNewSimErrors(t *testing.T) {
	cfg := parse(t, "-sim", "nope")
	if _, err := cfg.NewSim(); !errors.Is(err, core.ErrUnknownSim) {
		t.Fatalf("unknown sim error = %v", err)
	}
	cfg = parse(t, "-sim", "life", "-config", "x.yaml")
	if _, err := cfg.NewSim(); !errors.Is(err, ErrConfigUnsupported) {
		t.Fatalf("config for life error = %v", err)
	}
	cfg = parse(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := cfg.NewSim(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing config error = %v", err)
	}
}
