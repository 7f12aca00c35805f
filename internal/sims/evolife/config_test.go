package evolife

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		t.Fatalf("unmarshal defaults: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("defaults.yaml drifted from DefaultConfig:\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load(\"\") = %+v", cfg)
	}
}

func TestWriteAndLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 40
	cfg.Seed = 12345
	cfg.Rules = "B36/S23"
	cfg.Strategy = StrategyCenter
	cfg.Params.MutationRate = 12
	cfg.Params.PredationMinimum = 0.35
	cfg.Params.MoveChance = 45

	path := filepath.Join(t.TempDir(), "evolife.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := []byte("width: 30\nparams:\n  dispersal_chance: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	want.Width = 30
	want.Params.DispersalChance = 10
	if cfg != want {
		t.Fatalf("partial load = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("strategy: spiral\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("bad strategy error = %v", err)
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("width: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Fatal("malformed yaml should fail")
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                 "48",
		"h":                 "-3",
		"seed":              "0x10",
		"rules":             "B2/S",
		"strategy":          "Uniform",
		"mutation_rate":     "20",
		"move_chance":       "nope",
		"predation_minimum": "0.5",
		"density_max":       "400",
	})
	if cfg.Width != 48 || cfg.Height != DefaultConfig().Height {
		t.Fatalf("dimensions = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 16 {
		t.Fatalf("seed = %d", cfg.Seed)
	}
	if cfg.Rules != "B2/S" || cfg.Strategy != StrategyUniform {
		t.Fatalf("rules/strategy = %q/%q", cfg.Rules, cfg.Strategy)
	}
	if cfg.Params.MutationRate != 20 || cfg.Params.MoveChance != DefaultConfig().Params.MoveChance {
		t.Fatalf("int params = %d/%d", cfg.Params.MutationRate, cfg.Params.MoveChance)
	}
	if cfg.Params.PredationMinimum != 0.5 {
		t.Fatalf("predation minimum = %v", cfg.Params.PredationMinimum)
	}
	if cfg.Params.DensityMax != 100 {
		t.Fatalf("density max should clamp to 100, got %d", cfg.Params.DensityMax)
	}
}

func TestFromMapNil(t *testing.T) {
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestApplyKeepsBase(t *testing.T) {
	base := DefaultConfig()
	base.Width = 30
	base.Params.MoveChance = 55
	cfg := base.Apply(map[string]string{"h": "12", "move_chance": "bad"})
	if cfg.Width != 30 || cfg.Height != 12 {
		t.Fatalf("dimensions = %dx%d, want 30x12", cfg.Width, cfg.Height)
	}
	if cfg.Params.MoveChance != 55 {
		t.Fatalf("move chance = %d, want base value 55", cfg.Params.MoveChance)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies() {
		got, err := ParseStrategy(" " + string(s) + " ")
		if err != nil || got != s {
			t.Fatalf("ParseStrategy(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := ParseStrategy("spiral"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("unknown strategy error = %v", err)
	}
}

func TestSanitizeKeepsFertilityOrdered(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MaxAge = 40
	cfg.Params.FertilityOnset = 50
	cfg.Params.FertilityOptimal = 10
	cfg.Params.FertilityDecline = 5
	cfg.Params.MovementInterval = 0
	cfg.Sanitize()
	p := cfg.Params
	if !(p.FertilityOnset < p.FertilityOptimal && p.FertilityOptimal <= p.FertilityDecline && p.FertilityDecline < p.MaxAge) {
		t.Fatalf("fertility ordering broken: %d %d %d %d", p.FertilityOnset, p.FertilityOptimal, p.FertilityDecline, p.MaxAge)
	}
	if p.MovementInterval != 1 {
		t.Fatalf("movement interval = %d", p.MovementInterval)
	}
}

func TestSanitizeKeepsLongLifespans(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Params.MaxAge != 1200 || cfg.Params.InstabilityAge != 500 {
		t.Fatalf("default max/instability age = %d/%d, want 1200/500", cfg.Params.MaxAge, cfg.Params.InstabilityAge)
	}
	cfg.Sanitize()
	if cfg.Params.MaxAge != 1200 {
		t.Fatalf("MaxAge after Sanitize = %d, want 1200", cfg.Params.MaxAge)
	}
	cfg.Params.MaxAge = 0
	cfg.Sanitize()
	if cfg.Params.MaxAge != 2 {
		t.Fatalf("MaxAge floor = %d, want 2", cfg.Params.MaxAge)
	}
}
