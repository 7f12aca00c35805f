package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"evo-ca/internal/core"
	"evo-ca/internal/sims/evolife"
)

// ErrConfigUnsupported is returned when a YAML config is given for a sim
// that does not read one.
var ErrConfigUnsupported = errors.New("config file only supported by evolife")

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	HUDWidth   int
	ConfigPath string
	// Options are key=value pairs handed to the sim factory.
	Options map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "evolife", Scale: 5, TPS: 20, HUDWidth: 260, Options: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 uses the configured seed)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels, 0 hides it")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file (evolife only)")
	fs.Func("set", "sim option as key=value, repeatable (e.g. -set rules=B36/S23)", c.setOption)
}

func (c *Config) setOption(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("option %q is not key=value", kv)
	}
	if c.Options == nil {
		c.Options = map[string]string{}
	}
	c.Options[key] = strings.TrimSpace(value)
	return nil
}

// NewSim builds and seeds the selected simulation.
func (c *Config) NewSim() (core.Sim, error) {
	var sim core.Sim
	switch {
	case c.ConfigPath != "" && c.Sim != "evolife":
		return nil, fmt.Errorf("sim %q: %w", c.Sim, ErrConfigUnsupported)
	case c.ConfigPath != "":
		cfg, err := evolife.Load(c.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("loading evolife config: %w", err)
		}
		sim = evolife.NewWithConfig(cfg.Apply(c.Options))
	default:
		factory, err := core.Lookup(c.Sim)
		if err != nil {
			return nil, err
		}
		sim = factory(c.Options)
	}
	sim.Reset(c.Seed)
	return sim, nil
}
