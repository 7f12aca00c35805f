package life

import (
	"strconv"

	"evo-ca/internal/core"
	"evo-ca/internal/sims/evolife"
	pcore "evo-ca/pkg/core"
)

// Config holds parameters for the plain B/S automaton.
type Config struct {
	Width   int
	Height  int
	Rules   string
	Density int
}

// DefaultConfig returns Conway's rules on a 160x50 torus.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 50, Rules: evolife.DefaultRules, Density: 35}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rules"]; ok && v != "" {
		c.Rules = v
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.Density = parsed
		}
	}
	return c
}

// Life is a two-state outer-totalistic automaton with toroidal wrapping. It
// shares the rule syntax of evolife and serves as its deterministic baseline.
type Life struct {
	grid     core.Torus
	birth    uint16
	survival uint16
	density  int
	cur      []uint8
	nxt      []uint8
}

// New returns a Life simulation with the provided dimensions and Conway's
// rules.
func New(w, h int) *Life {
	c := DefaultConfig()
	c.Width, c.Height = w, h
	return NewWithConfig(c)
}

// NewWithConfig builds a Life simulation from cfg.
func NewWithConfig(cfg Config) *Life {
	grid := core.NewTorus(cfg.Width, cfg.Height)
	birth, survival := evolife.ParseRules(cfg.Rules)
	cells := make([]uint8, grid.Len())
	return &Life{
		grid:     grid,
		birth:    birth,
		survival: survival,
		density:  cfg.Density,
		cur:      cells,
		nxt:      make([]uint8, len(cells)),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.W, H: l.grid.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur }

// Rules returns the active rule in canonical form.
func (l *Life) Rules() string { return evolife.FormatRules(l.birth, l.survival) }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := pcore.NewLCG(uint32(seed))
	pcore.FillBinary(&rng, l.cur, l.density)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	alive := func(idx int) bool { return l.cur[idx] == 1 }
	for y := 0; y < l.grid.H; y++ {
		for x := 0; x < l.grid.W; x++ {
			neighbors := l.grid.CountMoore(x, y, alive)
			idx := l.grid.Index(x, y)
			mask := l.birth
			if l.cur[idx] == 1 {
				mask = l.survival
			}
			l.nxt[idx] = 0
			if mask&(1<<neighbors) != 0 {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
