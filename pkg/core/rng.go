package core

// Multiplier and increment of the primary generator.
const (
	lcgMul = 1103515245
	lcgInc = 12345
)

// Multiplier and increment of the secondary generator.
const (
	lcg2Mul = 1664525
	lcg2Inc = 1013904223
)

// DefaultSeed replaces a zero seed so that the generators never start from
// the all-zero state.
const DefaultSeed uint32 = 0x12345678

// GenerationSeedMul spreads consecutive generation indices across the state
// space when a per-generation stream is derived from the generation counter.
const GenerationSeedMul uint32 = 0x9E3779B9

// LCG is a 32-bit multiplicative linear congruential generator. The state is
// a plain value: callers own it and pass a pointer to every stochastic call
// site, so there is no hidden shared state.
type LCG uint32

// NewLCG returns a generator seeded with seed, substituting DefaultSeed for 0.
func NewLCG(seed uint32) LCG {
	if seed == 0 {
		seed = DefaultSeed
	}
	return LCG(seed)
}

// ForGeneration derives the stream used while computing generation gen.
func ForGeneration(gen uint32) LCG {
	return LCG(gen * GenerationSeedMul)
}

// Next advances the generator and returns the new state.
func (g *LCG) Next() uint32 {
	*g = LCG(uint32(*g)*lcgMul + lcgInc)
	return uint32(*g)
}

// Value returns the current state without advancing.
func (g LCG) Value() uint32 { return uint32(g) }

// LCG2 is the secondary generator (Numerical Recipes constants). It is only
// combined with an LCG stream where two independent sequences are needed.
type LCG2 uint32

// Next advances the generator and returns the new state.
func (g *LCG2) Next() uint32 {
	*g = LCG2(uint32(*g)*lcg2Mul + lcg2Inc)
	return uint32(*g)
}

// Value returns the current state without advancing.
func (g LCG2) Value() uint32 { return uint32(g) }

// PercentThreshold converts a percentage (0-100) into a threshold comparable
// against a raw 32-bit draw.
func PercentThreshold(percent int) uint32 {
	if percent <= 0 {
		return 0
	}
	if percent >= 100 {
		percent = 100
	}
	return (0xFFFFFFFF / 100) * uint32(percent)
}

// FillBinary fills buf with 0/1 values, one draw per cell, living cells
// where the draw falls under the threshold for percent.
func FillBinary(g *LCG, buf []uint8, percent int) {
	threshold := PercentThreshold(percent)
	for i := range buf {
		buf[i] = 0
		if g.Next() < threshold {
			buf[i] = 1
		}
	}
}
