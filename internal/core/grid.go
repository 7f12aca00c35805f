package core

// MooreOffsets lists the eight neighbour offsets in scan order: rows top to
// bottom, columns left to right, skipping the centre.
var MooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Torus maps 2D coordinates onto a row-major slice with wrap-around on both
// axes.
type Torus struct {
	W, H int
}

// NewTorus returns a Torus with the given dimensions, clamping each axis to
// at least one cell.
func NewTorus(w, h int) Torus {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Torus{W: w, H: h}
}

// Len returns the number of cells.
func (t Torus) Len() int { return t.W * t.H }

// Index returns the linear slice index for coordinates (x, y).
func (t Torus) Index(x, y int) int { return y*t.W + x }

// Coords is the inverse of Index.
func (t Torus) Coords(idx int) (int, int) { return idx % t.W, idx / t.W }

// Wrap applies toroidal wrapping to the provided coordinates.
func (t Torus) Wrap(x, y int) (int, int) {
	x = (x%t.W + t.W) % t.W
	y = (y%t.H + t.H) % t.H
	return x, y
}

// WrapIndex wraps (x, y) and returns its linear index.
func (t Torus) WrapIndex(x, y int) int {
	x, y = t.Wrap(x, y)
	return y*t.W + x
}

// CountMoore counts the neighbours of (x, y) for which alive reports true.
// The centre cell is not included.
func (t Torus) CountMoore(x, y int, alive func(idx int) bool) int {
	n := 0
	for _, off := range MooreOffsets {
		if alive(t.WrapIndex(x+off[0], y+off[1])) {
			n++
		}
	}
	return n
}
