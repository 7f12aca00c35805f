package core

import "testing"

func TestTorusWrap(t *testing.T) {
	tor := NewTorus(5, 3)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{-1, 0, 4, 0},
		{5, 3, 0, 0},
		{-6, -4, 4, 2},
		{12, 7, 2, 1},
	}
	for _, tc := range cases {
		gx, gy := tor.Wrap(tc.x, tc.y)
		if gx != tc.wx || gy != tc.wy {
			t.Errorf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.x, tc.y, gx, gy, tc.wx, tc.wy)
		}
	}
}

func TestTorusIndexCoordsRoundTrip(t *testing.T) {
	tor := NewTorus(7, 4)
	for idx := 0; idx < tor.Len(); idx++ {
		x, y := tor.Coords(idx)
		if got := tor.Index(x, y); got != idx {
			t.Fatalf("Index(Coords(%d)) = %d", idx, got)
		}
	}
}

func TestNewTorusClampsDimensions(t *testing.T) {
	tor := NewTorus(0, -3)
	if tor.W != 1 || tor.H != 1 {
		t.Fatalf("NewTorus(0,-3) = %+v, want 1x1", tor)
	}
}

func TestCountMooreWrapsAndSkipsCentre(t *testing.T) {
	tor := NewTorus(6, 6)
	cells := make([]bool, tor.Len())
	cells[tor.Index(0, 0)] = true
	cells[tor.Index(5, 5)] = true
	cells[tor.Index(5, 0)] = true
	cells[tor.Index(0, 5)] = true
	alive := func(idx int) bool { return cells[idx] }

	if got := tor.CountMoore(0, 0, alive); got != 3 {
		t.Fatalf("corner neighbours = %d, want 3", got)
	}
	if got := tor.CountMoore(2, 2, alive); got != 0 {
		t.Fatalf("interior neighbours = %d, want 0", got)
	}
}
