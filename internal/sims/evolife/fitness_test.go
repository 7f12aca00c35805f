package evolife

import (
	"math"
	"testing"
)

func TestFertilityCurve(t *testing.T) {
	p := DefaultConfig().Params
	cases := []struct {
		age  uint8
		want float64
	}{
		{0, 0},
		{4, 0},
		{5, 0},
		{30, 1},
		{150, 1},
	}
	for _, tc := range cases {
		if got := p.Fertility(tc.age); got != tc.want {
			t.Errorf("Fertility(%d) = %v, want %v", tc.age, got, tc.want)
		}
	}
	if got := p.Fertility(17); math.Abs(got-0.48) > 1e-9 {
		t.Errorf("Fertility(17) = %v, want 0.48", got)
	}
	for _, tc := range []struct {
		age  uint8
		want float64
	}{
		{200, 1 - 50.0/1050},
		{250, 1 - 100.0/1050},
		{255, 0.9},
	} {
		if got := p.Fertility(tc.age); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Fertility(%d) = %v, want %v", tc.age, got, tc.want)
		}
	}
	prev := 1.0
	for age := 150; age < 255; age++ {
		f := p.Fertility(uint8(age))
		if f > prev {
			t.Fatalf("fertility rises after decline at age %d", age)
		}
		prev = f
	}

	short := p
	short.MaxAge = 255
	if got := short.Fertility(255); got != 0 {
		t.Errorf("Fertility(255) with MaxAge 255 = %v, want 0", got)
	}
	if got := short.Fertility(200); math.Abs(got-(1-50.0/105)) > 1e-9 {
		t.Errorf("Fertility(200) with MaxAge 255 = %v", got)
	}
}

func TestMovementPredicates(t *testing.T) {
	p := DefaultConfig().Params
	cases := []struct {
		race      Race
		counter   uint32
		neighbors int
		want      bool
	}{
		{RaceExplorer, 0, 2, true},
		{RaceExplorer, 50, 0, true},
		{RaceExplorer, 0, 3, false},
		{RaceExplorer, 7, 0, false},
		{RaceColonizer, 0, 0, true},
		{RaceColonizer, 100, 0, true},
		{RaceColonizer, 50, 0, false},
		{RaceColonizer, 0, 1, false},
		{RaceNomad, 0, 8, true},
		{RaceNomad, 100, 3, true},
		{RaceNomad, 51, 0, false},
		{RaceAdaptive, 0, 5, true},
		{RaceAdaptive, 51, 0, true},
		{RaceAdaptive, 50, 0, false},
		{RaceAdaptive, 0, 3, false},
		{Race(9), 0, 0, false},
	}
	for _, tc := range cases {
		if got := behaviorOf(tc.race).moves(&p, tc.counter, tc.neighbors); got != tc.want {
			t.Errorf("%s counter=%d neighbours=%d: moves=%v, want %v", tc.race, tc.counter, tc.neighbors, got, tc.want)
		}
	}
}

func TestFitnessRaceBonus(t *testing.T) {
	world := newTestWorld(20, 20)
	cyc := cyclesFor(&world.cfg.Params, 0)

	c := DeadCell()
	c.Alive = true
	c.Age = 60
	c.EnergyEfficiency = 0

	c.Race = RaceColonizer
	colonizerCentre := world.fitness(&c, 10, 10, cyc)
	colonizerCorner := world.fitness(&c, 0, 0, cyc)
	c.Race = RaceExplorer
	explorerCentre := world.fitness(&c, 10, 10, cyc)
	explorerCorner := world.fitness(&c, 0, 0, cyc)

	if colonizerCentre != 60 || explorerCentre != 50 {
		t.Fatalf("centre fitness colonizer=%d explorer=%d, want 60 and 50", colonizerCentre, explorerCentre)
	}
	if explorerCorner <= colonizerCorner {
		t.Fatalf("explorer should beat colonizer at the corner: %d vs %d", explorerCorner, colonizerCorner)
	}

	c.Age = 2
	if got := world.fitness(&c, 10, 10, cyc); got != 0 {
		t.Fatalf("infertile parent fitness = %d", got)
	}
}

func TestSpeciesQuadrants(t *testing.T) {
	cases := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 1},
		{9, 0, 2},
		{0, 9, 3},
		{9, 9, 4},
		{4, 4, 1},
		{5, 5, 4},
	}
	for _, tc := range cases {
		if got := speciesAt(tc.x, tc.y, 10, 10); got != tc.want {
			t.Errorf("speciesAt(%d,%d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}
