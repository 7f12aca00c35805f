package ui

import (
	"math"
	"slices"
	"testing"

	"evo-ca/internal/core"
	"evo-ca/internal/sims/evolife"
)

func TestNextIntClampsToBounds(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeInt, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true}
	cases := []struct {
		value, dir, want int
		changed          bool
	}{
		{50, 1, 55, true},
		{50, -1, 45, true},
		{98, 1, 100, true},
		{100, 1, 100, false},
		{2, -1, 0, true},
		{0, -1, 0, false},
	}
	for _, tc := range cases {
		got, changed := nextInt(ctrl, tc.value, tc.dir)
		if got != tc.want || changed != tc.changed {
			t.Errorf("nextInt(%d, %d) = %d, %v; want %d, %v", tc.value, tc.dir, got, changed, tc.want, tc.changed)
		}
	}
}

func TestNextIntDefaultStep(t *testing.T) {
	got, _ := nextInt(core.ParameterControl{Type: core.ParamTypeInt}, 7, 1)
	if got != 8 {
		t.Fatalf("unbounded step = %d, want 8", got)
	}
}

func TestNextFloat(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeFloat, Min: 0, Max: 1, HasMin: true, HasMax: true}
	got, changed := nextFloat(ctrl, 0.5, 1)
	if !changed || math.Abs(got-0.55) > 1e-9 {
		t.Fatalf("nextFloat = %v, %v", got, changed)
	}
	if _, changed := nextFloat(ctrl, 1, 1); changed {
		t.Fatal("step past max should not change the value")
	}
}

func TestFormatFloatPrecision(t *testing.T) {
	cases := []struct {
		step float64
		want string
	}{
		{0.5, "0.3"},
		{0.05, "0.30"},
		{0.005, "0.300"},
		{0.0005, "0.3000"},
	}
	for _, tc := range cases {
		if got := formatFloat(core.ParameterControl{Step: tc.step}, 0.3); got != tc.want {
			t.Errorf("formatFloat(step %v) = %q, want %q", tc.step, got, tc.want)
		}
	}
}

func worldControls(w *evolife.World) map[string]*controlState {
	index := snapshotIndex(w.Parameters())
	states := map[string]*controlState{}
	for _, ctrl := range w.ParameterControls() {
		s := &controlState{control: ctrl}
		s.refresh(index)
		states[ctrl.Key] = s
	}
	return states
}

func TestControlsDriveWorldParameters(t *testing.T) {
	w := evolife.New(8, 8)
	states := worldControls(w)
	for key, s := range states {
		if !s.hasValue {
			t.Fatalf("control %q has no value in the snapshot", key)
		}
	}

	move := states["move_chance"]
	if move.intValue != 30 {
		t.Fatalf("move chance = %d, want 30", move.intValue)
	}
	if !move.adjust(w, w, 1) {
		t.Fatal("move chance adjust rejected")
	}
	if got := w.Config().Params.MoveChance; got != 35 {
		t.Fatalf("world move chance = %d, want 35", got)
	}

	floor := states["predation_minimum"]
	if !floor.adjust(w, w, -1) {
		t.Fatal("predation floor adjust rejected")
	}
	if got := w.Config().Params.PredationMinimum; math.Abs(got-0.15) > 1e-9 {
		t.Fatalf("predation floor = %v, want 0.15", got)
	}
	if floor.value != "0.15" {
		t.Fatalf("predation floor label = %q", floor.value)
	}
}

func TestControlWithoutSetter(t *testing.T) {
	w := evolife.New(8, 8)
	s := worldControls(w)["density_max"]
	if s.canAdjust(nil, nil, 1) || s.adjust(nil, nil, 1) {
		t.Fatal("control without setter should not adjust")
	}
}

func TestRefreshMissingKey(t *testing.T) {
	s := controlState{control: core.ParameterControl{Key: "nope", Type: core.ParamTypeInt}}
	s.refresh(map[string]core.Parameter{})
	if s.hasValue || s.value != "--" {
		t.Fatalf("missing key state = %+v", s)
	}
}

func TestBuildTitle(t *testing.T) {
	if got := buildTitle(evolife.New(4, 4)); got != "Evolife Controls" {
		t.Fatalf("title = %q", got)
	}
	if got := buildTitle(nil); got != "Controls" {
		t.Fatalf("nil title = %q", got)
	}
}

func TestLayerLegend(t *testing.T) {
	got := layerLegend([]bool{false, true})
	want := []string{"1   nutrients", "2 * predation", "3   pathogens", "4   toxicity"}
	if !slices.Equal(got, want) {
		t.Fatalf("legend = %q, want %q", got, want)
	}
}

func TestWorldProvidesFields(t *testing.T) {
	var sim core.Sim = evolife.New(6, 5)
	fields, ok := sim.(FieldProvider)
	if !ok {
		t.Fatal("evolife world should expose environment fields")
	}
	for _, l := range fieldLayers {
		if got := len(l.mask(fields)); got != 30 {
			t.Fatalf("%s mask has %d entries, want 30", l.name, got)
		}
	}
}
