package core

import (
	"errors"
	"slices"
	"testing"
)

type stubSim struct{}

func (stubSim) Name() string { return "stub" }
func (stubSim) Size() Size { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64) {}
func (stubSim) Step() {}
func (stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistry(t *testing.T) {
	Register("zz-stub", func(map[string]string) Sim { return stubSim{} })
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("zz-nil", nil)

	f, err := Lookup("zz-stub")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if f(nil).Name() != "stub" {
		t.Fatal("factory returned the wrong sim")
	}
	if _, err := Lookup("zz-nil"); !errors.Is(err, ErrUnknownSim) {
		t.Fatalf("nil factory should not register, err = %v", err)
	}
	names := Names()
	if !slices.IsSorted(names) || !slices.Contains(names, "zz-stub") || slices.Contains(names, "") {
		t.Fatalf("Names() = %v", names)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "a", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "b", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("b"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(b) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("c"); ok {
		t.Fatal("Lookup(c) should miss")
	}
}
