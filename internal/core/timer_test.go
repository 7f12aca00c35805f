package core

import (
	"testing"
	"time"
)

func TestFixedStepCadence(t *testing.T) {
	clock := time.Unix(1000, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}

	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval elapsed, should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval elapsed, should step")
	}
}

func TestFixedStepSetInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("default interval = %v, want 1/60s", fs.Interval())
	}
	fs.SetInterval(250 * time.Millisecond)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval = %v, want 250ms", fs.Interval())
	}
	fs.SetInterval(-1)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("non-positive interval should fall back to 1/60s, got %v", fs.Interval())
	}
}
