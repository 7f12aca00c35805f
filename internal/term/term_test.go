package term

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"evo-ca/internal/sims/evolife"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newWorld(w, h int) *evolife.World {
	cfg := evolife.DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Strategy = evolife.StrategyUniform
	cfg.Seed = 1
	world := evolife.NewWithConfig(cfg)
	world.Reset(0)
	return world
}

func rowText(s tcell.Screen, y, n int) string {
	var b strings.Builder
	for x := 0; x < n; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestCellDeadIsBlank(t *testing.T) {
	r, _ := Cell(evolife.Sample{}, 255)
	if r != ' ' {
		t.Fatalf("dead cell rune = %q, want blank", r)
	}
}

func TestCellGlyphAndColour(t *testing.T) {
	cases := []struct {
		sample evolife.Sample
		rune   rune
		band   evolife.AgeBand
	}{
		{evolife.Sample{Alive: true, Race: evolife.RaceExplorer, Health: 100, Age: 0}, 'E', evolife.AgeYoung},
		{evolife.Sample{Alive: true, Race: evolife.RaceColonizer, Health: 50, Age: 60}, 'c', evolife.AgeAdult},
		{evolife.Sample{Alive: true, Race: evolife.RaceNomad, Health: 51, Age: 130}, 'N', evolife.AgeMature},
		{evolife.Sample{Alive: true, Race: evolife.RaceAdaptive, Health: 10, Age: 250}, 'a', evolife.AgeAncient},
	}
	for _, tc := range cases {
		r, style := Cell(tc.sample, 255)
		if r != tc.rune {
			t.Errorf("Cell(%+v) rune = %q, want %q", tc.sample, r, tc.rune)
		}
		fg, bg, _ := style.Decompose()
		if fg != BandColor(tc.band) {
			t.Errorf("Cell(%+v) fg = %v, want band %d colour", tc.sample, fg, tc.band)
		}
		if bg != background {
			t.Errorf("Cell(%+v) bg = %v, want %v", tc.sample, bg, background)
		}
	}
}

func TestStatusLine(t *testing.T) {
	got := StatusLine(evolife.Stats{Generation: 12, Population: 345})
	if got != "Gen:12 P:345" {
		t.Fatalf("StatusLine = %q", got)
	}
}

func TestDrawMatchesWorld(t *testing.T) {
	world := newWorld(10, 10)
	screen := newScreen(t, 10, 11)
	Draw(screen, world, false)

	maxAge := world.Config().Params.MaxAge
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := world.CellAt(x, y)
			want, _ := Cell(evolife.Sample{Alive: c.Alive, Race: c.Race, Health: c.Health, Age: c.Age}, maxAge)
			got, _, _, _ := screen.GetContent(x, y)
			if got != want {
				t.Fatalf("screen (%d,%d) = %q, want %q", x, y, got, want)
			}
		}
	}
	wantStatus := StatusLine(world.Stats())
	if got := rowText(screen, 10, len(wantStatus)); got != wantStatus {
		t.Fatalf("status row = %q, want %q", got, wantStatus)
	}
}

func TestDrawTextClearsRow(t *testing.T) {
	screen := newScreen(t, 10, 1)
	DrawText(screen, 0, 0, "abcdefghij", tcell.StyleDefault)
	DrawText(screen, 0, 0, "xy", tcell.StyleDefault)
	if got := rowText(screen, 0, 10); got != "xy        " {
		t.Fatalf("row = %q", got)
	}
}

func TestRunQuitsOnQ(t *testing.T) {
	world := newWorld(10, 10)
	screen := newScreen(t, 10, 11)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- Run(context.Background(), screen, world, Options{TPS: 10}) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not quit on q")
	}
}

func TestRunStopsAtGenerationLimit(t *testing.T) {
	world := newWorld(10, 10)
	screen := newScreen(t, 10, 11)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := Run(ctx, screen, world, Options{TPS: 1000, MaxGenerations: 3}); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if gen := world.Generation(); gen != 3 {
		t.Fatalf("generation = %d, want 3", gen)
	}
}

func TestRunHonoursCancel(t *testing.T) {
	world := newWorld(10, 10)
	screen := newScreen(t, 10, 11)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, screen, world, Options{TPS: 10}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}
