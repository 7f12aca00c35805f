package term

import (
	"context"
	"io"
	"time"

	"evo-ca/internal/core"
	"evo-ca/internal/sims/evolife"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

const frameInterval = 15 * time.Millisecond

// Options controls the interactive loop.
type Options struct {
	// TPS is the number of generations per second.
	TPS int
	// MaxGenerations stops the loop once reached. Zero runs until quit.
	MaxGenerations uint32
	// Logger receives lifecycle messages. Nil discards them.
	Logger *log.Logger
}

// Run draws w on screen and steps it at opts.TPS until the user presses q or
// Esc, ctx is cancelled, or MaxGenerations is reached. Space pauses, n steps
// once while paused and r reseeds with the configured seed. The caller
// owns the screen and must have initialised it.
func Run(ctx context.Context, screen tcell.Screen, w *evolife.World, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	pacer := core.NewFixedStep(opts.TPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	paused := false
	Draw(screen, w, paused)
	logger.Info("terminal run started", "size", w.Size(), "rules", w.Rules(), "tps", opts.TPS)

	for {
		if opts.MaxGenerations > 0 && w.Generation() >= opts.MaxGenerations {
			logger.Info("generation limit reached", "gen", w.Generation(), "pop", w.Population())
			return nil
		}
		select {
		case <-ctx.Done():
			logger.Info("terminal run cancelled", "gen", w.Generation())
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					logger.Info("terminal run finished", "gen", w.Generation(), "pop", w.Population())
					return nil
				case ev.Rune() == ' ':
					paused = !paused
					logger.Debug("pause toggled", "paused", paused)
				case ev.Rune() == 'n' && paused:
					w.Step()
				case ev.Rune() == 'r':
					w.Reset(0)
					logger.Info("world reseeded", "pop", w.Population())
				}
				Draw(screen, w, paused)
			case *tcell.EventResize:
				screen.Sync()
				Draw(screen, w, paused)
			}
		case <-ticker.C:
			if paused || !pacer.ShouldStep() {
				continue
			}
			w.Step()
			if w.Population() == 0 {
				logger.Warn("population extinct", "gen", w.Generation())
				paused = true
			}
			Draw(screen, w, paused)
		}
	}
}
