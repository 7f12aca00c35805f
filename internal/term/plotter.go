package term

import (
	"fmt"

	"evo-ca/internal/sims/evolife"

	"github.com/gdamore/tcell/v2"
)

var background = tcell.ColorBlack

// Plotter draws evolife samples as race glyphs coloured by age band. The
// grid occupies the top rows of the screen, the status line sits below it.
type Plotter struct {
	screen tcell.Screen
	maxAge int
}

// NewPlotter returns a Plotter writing to screen. maxAge sets the age bands.
func NewPlotter(screen tcell.Screen, maxAge int) *Plotter {
	return &Plotter{screen: screen, maxAge: maxAge}
}

// Plot implements evolife.Plotter.
func (p *Plotter) Plot(x, y int, s evolife.Sample) {
	r, style := Cell(s, p.maxAge)
	p.screen.SetContent(x, y, r, nil, style)
}

// Cell maps a sample to the rune and style used to draw it. Dead cells are
// blank.
func Cell(s evolife.Sample, maxAge int) (rune, tcell.Style) {
	if !s.Alive {
		return ' ', tcell.StyleDefault.Background(background)
	}
	return evolife.Glyph(s.Race, s.Health), tcell.StyleDefault.
		Foreground(BandColor(evolife.BandOf(s.Age, maxAge))).
		Background(background)
}

// BandColor converts an age band colour to a true-colour tcell value.
func BandColor(b evolife.AgeBand) tcell.Color {
	c := evolife.BandColor(b)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// StatusLine formats the generation counter and population.
func StatusLine(st evolife.Stats) string {
	return fmt.Sprintf("Gen:%d P:%d", st.Generation, st.Population)
}

// DrawText writes s starting at (x, y), clearing the rest of the row.
func DrawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// Draw renders the world and its status line, then shows the screen.
func Draw(screen tcell.Screen, w *evolife.World, paused bool) {
	w.Render(NewPlotter(screen, w.Config().Params.MaxAge))
	status := StatusLine(w.Stats())
	if paused {
		status += " [paused]"
	}
	DrawText(screen, 0, w.Size().H, status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(background))
	screen.Show()
}
