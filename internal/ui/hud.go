//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"evo-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders live counters, the overlay legend and the parameter controls
// in a panel to the right of the simulation view.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	pixel *ebiten.Image
	title string

	counters    []core.Counter
	legend      []string
	controls    []hudControl
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	panelOffsetX int
}

type hudControl struct {
	controlState
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: buildTitle(sim)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControl{controlState: controlState{control: ctrl, value: "--"}})
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update refreshes counters and control values and handles clicks on the
// +/- buttons. legend lists extra lines to show under the counters.
func (h *HUD) Update(panelOffsetX int, legend []string) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.legend = legend
	h.counters = nil
	if provider, ok := h.sim.(core.CountersProvider); ok {
		h.counters = provider.Counters()
	}
	h.layoutControls()
	if provider, ok := h.sim.(parameterProvider); ok {
		index := snapshotIndex(provider.Parameters())
		for i := range h.controls {
			h.controls[i].refresh(index)
		}
	}
	h.handleInput()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)
	h.drawText()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		c := &h.controls[i]
		if pointInRect(px, my, c.minusRect) {
			c.adjust(h.intSetter, h.floatSetter, -1)
			return
		}
		if pointInRect(px, my, c.plusRect) {
			c.adjust(h.intSetter, h.floatSetter, 1)
			return
		}
	}
}

// infoLines is the number of text rows above the controls.
func (h *HUD) infoLines() int {
	n := len(h.counters) + len(h.legend)
	if len(h.legend) > 0 {
		n++
	}
	return n
}

func (h *HUD) layoutControls() {
	top := controlsTop + h.infoLines()*infoSpacing
	for i := range h.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func (h *HUD) drawText() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for _, c := range h.counters {
		y += infoSpacing
		text.Draw(h.panel, c.Label+": "+c.Value, face, panelPadding, y, textColor)
	}
	if len(h.legend) > 0 {
		y += infoSpacing
		text.Draw(h.panel, "Overlays", face, panelPadding, y, titleColor)
		for _, line := range h.legend {
			y += infoSpacing
			text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		}
	}
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, y+lineHeight, dimColor)
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		baseline := c.top + labelBaseline
		text.Draw(h.panel, c.control.Label, face, panelPadding, baseline, textColor)
		valueColor := textColor
		if !c.hasValue {
			valueColor = dimColor
		}
		width := text.BoundString(face, c.value).Dx()
		text.Draw(h.panel, c.value, face, c.minusRect.Min.X-buttonGap-width, baseline, valueColor)
		h.drawButton(c.minusRect, "-", c.canAdjust(h.intSetter, h.floatSetter, -1))
		h.drawButton(c.plusRect, "+", c.canAdjust(h.intSetter, h.floatSetter, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, textColor
	if !enabled {
		bg, fg = buttonOff, color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
