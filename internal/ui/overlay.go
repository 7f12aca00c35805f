//go:build ebiten

package ui

import (
	"evo-ca/internal/core"
	"evo-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var layerKeys = [len(fieldLayers)]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
}

// Overlay tints environment fields on top of the simulation view.
type Overlay struct {
	sim      core.Sim
	fields   FieldProvider
	scale    int
	visible  [len(fieldLayers)]bool
	painters []*render.GridPainter
}

// NewOverlay constructs an overlay for sim. Sims without environment fields
// get an overlay that draws nothing.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.fields, _ = sim.(FieldProvider)
	return o
}

// Update toggles layers from the digit keys.
func (o *Overlay) Update() {
	if o == nil || o.fields == nil {
		return
	}
	for i, key := range layerKeys {
		if inpututil.IsKeyJustPressed(key) {
			o.visible[i] = !o.visible[i]
		}
	}
}

// Legend describes the layer toggles for the HUD.
func (o *Overlay) Legend() []string {
	if o == nil || o.fields == nil {
		return nil
	}
	return layerLegend(o.visible[:])
}

// Draw renders every visible layer onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.fields == nil {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if len(o.painters) == 0 {
		o.painters = make([]*render.GridPainter, len(fieldLayers))
	}
	for i, layer := range fieldLayers {
		if !o.visible[i] {
			continue
		}
		if o.painters[i] == nil {
			o.painters[i] = render.NewGridPainter(size.W, size.H)
		}
		o.painters[i].BlitMask(screen, layer.mask(o.fields), layer.tint, o.scale)
	}
}
