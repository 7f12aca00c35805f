package ui

import "image/color"

// FieldProvider exposes the environment fields the overlay can tint. Each
// mask holds one value in 0..1 per cell, row-major.
type FieldProvider interface {
	NutrientMask() []float32
	PredationMask() []float32
	PathogenMask() []float32
	ToxicityMask() []float32
}

type fieldLayer struct {
	name string
	tint color.RGBA
	mask func(FieldProvider) []float32
}

// fieldLayers is toggled with the digit keys 1..4 in this order.
var fieldLayers = [...]fieldLayer{
	{"nutrients", color.RGBA{R: 90, G: 220, B: 90}, FieldProvider.NutrientMask},
	{"predation", color.RGBA{R: 255, G: 120, B: 40}, FieldProvider.PredationMask},
	{"pathogens", color.RGBA{R: 190, G: 80, B: 230}, FieldProvider.PathogenMask},
	{"toxicity", color.RGBA{R: 230, G: 230, B: 60}, FieldProvider.ToxicityMask},
}

// layerLegend lists the toggle keys and whether each layer is visible.
func layerLegend(visible []bool) []string {
	lines := make([]string, len(fieldLayers))
	for i, l := range fieldLayers {
		mark := " "
		if i < len(visible) && visible[i] {
			mark = "*"
		}
		lines[i] = string(rune('1'+i)) + " " + mark + " " + l.name
	}
	return lines
}
