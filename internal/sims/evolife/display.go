package evolife

import "image/color"

// AgeBand buckets an age into five bands by its fraction of maxAge: <20%,
// <40%, <60%, <80%, and the rest.
type AgeBand uint8

const (
	AgeYoung AgeBand = iota
	AgeAdult
	AgeMature
	AgeElder
	AgeAncient

	ageBandCount = 5
)

// BandOf returns the band for age given the configured maximum age.
func BandOf(age uint8, maxAge int) AgeBand {
	if maxAge <= 0 {
		return AgeAncient
	}
	pct := int(age) * 100 / maxAge
	switch {
	case pct < 20:
		return AgeYoung
	case pct < 40:
		return AgeAdult
	case pct < 60:
		return AgeMature
	case pct < 80:
		return AgeElder
	default:
		return AgeAncient
	}
}

var raceGlyphs = [raceCount]rune{'E', 'C', 'N', 'A'}

// Glyph returns the single-letter code for a race: upper case for healthy
// cells, lower case once health drops to 50 or below.
func Glyph(r Race, health uint8) rune {
	g := '?'
	if int(r) < len(raceGlyphs) {
		g = raceGlyphs[r]
	}
	if health <= birthHealth && g >= 'A' && g <= 'Z' {
		g += 'a' - 'A'
	}
	return g
}

// DisplayValue packs a cell into the byte exposed by Cells: 0 for dead, and
// 1 + race*5 + age band for live cells.
func DisplayValue(c *Cell, maxAge int) uint8 {
	if !c.Alive {
		return 0
	}
	race := c.Race
	if int(race) >= raceCount {
		race = RaceAdaptive
	}
	return 1 + uint8(race)*ageBandCount + uint8(BandOf(c.Age, maxAge))
}

// DecodeDisplay reverses DisplayValue.
func DecodeDisplay(v uint8) (alive bool, race Race, band AgeBand) {
	if v == 0 || int(v) > raceCount*ageBandCount {
		return false, 0, 0
	}
	v--
	return true, Race(v / ageBandCount), AgeBand(v % ageBandCount)
}

func (w *World) refreshDisplay() {
	maxAge := w.cfg.Params.MaxAge
	for i := range w.cells[w.cur] {
		w.display[i] = DisplayValue(&w.cells[w.cur][i], maxAge)
	}
}

var bandColors = [ageBandCount]color.RGBA{
	{R: 50, G: 90, B: 230, A: 255},
	{R: 40, G: 210, B: 220, A: 255},
	{R: 120, G: 230, B: 110, A: 255},
	{R: 235, G: 215, B: 60, A: 255},
	{R: 225, G: 55, B: 45, A: 255},
}

var raceTints = [raceCount]color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 200, G: 170, B: 120, A: 255},
	{R: 150, G: 200, B: 255, A: 255},
	{R: 230, G: 150, B: 230, A: 255},
}

var evolifePalette = buildPalette()

// Palette maps display values to colours: age band hue, tinted by race.
func (w *World) Palette() []color.RGBA {
	return evolifePalette
}

// BandColor is the base colour of an age band.
func BandColor(b AgeBand) color.RGBA {
	if int(b) >= ageBandCount {
		b = AgeAncient
	}
	return bandColors[b]
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, 1+raceCount*ageBandCount)
	palette[0] = color.RGBA{R: 8, G: 8, B: 12, A: 255}
	for i := 1; i < len(palette); i++ {
		_, race, band := DecodeDisplay(uint8(i))
		palette[i] = tint(bandColors[band], raceTints[race])
	}
	return palette
}

func tint(base, by color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(base.R) * uint16(by.R) / 255),
		G: uint8(uint16(base.G) * uint16(by.G) / 255),
		B: uint8(uint16(base.B) * uint16(by.B) / 255),
		A: 255,
	}
}
