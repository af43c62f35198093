package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Terrain colors for the visible state. Explored-but-dark tiles reuse the
// same hues pushed toward black.
var (
	colorWall      = colorful.Color{R: 0.55, G: 0.45, B: 0.35}
	colorPerimeter = colorful.Color{R: 0.35, G: 0.40, B: 0.55}
	colorFloor     = colorful.Color{R: 0.45, G: 0.45, B: 0.45}
	colorTeleport  = colorful.Color{R: 0.55, G: 0.25, B: 0.85}
	colorCorpse    = colorful.Color{R: 0.45, G: 0.15, B: 0.10}

	fireFresh = colorful.Color{R: 1.00, G: 0.80, B: 0.15}
	fireFaded = colorful.Color{R: 0.75, G: 0.15, B: 0.05}

	black = colorful.Color{}
)

// dimFactor is how far explored-but-dark tiles are pushed toward black.
const dimFactor = 0.65

// fireColor blends from a fresh yellow blaze toward a dying red ember as
// the tile's remaining ticks run down.
func fireColor(ticksRemaining int) tcell.Color {
	const fullBurn = 12.0
	t := 1.0 - float64(ticksRemaining)/fullBurn
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return toTcell(fireFresh.BlendRgb(fireFaded, t))
}

// dim darkens a color for explored-but-not-visible tiles.
func dim(c colorful.Color) tcell.Color {
	return toTcell(c.BlendRgb(black, dimFactor))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
