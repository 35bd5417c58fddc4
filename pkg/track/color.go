package track

import (
	"image/color"

	"github.com/muesli/gamut"
)

var baseColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

// NextColor rotates the hue of prev, giving each newly spawned track a
// visually distinct, deterministic swatch for a downstream renderer.
// Deterministic given call order, matching the tracker's own
// determinism guarantee (spec.md §8 property 7). prev's zero value
// (the Tracker's unseeded state) falls back to baseColor rather than
// rotating black, which would keep every spawn black forever.
func NextColor(prev color.RGBA) color.RGBA {
	if prev == (color.RGBA{}) {
		prev = baseColor
	}
	rotated := gamut.HueOffset(prev, 137)
	r, g, b, a := rotated.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
