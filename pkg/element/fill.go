package element

import (
	"unicode/utf8"

	"github.com/panelgrid/panelgrid/pkg/scene"
)

// glyphAspect approximates the height:width ratio of a maximum-height glyph
// in common proportional fonts.
const glyphAspect = 2.0

// FillHeight computes the display height for text so it fits the footprint.
//
// The estimate assumes each glyph is footprint.Height tall and half as wide;
// when the text is longer than the number of such glyphs that fit across the
// footprint width, the height shrinks proportionally. fillFraction is the
// share of the footprint height the glyphs should occupy before the
// shrink-to-fit logic applies.
//
// Degenerate inputs are safe: empty text is treated as already fitting, and a
// non-positive footprint yields zero.
func FillHeight(text string, footprint scene.Size, fillFraction float64) float64 {
	if footprint.Height <= 0 || footprint.Width <= 0 {
		return 0
	}

	ratio := 1.0
	if n := utf8.RuneCountInString(text); n > 0 {
		capacity := footprint.Width / (footprint.Height / glyphAspect)
		if float64(n) > capacity {
			ratio = capacity / float64(n)
		}
	}
	return footprint.Height * ratio * fillFraction
}
