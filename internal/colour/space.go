// Package colour provides colour-space conversion functions.
package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// OkLab converts a colour to the Oklab perceptual space. Euclidean distance
// between Oklab coordinates approximates perceived colour difference far
// better than distance in raw RGB.
// https://bottosson.github.io/posts/oklab/
func OkLab(col colorful.Color) (l, a, b float64) {
	lr, lg, lb := col.LinearRgb()

	lm := math.Cbrt(0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb)
	mm := math.Cbrt(0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb)
	sm := math.Cbrt(0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb)

	l = 0.2104542553*lm + 0.7936177850*mm - 0.0040720468*sm
	a = 1.9779984951*lm - 2.4285922050*mm + 0.4505937099*sm
	b = 0.0259040371*lm + 0.7827717662*mm - 0.8086757660*sm
	return l, a, b
}

// Luminance estimates perceived brightness using the Rec.601 weighting on
// normalised sRGB channels. Returns a value between 0 (darkest) and 1
// (lightest). Distinct from HSL lightness and from RelativeLuminance.
func Luminance(col colorful.Color) float64 {
	return 0.299*col.R + 0.587*col.G + 0.114*col.B
}

// RelativeLuminance calculates the relative luminance of a colour according
// to WCAG 2.0, with gamma correction applied per channel.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(col colorful.Color) float64 {
	r, g, b := col.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 colorful.Color) float64 {
	l1 := RelativeLuminance(c1)
	l2 := RelativeLuminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// normaliseHue wraps a hue in degrees into [0,360).
func normaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
