// Package colour provides label colour selection logic.
package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HueBand is an inclusive hue range in degrees.
type HueBand struct {
	Min, Max float64
}

// Contains reports whether the hue falls inside the band. The hue must
// already be normalised into [0,360).
func (b HueBand) Contains(h float64) bool {
	return h >= b.Min && h <= b.Max
}

// LabelThresholds holds the tuned constants behind label colour selection.
// The values are empirical; changing them changes visible output.
type LabelThresholds struct {
	DarkLuminance    float64   // backgrounds below this luminance count as dark
	MinColourfulness float64   // saturation*lightness above this counts as colourful
	SaturationScale  float64   // label saturation relative to the background
	LightLightness   float64   // lightness of the lightened candidate
	DarkLightness    float64   // lightness of the darkened candidate
	LightHueBands    []HueBand // hues that keep a light label on dark backgrounds
}

// DefaultLabelThresholds returns the default label selection thresholds.
func DefaultLabelThresholds() LabelThresholds {
	return LabelThresholds{
		DarkLuminance:    0.62,
		MinColourfulness: 0.1,
		SaturationScale:  0.5,
		LightLightness:   0.775,
		DarkLightness:    0.28,
		LightHueBands: []HueBand{
			{Min: 36, Max: 80},   // yellow, chartreuse
			{Min: 90, Max: 185},  // greens and teals
			{Min: 300, Max: 340}, // purples
		},
	}
}

// PickLabelColour chooses a label tint that stays legible on the given
// background. The label keeps the background hue at reduced saturation and
// is either lightened or darkened, whichever contrasts more with the
// background's luminance.
//
// Pure luminance distance misassigns some saturated hues: yellows, greens
// and purples that are "dark" by the luminance formula still read poorly
// with a darkened label, so those hue bands force the lightened candidate
// when the background is visually dark.
func PickLabelColour(bg colorful.Color, th LabelThresholds) RGB {
	h, s, l := bg.Hsl()
	h = normaliseHue(h)

	lightened := colorful.Hsl(h, s*th.SaturationScale, th.LightLightness)
	darkened := colorful.Hsl(h, s*th.SaturationScale, th.DarkLightness)

	bgLum := Luminance(bg)
	visuallyDark := bgLum < th.DarkLuminance && s*l > th.MinColourfulness

	preferLight := false
	for _, band := range th.LightHueBands {
		if band.Contains(h) {
			preferLight = true
			break
		}
	}

	// Ties between the candidates favour the darkened one.
	chosen := darkened
	switch {
	case visuallyDark && preferLight:
		chosen = lightened
	case math.Abs(Luminance(lightened)-bgLum) > math.Abs(Luminance(darkened)-bgLum):
		chosen = lightened
	}

	return FromColorful(chosen)
}
