// Package render provides text fitting for swatch labels.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// LayoutError reports text that could not be fitted into its box.
type LayoutError struct {
	Text string
	Box  image.Rectangle
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("cannot fit text %q into %dx%d box", e.Text, e.Box.Dx(), e.Box.Dy())
}

// divisorStep is how much the scale divisor grows per attempt. Each step
// shrinks the rendered text, so the search is monotonic.
const divisorStep = 0.5

// maxFitAttempts bounds the scale search. The shrink is monotonic so the cap
// only trips on degenerate boxes.
const maxFitAttempts = 256

// GlyphRun is a measured, positioned text run ready for rasterisation.
type GlyphRun struct {
	Text   string
	Face   font.Face
	Dot    fixed.Point26_6
	Width  int
	Height int
}

// FitText finds the largest face size at which text fits the box width
// within a 5%-of-width margin, then centres the run inside the box.
//
// The search starts at box-width/divisor pixels and measures the run's ink
// width (leftmost pixel of the first glyph to rightmost pixel of the last);
// while the run is too wide the divisor grows by a fixed step. vOffset
// shifts the run vertically from true centre, letting callers stack two
// independently fitted lines inside one box.
func FitText(text string, box image.Rectangle, fonts FaceSource, divisor float64, vOffset int) (GlyphRun, error) {
	width := box.Dx()
	if width <= 0 || box.Dy() <= 0 {
		return GlyphRun{}, &LayoutError{Text: text, Box: box}
	}

	var (
		face   font.Face
		ascent int
		bounds fixed.Rectangle26_6
		runW   int
		runH   int
	)

	fitted := false
	for attempt := 0; attempt < maxFitAttempts; attempt++ {
		var err error
		face, err = fonts.FaceAt(float64(width) / divisor)
		if err != nil {
			return GlyphRun{}, err
		}

		bounds, _ = font.BoundString(face, text)
		runW = (bounds.Max.X - bounds.Min.X).Ceil()

		m := face.Metrics()
		ascent = m.Ascent.Ceil()
		runH = (m.Ascent + m.Descent).Ceil()

		if runW < width-width/20 {
			fitted = true
			break
		}
		divisor += divisorStep
	}
	if !fitted {
		return GlyphRun{}, &LayoutError{Text: text, Box: box}
	}

	// Centre the ink horizontally; bounds.Min.X carries the left side
	// bearing of the first glyph.
	x := box.Min.X + (width-runW)/2 - bounds.Min.X.Floor()
	y := box.Min.Y + (box.Dy()-runH)/2 + vOffset + ascent

	return GlyphRun{
		Text:   text,
		Face:   face,
		Dot:    fixed.P(x, y),
		Width:  runW,
		Height: runH,
	}, nil
}

// Draw rasterises the run onto dst in the given label colour. Glyph
// coverage is alpha-composited over whatever dst already holds, so drawing
// onto a filled block blends between the block colour and the label colour.
func (r GlyphRun) Draw(dst draw.Image, label color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(label),
		Face: r.Face,
		Dot:  r.Dot,
	}
	d.DrawString(r.Text)
}
