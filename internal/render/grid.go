// Package render composes the swatch grid image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"sync"

	"github.com/alitto/pond"
	"github.com/hashicorp/go-hclog"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/swatchgrid/internal/colour"
	"github.com/jmylchreest/swatchgrid/internal/config"
	"github.com/jmylchreest/swatchgrid/internal/palette"
)

// nameVerticalOffset lifts the name line above block centre. Together with
// the hex line's downward nudge, two single-line fits read as one stacked
// label.
const nameVerticalOffset = -10

// Renderer draws ordered palette entries into a grid of labelled swatches.
type Renderer struct {
	cfg        config.Config
	fonts      FaceSource
	thresholds colour.LabelThresholds
	log        hclog.Logger
}

// New creates a Renderer. A nil logger disables logging.
func New(cfg config.Config, fonts FaceSource, log hclog.Logger) *Renderer {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Renderer{
		cfg:        cfg,
		fonts:      fonts,
		thresholds: colour.DefaultLabelThresholds(),
		log:        log,
	}
}

// Render draws one swatch per entry, in order, onto a transparent canvas.
// The canvas always spans the configured column count; the last row may be
// partially filled. Each swatch is clipped to its own block, keeping the
// pixel regions disjoint so they can be rendered in parallel on a worker
// pool.
func (r *Renderer) Render(entries []palette.Entry) (*image.RGBA, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries to render")
	}

	cols := r.cfg.Columns
	rows := (len(entries) + cols - 1) / cols
	img := image.NewRGBA(image.Rect(0, 0, cols*r.cfg.BlockWidth, rows*r.cfg.BlockHeight))

	r.log.Debug("rendering swatch grid",
		"entries", len(entries), "columns", cols, "rows", rows,
		"workers", r.cfg.Workers)

	pool := pond.New(r.cfg.Workers, len(entries), pond.MinWorkers(r.cfg.Workers))

	var (
		mu       sync.Mutex
		firstErr error
	)
	for i, entry := range entries {
		pool.Submit(func() {
			if err := r.renderSwatch(img, i, entry); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
	}
	pool.StopAndWait()

	if firstErr != nil {
		return nil, firstErr
	}
	return img, nil
}

// renderSwatch fills one block with the entry's colour and lays the name
// and hex labels over it. All drawing is clipped to the block: label ink
// can overshoot a short block's height, and without the clip concurrent
// swatches would write into each other's rows.
func (r *Renderer) renderSwatch(img *image.RGBA, idx int, entry palette.Entry) error {
	rgb, err := entry.RGB()
	if err != nil {
		return err
	}

	bw, bh := r.cfg.BlockWidth, r.cfg.BlockHeight
	x0 := (idx % r.cfg.Columns) * bw
	y0 := (idx / r.cfg.Columns) * bh
	block := image.Rect(x0, y0, x0+bw, y0+bh)
	dst := img.SubImage(block).(*image.RGBA)

	base := color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
	draw.Draw(dst, block, image.NewUniform(base), image.Point{}, draw.Src)

	// Shadow strip along the bottom edge, one shade darker than the block.
	bg := rgb.Colorful()
	h, s, l := bg.Hsl()
	shadow := colour.FromColorful(colorful.Hsl(h, s, math.Max(0, l-0.1)))
	strip := image.Rect(x0, y0+bh-bh/20, x0+bw, y0+bh)
	draw.Draw(dst, strip, image.NewUniform(color.RGBA{R: shadow.R, G: shadow.G, B: shadow.B, A: 255}), image.Point{}, draw.Src)

	label := colour.PickLabelColour(bg, r.thresholds)
	labelCol := color.RGBA{R: label.R, G: label.G, B: label.B, A: 255}

	r.log.Trace("swatch", "name", entry.Name, "hex", entry.Hex, "label", label.Hex())

	nameRun, err := FitText(entry.Name, block, r.fonts, r.cfg.NameScaleDivisor, nameVerticalOffset)
	if err != nil {
		return fmt.Errorf("entry %q: %w", entry.Name, err)
	}
	nameRun.Draw(dst, labelCol)

	// The hex line gets its own box shifted a third of the way down the
	// block, fitted independently of the name line.
	hexShift := int(float64(bh) / 3.25)
	hexBox := block.Add(image.Pt(0, hexShift))
	hexRun, err := FitText(entry.Hex, hexBox, r.fonts, r.cfg.HexScaleDivisor, -bh/20)
	if err != nil {
		return fmt.Errorf("entry %q: %w", entry.Name, err)
	}
	hexRun.Draw(dst, labelCol)

	return nil
}

// WritePNG encodes the image to path.
func WritePNG(img image.Image, path string) error {
	f, err := os.Create(path) // #nosec G304 - user-specified output path, intended to be written
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}
