// Package render draws swatch sheets: block fills, fitted label text and
// final PNG composition.
package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FaceSource produces font faces at arbitrary pixel sizes. The text fitter
// consults it repeatedly while searching for a fitting scale.
type FaceSource interface {
	FaceAt(size float64) (font.Face, error)
}

// OpenTypeSource builds faces from a parsed OpenType/TrueType font.
type OpenTypeSource struct {
	font *sfnt.Font
}

// DefaultFont returns a source backed by the embedded Go Regular face.
func DefaultFont() (*OpenTypeSource, error) {
	return ParseFont(goregular.TTF)
}

// LoadFont reads and parses a TTF or OTF font file.
func LoadFont(path string) (*OpenTypeSource, error) {
	data, err := os.ReadFile(path) // #nosec G304 - user-specified font path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	src, err := ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("font file %s: %w", path, err)
	}
	return src, nil
}

// ParseFont parses raw font data.
func ParseFont(data []byte) (*OpenTypeSource, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &OpenTypeSource{font: f}, nil
}

// FaceAt returns a face sized in pixels (72 DPI, so point size equals pixel
// size).
func (s *OpenTypeSource) FaceAt(size float64) (font.Face, error) {
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %gpx font face: %w", size, err)
	}
	return face, nil
}
