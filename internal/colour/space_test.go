// Package colour provides colour-space conversions and heuristics.
package colour

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestOkLab(t *testing.T) {
	tests := []struct {
		name    string
		col     colorful.Color
		wantL   float64
		neutral bool
	}{
		{
			name:    "white",
			col:     colorful.Color{R: 1, G: 1, B: 1},
			wantL:   1.0,
			neutral: true,
		},
		{
			name:    "black",
			col:     colorful.Color{R: 0, G: 0, B: 0},
			wantL:   0.0,
			neutral: true,
		},
		{
			name:    "mid grey",
			col:     colorful.Color{R: 0.5, G: 0.5, B: 0.5},
			wantL:   0.598, // Oklab lightness of 50% sRGB grey
			neutral: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, a, b := OkLab(tt.col)
			if math.Abs(l-tt.wantL) > 0.01 {
				t.Errorf("OkLab() l = %f, want %f", l, tt.wantL)
			}
			if tt.neutral && (math.Abs(a) > 0.001 || math.Abs(b) > 0.001) {
				t.Errorf("OkLab() chroma = (%f, %f), want near zero for neutral input", a, b)
			}
		})
	}
}

// Oklab distance must reflect perception: red is closer to orange than to
// blue, whatever raw RGB distance says.
func TestOkLabDistanceIsPerceptual(t *testing.T) {
	dist := func(c1, c2 colorful.Color) float64 {
		l1, a1, b1 := OkLab(c1)
		l2, a2, b2 := OkLab(c2)
		return math.Sqrt((l1-l2)*(l1-l2) + (a1-a2)*(a1-a2) + (b1-b2)*(b1-b2))
	}

	red := colorful.Color{R: 1, G: 0, B: 0}
	orange := colorful.Color{R: 1, G: 0.5, B: 0}
	blue := colorful.Color{R: 0, G: 0, B: 1}

	if dist(red, orange) >= dist(red, blue) {
		t.Errorf("distance(red, orange) = %f, want less than distance(red, blue) = %f",
			dist(red, orange), dist(red, blue))
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		col  colorful.Color
		want float64
	}{
		{name: "black", col: colorful.Color{R: 0, G: 0, B: 0}, want: 0},
		{name: "white", col: colorful.Color{R: 1, G: 1, B: 1}, want: 1},
		{name: "pure red", col: colorful.Color{R: 1, G: 0, B: 0}, want: 0.299},
		{name: "pure green", col: colorful.Color{R: 0, G: 1, B: 0}, want: 0.587},
		{name: "pure blue", col: colorful.Color{R: 0, G: 0, B: 1}, want: 0.114},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.col); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Luminance() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	black := colorful.Color{R: 0, G: 0, B: 0}
	white := colorful.Color{R: 1, G: 1, B: 1}

	if got := ContrastRatio(black, white); math.Abs(got-21.0) > 0.01 {
		t.Errorf("ContrastRatio(black, white) = %f, want 21", got)
	}
	if got := ContrastRatio(white, white); math.Abs(got-1.0) > 0.01 {
		t.Errorf("ContrastRatio(white, white) = %f, want 1", got)
	}
	// Symmetric regardless of argument order.
	if ContrastRatio(black, white) != ContrastRatio(white, black) {
		t.Error("ContrastRatio is not symmetric")
	}
}

func TestNormaliseHue(t *testing.T) {
	tests := []struct {
		name string
		h    float64
		want float64
	}{
		{name: "in range", h: 120, want: 120},
		{name: "negative", h: -60, want: 300},
		{name: "wraps above", h: 400, want: 40},
		{name: "zero", h: 0, want: 0},
		{name: "full turn", h: 360, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normaliseHue(tt.h); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("normaliseHue(%f) = %f, want %f", tt.h, got, tt.want)
			}
		})
	}
}
