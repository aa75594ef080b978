// Package colour provides colour-space conversions and heuristics.
package colour

import (
	"errors"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		code string
		want RGB
	}{
		{
			name: "red with prefix",
			code: "#ff0000",
			want: RGB{R: 255, G: 0, B: 0},
		},
		{
			name: "red without prefix",
			code: "ff0000",
			want: RGB{R: 255, G: 0, B: 0},
		},
		{
			name: "uppercase",
			code: "#00FF7F",
			want: RGB{R: 0, G: 255, B: 127},
		},
		{
			name: "black",
			code: "#000000",
			want: RGB{R: 0, G: 0, B: 0},
		},
		{
			name: "white",
			code: "#ffffff",
			want: RGB{R: 255, G: 255, B: 255},
		},
		{
			name: "mixed case",
			code: "#AbCdEf",
			want: RGB{R: 0xab, G: 0xcd, B: 0xef},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.code)
			if err != nil {
				t.Fatalf("ParseHex(%q) returned error: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.code, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "empty", code: ""},
		{name: "only prefix", code: "#"},
		{name: "too short", code: "#fff"},
		{name: "non-hex characters", code: "#zz0000"},
		{name: "non-hex in last pair", code: "#ff00gg"},
		{name: "whitespace", code: "#ff 000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.code)
			if err == nil {
				t.Fatalf("ParseHex(%q) expected error, got nil", tt.code)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("ParseHex(%q) error type = %T, want *ParseError", tt.code, err)
			}
		})
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	// Every valid code must survive parse and re-encode exactly.
	codes := []string{
		"#000000", "#ffffff", "#ff0000", "#00ff00", "#0000ff",
		"#123456", "#abcdef", "#808080", "#f0e68c", "#c71585",
	}

	for _, code := range codes {
		rgb, err := ParseHex(code)
		if err != nil {
			t.Fatalf("ParseHex(%q) returned error: %v", code, err)
		}
		if got := rgb.Hex(); got != code {
			t.Errorf("round trip of %q = %q", code, got)
		}
	}
}

func TestColorfulRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}},
		{name: "arbitrary", rgb: RGB{R: 17, G: 203, B: 91}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColorful(tt.rgb.Colorful()); got != tt.rgb {
				t.Errorf("FromColorful(Colorful()) = %+v, want %+v", got, tt.rgb)
			}
		})
	}
}

func TestFromColorfulClampsOutOfGamut(t *testing.T) {
	got := FromColorful(colorful.Color{R: 1.4, G: -0.2, B: 1.0})
	want := RGB{R: 255, G: 0, B: 255}
	if got != want {
		t.Errorf("FromColorful(out of gamut) = %+v, want %+v", got, want)
	}
}
