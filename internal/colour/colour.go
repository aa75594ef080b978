// Package colour provides the colour-space conversions and heuristics used
// to order swatches and pick legible label colours.
package colour

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour as 8-bit red, green and blue channel values.
type RGB struct {
	R, G, B uint8
}

// ParseError reports a hex colour code that could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid hex colour %q: %s", e.Input, e.Reason)
}

// ParseHex parses a 6-digit hex colour code with an optional # prefix.
// Returns a *ParseError if the code is too short or any channel pair is
// not valid hex.
func ParseHex(code string) (RGB, error) {
	hex := strings.TrimPrefix(code, "#")
	if len(hex) < 6 {
		return RGB{}, &ParseError{Input: code, Reason: "expected 6 hex digits"}
	}

	var channels [3]uint8
	for i := range channels {
		pair := hex[i*2 : i*2+2]
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return RGB{}, &ParseError{Input: code, Reason: fmt.Sprintf("channel %q is not hex", pair)}
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Hex returns the colour as a lowercase hex string with a # prefix.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Colorful returns the colour with channels normalised to [0,1].
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts a normalised colour back to 8-bit channels.
// Out-of-gamut values are clamped rather than wrapped.
func FromColorful(col colorful.Color) RGB {
	r, g, b := col.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
