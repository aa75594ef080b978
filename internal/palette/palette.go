// Package palette loads and orders the named colour entries that make up a
// swatch sheet.
package palette

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/swatchgrid/internal/colour"
)

// Entry is a single named colour. Entries are never mutated once loaded.
type Entry struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// RGB parses the entry's hex code.
func (e Entry) RGB() (colour.RGB, error) {
	rgb, err := colour.ParseHex(e.Hex)
	if err != nil {
		return colour.RGB{}, fmt.Errorf("entry %q: %w", e.Name, err)
	}
	return rgb, nil
}

// Load reads colour entries from a JSON file of the form
// [{"name": "Red", "hex": "#ff0000"}, ...] and validates every hex code up
// front, so a malformed entry is reported by name instead of surfacing
// mid-render.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path) // #nosec G304 - user-specified palette path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open palette file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse palette JSON: %w", err)
	}

	for _, e := range entries {
		if _, err := e.RGB(); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

// Sorted returns the entries in perceptual display order: similar colours
// adjacent, light neutrals grouped at the end. The input slice is not
// modified.
func Sorted(entries []Entry) ([]Entry, error) {
	cols := make([]colorful.Color, len(entries))
	for i, e := range entries {
		rgb, err := e.RGB()
		if err != nil {
			return nil, err
		}
		cols[i] = rgb.Colorful()
	}

	order := colour.Sequence(cols)
	sorted := make([]Entry, len(entries))
	for i, idx := range order {
		sorted[i] = entries[idx]
	}
	return sorted, nil
}
