// Package config holds renderer settings, loaded from the environment with
// flag overrides applied by the CLI.
package config

import (
	"fmt"
	"runtime"

	"github.com/kelseyhightower/envconfig"
)

// Config controls swatch geometry and rendering behaviour. Every field has
// an environment default (SWATCHGRID_* variables) so the tuned values can be
// changed without rebuilding.
type Config struct {
	BlockWidth  int `envconfig:"BLOCK_WIDTH" default:"400"`
	BlockHeight int `envconfig:"BLOCK_HEIGHT" default:"300"`
	Columns     int `envconfig:"COLUMNS" default:"8"`

	// Workers caps the per-swatch render pool. Zero means one worker per
	// logical CPU.
	Workers int `envconfig:"WORKERS" default:"0"`

	// Initial scale divisors for the two label lines: text starts at
	// block-width/divisor pixels and shrinks until it fits.
	NameScaleDivisor float64 `envconfig:"NAME_SCALE_DIVISOR" default:"3.5"`
	HexScaleDivisor  float64 `envconfig:"HEX_SCALE_DIVISOR" default:"6.5"`
}

// Load reads configuration from SWATCHGRID_* environment variables, filling
// unset values with defaults.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("swatchgrid", &c); err != nil {
		return Config{}, fmt.Errorf("failed to read environment config: %w", err)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return c, nil
}

// Validate checks that the configured geometry is usable.
func (c Config) Validate() error {
	if c.BlockWidth <= 0 || c.BlockHeight <= 0 {
		return fmt.Errorf("block size must be positive, got %dx%d", c.BlockWidth, c.BlockHeight)
	}
	if c.Columns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", c.Columns)
	}
	if c.NameScaleDivisor <= 0 || c.HexScaleDivisor <= 0 {
		return fmt.Errorf("scale divisors must be positive")
	}
	return nil
}
