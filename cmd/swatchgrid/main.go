// Swatchgrid - a labelled colour swatch sheet renderer
//
// Swatchgrid renders JSON named-colour lists as PNG swatch grids, with
// perceptual ordering and contrast-aware labels.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/swatchgrid/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
