// Package cli provides the command-line interface for Swatchgrid.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatchgrid/internal/config"
	"github.com/jmylchreest/swatchgrid/internal/palette"
	"github.com/jmylchreest/swatchgrid/internal/render"
)

var (
	// Render command flags
	renderOutput      string
	renderFont        string
	renderColumns     int
	renderBlockWidth  int
	renderBlockHeight int
)

// newRenderCmd builds the render command.
func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <palette.json>",
		Short: "Render a palette file to a swatch sheet PNG",
		Long: `Render a JSON named-colour list to a PNG swatch sheet.

The input file is an array of {"name": ..., "hex": ...} objects. Entries
are reordered so perceptually similar colours sit next to each other, then
drawn as a grid of fixed-size blocks, each labelled with its name and hex
code in a contrasting tint of its own colour.

Geometry defaults come from SWATCHGRID_* environment variables and can be
overridden per run with flags.

Examples:
  # Render with defaults (8 columns, 400x300 blocks)
  swatchgrid render colours.json

  # Render to a specific file with 4 columns
  swatchgrid render --columns 4 --output sheet.png colours.json

  # Use a custom label font
  swatchgrid render --font JetBrainsMono-Regular.ttf colours.json`,
		Args: cobra.ExactArgs(1),
		RunE: runRender,
	}

	cmd.Flags().StringVarP(&renderOutput, "output", "o", "palette.png", "output PNG file")
	cmd.Flags().StringVarP(&renderFont, "font", "f", "", "TTF/OTF label font (default: embedded Go Regular)")
	cmd.Flags().IntVarP(&renderColumns, "columns", "c", 0, "grid columns (overrides environment)")
	cmd.Flags().IntVar(&renderBlockWidth, "block-width", 0, "swatch width in pixels (overrides environment)")
	cmd.Flags().IntVar(&renderBlockHeight, "block-height", 0, "swatch height in pixels (overrides environment)")

	return cmd
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if renderColumns > 0 {
		cfg.Columns = renderColumns
	}
	if renderBlockWidth > 0 {
		cfg.BlockWidth = renderBlockWidth
	}
	if renderBlockHeight > 0 {
		cfg.BlockHeight = renderBlockHeight
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Loading palette: %s\n", args[0])
	}

	entries, err := palette.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}

	ordered, err := palette.Sorted(entries)
	if err != nil {
		return err
	}

	fonts, err := loadFont(renderFont)
	if err != nil {
		return err
	}

	img, err := render.New(cfg, fonts, logger).Render(ordered)
	if err != nil {
		return fmt.Errorf("failed to render swatch sheet: %w", err)
	}

	if err := render.WritePNG(img, renderOutput); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d colour blocks to %s\n", len(ordered), renderOutput)
	return nil
}

// loadFont resolves the label font: a user-supplied file if given, the
// embedded default otherwise.
func loadFont(path string) (render.FaceSource, error) {
	if path == "" {
		fonts, err := render.DefaultFont()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded font: %w", err)
		}
		return fonts, nil
	}
	fonts, err := render.LoadFont(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return fonts, nil
}
