// Package cli provides the command-line interface for Swatchgrid.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatchgrid/internal/colour"
	"github.com/jmylchreest/swatchgrid/internal/palette"
)

var (
	// List command flags
	listNoColour bool
)

// newListCmd builds the list command.
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <palette.json>",
		Short: "Show the ordered palette and its label colours",
		Long: `Show the palette in final display order without rendering an image.

For each entry the table reports the chosen label tint and its WCAG
contrast ratio against the swatch background. When stdout is a terminal,
each row carries a truecolour swatch preview.

Examples:
  # Inspect ordering and label contrast
  swatchgrid list colours.json

  # Plain output for scripts
  swatchgrid list --no-colour colours.json`,
		Args: cobra.ExactArgs(1),
		RunE: runList,
	}

	cmd.Flags().BoolVar(&listNoColour, "no-colour", false, "disable terminal colour previews")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string) error {
	entries, err := palette.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}

	ordered, err := palette.Sorted(entries)
	if err != nil {
		return err
	}

	useColour := !listNoColour && term.IsTerminal(int(os.Stdout.Fd()))
	thresholds := colour.DefaultLabelThresholds()

	table := NewTable([]string{"#", "Name", "Hex", "Label", "Contrast"})
	for i, e := range ordered {
		rgb, err := e.RGB()
		if err != nil {
			return err
		}

		bg := rgb.Colorful()
		label := colour.PickLabelColour(bg, thresholds)
		ratio := colour.ContrastRatio(bg, label.Colorful())

		hexCell := e.Hex
		if useColour {
			hexCell = swatchCell(rgb) + " " + e.Hex
		}

		table.AddRow([]string{
			strconv.Itoa(i),
			e.Name,
			hexCell,
			label.Hex(),
			fmt.Sprintf("%.2f", ratio),
		})
	}

	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}

// swatchCell returns a two-cell truecolour block in the given colour.
func swatchCell(c colour.RGB) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", c.R, c.G, c.B)
}
