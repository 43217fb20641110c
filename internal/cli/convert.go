package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
)

// newConvertCmd builds the convert command.
func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <colour> [<colour>...]",
		Short: "Show a colour in sRGB, HSL, and OKLCH",
		Long: `Convert hex colours between representations.

Each colour is printed with its hex form, 8-bit RGB channels, HSL
(hue 0-360, saturation and lightness 0-1), and OKLCH (perceptual
lightness 0-1, chroma, hue 0-360).

Examples:
  hueforge convert '#aa5420'
  hueforge convert aa5420 1e66f5 '#d20f39'`,
		Args: cobra.MinimumNArgs(1),
		RunE: runConvert,
	}

	return cmd
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	table := NewTable([]string{"HEX", "RGB", "HSL", "OKLCH", "NAME"})

	for _, arg := range args {
		if !validHex(arg) {
			return fmt.Errorf("invalid colour %q: expected #rgb or #rrggbb", arg)
		}
		rgb, err := colour.ParseHex(arg)
		if err != nil {
			return fmt.Errorf("invalid colour %q: %w", arg, err)
		}

		h, s, l := colour.RGBToHSL(rgb)
		ok := colour.RGBToOKLCH(rgb)

		table.AddRow([]string{
			rgb.Hex(),
			rgb.String(),
			fmt.Sprintf("hsl(%.1f, %.3f, %.3f)", h, s, l),
			fmt.Sprintf("oklch(%.4f, %.4f, %.1f)", ok.L, ok.C, ok.H),
			colour.NameFor(rgb),
		})
	}

	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}
