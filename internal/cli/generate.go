package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hueforge/hueforge/internal/colour"
)

// paletteFlags holds the palette-shaping options shared by the generate
// and extract commands.
type paletteFlags struct {
	count    int
	strategy string
	raw      bool
	mood     string
	format   string
	output   string
	preview  bool
}

// register binds the shared palette flags to a flag set.
func (f *paletteFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.count, "count", "c", 5, "total number of base colours (>= number of anchors)")
	fs.StringVarP(&f.strategy, "strategy", "s", "evenly-spaced",
		fmt.Sprintf("hue strategy (%s)", strings.Join(colour.StrategyNames(), ", ")))
	fs.BoolVar(&f.raw, "raw", false, "skip OKLCH normalization of generated colours")
	fs.StringVarP(&f.mood, "mood", "m", "", "mood preset (vibrant, pastel)")
	fs.StringVarP(&f.format, "format", "f", "text", "output format (text, hex, json)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&f.preview, "preview", false, "show shade ramps as colour swatches")
}

// options validates the shared flags and converts them into palette
// generation options. Strategy names are rejected here; the colour
// package itself falls back to evenly-spaced for unknown names.
func (f *paletteFlags) options() (colour.Options, error) {
	if f.count < 1 {
		return colour.Options{}, fmt.Errorf("%w: %d", colour.ErrInvalidCount, f.count)
	}
	if !colour.KnownStrategy(f.strategy) {
		return colour.Options{}, fmt.Errorf("unknown strategy %q (available: %s)",
			f.strategy, strings.Join(colour.StrategyNames(), ", "))
	}

	mood, err := colour.ParseMood(f.mood)
	if err != nil {
		return colour.Options{}, fmt.Errorf("%w (available: vibrant, pastel)", err)
	}

	return colour.Options{
		Count:    f.count,
		Strategy: colour.ParseStrategy(f.strategy),
		Raw:      f.raw,
		Mood:     mood,
	}, nil
}

// newGenerateCmd builds the generate command.
func newGenerateCmd() *cobra.Command {
	flags := &paletteFlags{}

	cmd := &cobra.Command{
		Use:   "generate <colour> [<colour>...]",
		Short: "Generate a palette with shade ramps from anchor colours",
		Long: `Generate a colour palette from one or more anchor hex colours.

A single anchor picks additional hues with the chosen harmony strategy.
With several anchors the strategy is skipped and the remaining slots are
filled at the midpoints of the largest hue gaps, so the result stays
balanced around your inputs. Every base colour is expanded into an
11-step shade ramp (50-950); the anchor itself is preserved exactly at
shade 500.

Unless --raw is given, generated colours are normalized to the anchor's
OKLCH lightness and chroma so the palette reads as one family. A mood
preset overrides that target for every colour:

  vibrant  - L=0.55 C=0.22, saturated mid-tones
  pastel   - L=0.82 C=0.07, soft washed-out tones

Examples:
  # Five evenly spaced colours around one anchor
  hueforge generate '#aa5420'

  # A triadic trio, anchors untouched
  hueforge generate '#aa5420' -s triadic -c 3

  # Pastel take on the same palette
  hueforge generate '#aa5420' -s triadic -c 3 --mood pastel

  # Two fixed brand colours plus four gap-filled companions
  hueforge generate '#1e66f5' '#d20f39' -c 6

  # Machine-readable output
  hueforge generate '#aa5420' -f json -o palette.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, flags)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string, flags *paletteFlags) error {
	logger := newLogger(cmd)

	anchors := make([]colour.RGB, 0, len(args))
	for _, arg := range args {
		if !validHex(arg) {
			return fmt.Errorf("invalid colour %q: expected #rgb or #rrggbb", arg)
		}
		rgb, err := colour.ParseHex(arg)
		if err != nil {
			return fmt.Errorf("invalid colour %q: %w", arg, err)
		}
		anchors = append(anchors, rgb)
	}

	if flags.count < len(anchors) {
		logger.Debug("raising count to anchor count", "count", flags.count, "anchors", len(anchors))
		flags.count = len(anchors)
	}

	opts, err := flags.options()
	if err != nil {
		return err
	}
	logger.Debug("generating palette",
		"anchors", len(anchors),
		"count", opts.Count,
		"strategy", opts.Strategy.String(),
		"raw", opts.Raw,
		"mood", opts.Mood.String())

	palette, err := colour.Generate(anchors, opts)
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}
	logger.Debug("palette generated", "colours", palette.Len())

	out, err := renderPalette(palette, flags.format, flags.preview)
	if err != nil {
		return err
	}

	return writeOutput(cmd, flags.output, out)
}

// validHex is the upstream shape check for anchor colours: #rgb or
// #rrggbb, case-insensitive, # optional.
func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
