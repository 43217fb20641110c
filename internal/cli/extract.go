package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
	"github.com/hueforge/hueforge/internal/image"
)

// newExtractCmd builds the extract command.
func newExtractCmd() *cobra.Command {
	flags := &paletteFlags{}
	var anchorCount int

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Generate a palette from an image's dominant colours",
		Long: `Extract dominant colours from an image and use them as palette anchors.

The image is clustered with k-means and the most dominant colours become
the anchors, ordered by how much of the image they cover. Generation
then proceeds exactly as with explicit colours: gap-filling tops the
palette up to --count, normalization and moods apply, and every base
colour gets its 11-step shade ramp.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Palette anchored on the wallpaper's two dominant colours
  hueforge extract wallpaper.jpg

  # One dominant anchor, triadic companions
  hueforge extract --anchors 1 -s triadic -c 3 photo.png

  # Pastel palette from a photo, saved as JSON
  hueforge extract photo.webp --mood pastel -f json -o palette.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], anchorCount, flags)
		},
	}

	cmd.Flags().IntVarP(&anchorCount, "anchors", "a", 2, "number of dominant colours to use as anchors (1-8)")
	flags.register(cmd.Flags())
	return cmd
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, path string, anchorCount int, flags *paletteFlags) error {
	logger := newLogger(cmd)

	if anchorCount < 1 || anchorCount > 8 {
		return fmt.Errorf("invalid anchor count: %d (must be 1-8)", anchorCount)
	}
	if err := image.ValidatePath(path); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	logger.Debug("loading image", "path", path)
	img, err := image.NewFileLoader().Load(path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	anchors, err := colour.DominantColours(img, anchorCount)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	if len(anchors) > anchorCount {
		anchors = anchors[:anchorCount]
	}
	logger.Debug("anchors extracted", "count", len(anchors))

	if flags.count < len(anchors) {
		flags.count = len(anchors)
	}
	opts, err := flags.options()
	if err != nil {
		return err
	}

	palette, err := colour.Generate(anchors, opts)
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}

	out, err := renderPalette(palette, flags.format, flags.preview)
	if err != nil {
		return err
	}

	return writeOutput(cmd, flags.output, out)
}
