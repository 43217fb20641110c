package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
)

// renderPalette formats a palette in the requested output format.
func renderPalette(p *colour.Palette, format string, preview bool) (string, error) {
	switch format {
	case "text":
		return renderText(p, preview), nil
	case "hex":
		return strings.Join(p.ToHex(), "\n") + "\n", nil
	case "json":
		data, err := p.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to marshal palette: %w", err)
		}
		return string(data) + "\n", nil
	}
	return "", fmt.Errorf("unknown format: %s (available: text, hex, json)", format)
}

// renderText renders each base colour with its shade ramp. With preview
// the ramp shows as a row of swatches; otherwise as level/hex pairs.
func renderText(p *colour.Palette, preview bool) string {
	var sb strings.Builder

	for i, c := range p.Colours {
		if i > 0 {
			sb.WriteString("\n")
		}

		label := c.Name
		if c.Generated {
			label += " (generated)"
		}
		sb.WriteString(colour.FormatColourWithLabel(c.RGB, label, 8))
		sb.WriteString("\n")

		if preview {
			sb.WriteString("  ")
			sb.WriteString(colour.FormatShadeRow(c.Shades, 5))
			sb.WriteString("\n")
		}

		for _, s := range c.Shades {
			sb.WriteString(fmt.Sprintf("  %4d %s\n", s.Level, colour.ColourString(s.Colour, s.Hex)))
		}
	}

	return sb.String()
}

// writeOutput writes rendered output to the given path, or to the
// command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	// Expand ~ to the home directory.
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s (%d bytes)\n", path, len(content))
	return nil
}
