package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput suppresses ANSI escapes globally, e.g. for
// --no-color or piped output.
var DisableColourOutput = false

// SupportsANSIColours reports whether stdout is a terminal that can
// render colour escapes.
func SupportsANSIColours() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// colourEnabled reports whether colour output should be emitted.
func colourEnabled() bool {
	return !DisableColourOutput && SupportsANSIColours()
}

// Swatch returns a solid colour block of the given width, using the
// background escape with spaces. Falls back to an empty string when
// colour output is disabled.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if !colourEnabled() {
		return ""
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// ColourString returns text in the given foreground colour when colour
// output is enabled, plain text otherwise.
func ColourString(c RGB, text string) string {
	if !colourEnabled() {
		return text
	}
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
	return fg + text + ansiReset
}

// FormatColourWithLabel formats a colour as swatch, label, and hex code.
func FormatColourWithLabel(c RGB, label string, width int) string {
	swatch := Swatch(c, width)
	if swatch == "" {
		return fmt.Sprintf("%-20s %s", label, c.Hex())
	}
	return fmt.Sprintf("%s  %-20s %s", swatch, label, c.Hex())
}

// FormatShadeRow renders a shade ramp as a single row of swatches, one
// block per shade level. Without colour support it falls back to the
// hex codes.
func FormatShadeRow(shades []Shade, width int) string {
	if width <= 0 {
		width = 4
	}

	var sb strings.Builder
	for i, s := range shades {
		if colourEnabled() {
			sb.WriteString(Swatch(s.Colour, width))
			continue
		}
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(s.Hex)
	}
	return sb.String()
}
