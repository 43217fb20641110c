// Package colour provides colour space conversions and palette derivation.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the colour package.
var (
	// ErrMalformedColour indicates a hex string that does not parse as a colour.
	ErrMalformedColour = errors.New("malformed colour")

	// ErrInvalidCount indicates a requested colour count that is not positive.
	ErrInvalidCount = errors.New("invalid colour count")

	// ErrUnknownMood indicates an unrecognised mood preset name.
	ErrUnknownMood = errors.New("unknown mood")
)

// RGB represents a colour in sRGB with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a hex colour string into an RGB value.
// Accepts 3-digit and 6-digit forms, with or without a leading #,
// case-insensitive. The 3-digit form expands each digit by duplication
// (e.g., "#a83" is "#aa8833").
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(s) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = s[i]
			expanded[2*i+1] = s[i]
		}
		s = string(expanded)
	case 6:
		// Already canonical length.
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrMalformedColour, hex)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[2*i])
		lo, ok2 := hexNibble(s[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("%w: %q", ErrMalformedColour, hex)
		}
		channels[i] = hi<<4 | lo
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// hexNibble decodes a single hex digit.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// clampChannel clamps a floating-point channel value to [0, 255] and
// rounds to the nearest integer. Clamping happens only here, at the
// byte-packing boundary, so intermediate out-of-gamut values survive
// a round trip.
func clampChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// normalizeHue wraps a hue angle into [0, 360) using floor-modulo, so
// negative inputs wrap correctly.
func normalizeHue(h float64) float64 {
	m := math.Mod(h, 360)
	if m < 0 {
		m += 360
	}
	return m
}
