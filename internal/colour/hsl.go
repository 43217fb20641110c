package colour

import "math"

// RGBToHSL converts an RGB colour to HSL.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
// Achromatic colours report hue 0 and saturation 0 by convention.
func RGBToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Saturation.
	if delta == 0 {
		s = 0
		h = 0
		return
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	// Hue.
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return
}

// HSLToRGB converts HSL to an RGB colour.
// h is hue (0-360), s is saturation (0-1), l is lightness (0-1).
func HSLToRGB(h, s, l float64) RGB {
	if s == 0 {
		// Achromatic (grey); hue is irrelevant.
		v := clampChannel(l * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h+120)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-120)

	return RGB{
		R: clampChannel(r * 255),
		G: clampChannel(g * 255),
		B: clampChannel(b * 255),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	// Normalize t to 0-360 range.
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}
