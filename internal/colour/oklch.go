package colour

import "math"

// OKLCH represents a colour in the OKLCH cylindrical model.
// L is lightness in roughly [0, 1], C is chroma (0 at grey, ~0.37 at the
// most saturated in-gamut sRGB colours), H is hue in degrees [0, 360).
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// RGBToOKLCH converts an sRGB colour to OKLCH.
func RGBToOKLCH(rgb RGB) OKLCH {
	// sRGB → linear RGB.
	lr := srgbToLinear(float64(rgb.R) / 255.0)
	lg := srgbToLinear(float64(rgb.G) / 255.0)
	lb := srgbToLinear(float64(rgb.B) / 255.0)

	// Linear RGB → OKLAB.
	l, a, b := linearRGBToOKLAB(lr, lg, lb)

	// OKLAB → OKLCH polar form.
	chroma := math.Sqrt(a*a + b*b)
	hue := normalizeHue(math.Atan2(b, a) * (180.0 / math.Pi))

	return OKLCH{L: l, C: chroma, H: hue}
}

// RGB converts an OKLCH colour back to sRGB. Out-of-gamut values are
// carried through the linear stages unclamped and only clamped at the
// final byte-packing step.
func (ok OKLCH) RGB() RGB {
	// OKLCH → OKLAB.
	hRad := ok.H * (math.Pi / 180.0)
	a := ok.C * math.Cos(hRad)
	b := ok.C * math.Sin(hRad)

	// OKLAB → linear RGB.
	lr, lg, lb := oklabToLinearRGB(ok.L, a, b)

	// Linear RGB → sRGB.
	return RGB{
		R: clampChannel(linearToSRGB(lr) * 255.0),
		G: clampChannel(linearToSRGB(lg) * 255.0),
		B: clampChannel(linearToSRGB(lb) * 255.0),
	}
}

// srgbToLinear converts a single sRGB component [0,1] to linear RGB
// using the standard piecewise transfer function.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts a single linear RGB component to sRGB. Negative
// out-of-gamut values take the linear segment, so no clamp is needed
// before the power law.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// linearRGBToOKLAB converts linear RGB to OKLAB (L, a, b).
// Matrix constants are the OKLAB reference coefficients; deviating from
// them shifts hues visibly.
func linearRGBToOKLAB(r, g, b float64) (float64, float64, float64) {
	// M1: linear RGB → LMS.
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	// M2: LMS' → Lab.
	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return L, A, B
}

// oklabToLinearRGB converts OKLAB (L, a, b) to linear RGB.
func oklabToLinearRGB(L, a, b float64) (float64, float64, float64) {
	// Inverse M2: Lab → LMS'.
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	// Cube: LMS' → LMS.
	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	// Inverse M1: LMS → linear RGB.
	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return r, g, bl
}
