package colour

// Shade ramp endpoints in OKLCH lightness. The lighter half of the ramp
// interpolates toward near-white, the darker half toward near-black.
const (
	lightEndpoint = 0.98
	darkEndpoint  = 0.10

	// Chroma attenuation rates. Near-white shades desaturate faster than
	// near-black ones, so the light side scales chroma down harder.
	lightChromaDecay = 0.95
	darkChromaDecay  = 0.65
)

// Shade pairs a Tailwind-style shade level with its colour.
type Shade struct {
	Level  int    `json:"level"`
	Colour RGB    `json:"rgb"`
	Hex    string `json:"hex"`
}

// shadeStep holds the fixed interpolation factor for one non-500 level.
// The level set is closed, so the table is a compile-time array rather
// than a runtime map.
type shadeStep struct {
	level  int
	t      float64
	darker bool
}

var shadeSteps = [...]shadeStep{
	{level: 50, t: 0.92},
	{level: 100, t: 0.80},
	{level: 200, t: 0.62},
	{level: 300, t: 0.42},
	{level: 400, t: 0.18},
	{level: 500},
	{level: 600, t: 0.18, darker: true},
	{level: 700, t: 0.38, darker: true},
	{level: 800, t: 0.56, darker: true},
	{level: 900, t: 0.76, darker: true},
	{level: 950, t: 0.92, darker: true},
}

// ShadeLevels returns the fixed 11 shade levels in ascending order.
func ShadeLevels() []int {
	levels := make([]int, len(shadeSteps))
	for i, s := range shadeSteps {
		levels[i] = s.level
	}
	return levels
}

// GenerateShades derives the 11-step tint/shade ramp for a base colour.
// Level 500 is the base colour itself, bit-exact; the other levels
// interpolate OKLCH lightness toward the light or dark endpoint and
// attenuate chroma, holding hue constant across the ramp.
func GenerateShades(base RGB) []Shade {
	ok := RGBToOKLCH(base)

	shades := make([]Shade, len(shadeSteps))
	for i, step := range shadeSteps {
		if step.level == 500 {
			shades[i] = Shade{Level: 500, Colour: base, Hex: base.Hex()}
			continue
		}

		var l, c float64
		if step.darker {
			l = ok.L - (ok.L-darkEndpoint)*step.t
			c = ok.C * (1 - step.t*darkChromaDecay)
		} else {
			l = ok.L + (lightEndpoint-ok.L)*step.t
			c = ok.C * (1 - step.t*lightChromaDecay)
		}
		if c < 0 {
			c = 0
		}

		rgb := OKLCH{L: l, C: c, H: ok.H}.RGB()
		shades[i] = Shade{Level: step.level, Colour: rgb, Hex: rgb.Hex()}
	}

	return shades
}
