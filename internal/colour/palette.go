package colour

import (
	"encoding/json"
	"fmt"
)

// Mood is an optional preset that retargets every colour in the palette
// to a shared OKLCH lightness and chroma.
type Mood int

// Recognised moods.
const (
	MoodNone Mood = iota
	MoodVibrant
	MoodPastel
)

// moodTargets holds the OKLCH lightness/chroma targets per mood.
var moodTargets = map[Mood]struct{ l, c float64 }{
	MoodVibrant: {l: 0.55, c: 0.22},
	MoodPastel:  {l: 0.82, c: 0.07},
}

// ParseMood resolves a mood preset name. The empty string means no mood.
func ParseMood(name string) (Mood, error) {
	switch name {
	case "":
		return MoodNone, nil
	case "vibrant":
		return MoodVibrant, nil
	case "pastel":
		return MoodPastel, nil
	}
	return MoodNone, fmt.Errorf("%w: %q", ErrUnknownMood, name)
}

// String returns the mood's name.
func (m Mood) String() string {
	switch m {
	case MoodVibrant:
		return "vibrant"
	case MoodPastel:
		return "pastel"
	}
	return "none"
}

// Options configures palette generation.
type Options struct {
	// Count is the total number of base colours to produce. It must be at
	// least the number of anchors supplied.
	Count int

	// Strategy selects the hue-generation algorithm. Only consulted when a
	// single anchor is supplied; multiple anchors use gap-filling instead.
	Strategy Strategy

	// Raw skips the normalization pass, keeping each generated colour at
	// the anchor's HSL saturation and lightness.
	Raw bool

	// Mood optionally retargets every colour, the anchor included, to the
	// preset's OKLCH lightness and chroma.
	Mood Mood
}

// PaletteColour is one base colour of a generated palette together with
// its shade ramp.
type PaletteColour struct {
	Name      string  `json:"name"`
	Hex       string  `json:"hex"`
	RGB       RGB     `json:"rgb"`
	Hue       float64 `json:"hue"`
	Generated bool    `json:"generated"`
	Shades    []Shade `json:"shades"`
}

// Palette is an ordered set of base colours with shade ramps. Explicit
// anchors come first, generated fills after, in assignment order.
type Palette struct {
	Strategy Strategy        `json:"-"`
	Mood     Mood            `json:"-"`
	Colours  []PaletteColour `json:"colours"`
}

// Generate derives a full palette from the anchor colours.
//
// With one anchor, the strategy produces the hue set from the anchor's
// HSL hue and the generated colours take the anchor's HSL saturation and
// lightness. With several anchors, the anchors pass through in input
// order and the remaining slots are filled at the midpoints of the
// largest hue gaps. Unless opts.Raw is set, generated colours are then
// normalized to a shared OKLCH lightness and chroma: the first anchor's
// by default, the mood preset's (anchor included) when a mood is set.
func Generate(anchors []RGB, opts Options) (*Palette, error) {
	if len(anchors) == 0 {
		return nil, fmt.Errorf("%w: no anchor colours", ErrMalformedColour)
	}
	if opts.Count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, opts.Count)
	}
	count := max(opts.Count, len(anchors))

	_, anchorSat, anchorLight := RGBToHSL(anchors[0])

	bases := make([]RGB, 0, count)
	generated := make([]bool, count)

	if len(anchors) == 1 {
		anchorHue, _, _ := RGBToHSL(anchors[0])
		hues, err := opts.Strategy.Hues(anchorHue, count)
		if err != nil {
			return nil, err
		}

		// Index 0 keeps the anchor bit-exact; re-deriving it from HSL
		// would reintroduce rounding.
		bases = append(bases, anchors[0])
		for _, h := range hues[1:] {
			bases = append(bases, HSLToRGB(h, anchorSat, anchorLight))
		}
	} else {
		bases = append(bases, anchors...)

		if count > len(anchors) {
			anchorHues := make([]float64, len(anchors))
			for i, a := range anchors {
				anchorHues[i], _, _ = RGBToHSL(a)
			}
			for _, h := range FillGaps(anchorHues, count-len(anchors)) {
				bases = append(bases, HSLToRGB(h, anchorSat, anchorLight))
			}
		}
	}
	for i := len(anchors); i < count; i++ {
		generated[i] = true
	}

	if !opts.Raw {
		normalize(bases, opts.Mood)
	}

	palette := &Palette{
		Strategy: opts.Strategy,
		Mood:     opts.Mood,
		Colours:  make([]PaletteColour, len(bases)),
	}

	names := newNamer()
	for i, base := range bases {
		hue, _, _ := RGBToHSL(base)
		palette.Colours[i] = PaletteColour{
			Name:      names.name(base),
			Hex:       base.Hex(),
			RGB:       base,
			Hue:       hue,
			Generated: generated[i],
			Shades:    GenerateShades(base),
		}
	}

	return palette, nil
}

// normalize retargets colours to a shared OKLCH lightness and chroma
// while preserving each colour's hue. Without a mood the targets come
// from the anchor (the first colour), which is itself left untouched;
// with a mood the preset's targets apply to every colour.
func normalize(bases []RGB, mood Mood) {
	var targetL, targetC float64
	start := 1

	if target, ok := moodTargets[mood]; ok {
		targetL, targetC = target.l, target.c
		start = 0
	} else {
		anchor := RGBToOKLCH(bases[0])
		targetL, targetC = anchor.L, anchor.C
	}

	for i := start; i < len(bases); i++ {
		ok := RGBToOKLCH(bases[i])
		bases[i] = OKLCH{L: targetL, C: targetC, H: ok.H}.RGB()
	}
}

// Len returns the number of base colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// ToHex returns the base colours as hex strings in palette order.
func (p *Palette) ToHex() []string {
	hexes := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexes[i] = c.Hex
	}
	return hexes
}

// paletteJSON is the serialized palette shape.
type paletteJSON struct {
	Strategy string          `json:"strategy"`
	Mood     string          `json:"mood,omitempty"`
	Count    int             `json:"count"`
	Colours  []PaletteColour `json:"colours"`
}

// ToJSON serializes the palette, including every shade ramp.
func (p *Palette) ToJSON() ([]byte, error) {
	out := paletteJSON{
		Strategy: p.Strategy.String(),
		Count:    len(p.Colours),
		Colours:  p.Colours,
	}
	if p.Mood != MoodNone {
		out.Mood = p.Mood.String()
	}
	return json.MarshalIndent(out, "", "  ")
}
