package colour

import "fmt"

// greySaturation is the HSL saturation below which a colour is named as
// a neutral rather than by hue band.
const greySaturation = 0.08

// hueBand maps an upper hue bound (exclusive) to a colour family name.
// Bands are checked in order; the red band wraps around 360.
type hueBand struct {
	upTo float64
	name string
}

var hueBands = [...]hueBand{
	{upTo: 15, name: "red"},
	{upTo: 45, name: "orange"},
	{upTo: 70, name: "yellow"},
	{upTo: 100, name: "lime"},
	{upTo: 150, name: "green"},
	{upTo: 180, name: "teal"},
	{upTo: 210, name: "cyan"},
	{upTo: 250, name: "blue"},
	{upTo: 275, name: "indigo"},
	{upTo: 300, name: "violet"},
	{upTo: 330, name: "pink"},
	{upTo: 345, name: "rose"},
	{upTo: 360, name: "red"},
}

// NameFor returns a semantic family name for a colour based on a static
// hue-band lookup. Desaturated colours name as neutrals by lightness.
func NameFor(rgb RGB) string {
	h, s, l := RGBToHSL(rgb)

	if s < greySaturation {
		switch {
		case l < 0.08:
			return "black"
		case l > 0.92:
			return "white"
		}
		return "gray"
	}

	for _, band := range hueBands {
		if h < band.upTo {
			return band.name
		}
	}
	return "red"
}

// namer assigns palette colour names, disambiguating repeats with a
// numeric suffix ("blue", "blue-2", ...).
type namer struct {
	seen map[string]int
}

func newNamer() *namer {
	return &namer{seen: make(map[string]int)}
}

func (n *namer) name(rgb RGB) string {
	base := NameFor(rgb)
	n.seen[base]++
	if n.seen[base] == 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n.seen[base])
}
