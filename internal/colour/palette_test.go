package colour

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func mustParse(t *testing.T, hex string) RGB {
	t.Helper()
	rgb, err := ParseHex(hex)
	if err != nil {
		t.Fatalf("ParseHex(%q) error = %v", hex, err)
	}
	return rgb
}

// End-to-end scenario: a triadic palette from #aa5420 places hues at the
// anchor's HSL hue, +120 and +240, keeps the anchor bit-exact at shade
// 500, and emits 11 shades per colour.
func TestGenerateTriadicEndToEnd(t *testing.T) {
	anchor := mustParse(t, "#aa5420")
	anchorHue, _, _ := RGBToHSL(anchor)

	palette, err := Generate([]RGB{anchor}, Options{Count: 3, Strategy: StrategyTriadic, Raw: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if palette.Len() != 3 {
		t.Fatalf("palette has %d colours, want 3", palette.Len())
	}

	wantHues := []float64{anchorHue, anchorHue + 120, anchorHue + 240}
	for i, c := range palette.Colours {
		if !hueClose(c.Hue, wantHues[i]) {
			// Generated colours pass through 8-bit quantization, so allow
			// a small drift on non-anchor hues.
			diff := math.Abs(normalizeHue(c.Hue) - normalizeHue(wantHues[i]))
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > 1.5 {
				t.Errorf("colour[%d] hue = %v, want ~%v", i, c.Hue, wantHues[i])
			}
		}
	}

	if palette.Colours[0].Hex != "#aa5420" {
		t.Errorf("anchor hex = %s, want #aa5420", palette.Colours[0].Hex)
	}

	totalShades := 0
	for _, c := range palette.Colours {
		totalShades += len(c.Shades)
		if len(c.Shades) != 11 {
			t.Errorf("colour %s has %d shades, want 11", c.Hex, len(c.Shades))
		}
	}
	if totalShades != 33 {
		t.Errorf("total shades = %d, want 33", totalShades)
	}

	for _, s := range palette.Colours[0].Shades {
		if s.Level == 500 && s.Hex != "#aa5420" {
			t.Errorf("anchor shade 500 = %s, want #aa5420 exactly", s.Hex)
		}
	}
}

func TestGenerateOrdering(t *testing.T) {
	anchors := []RGB{
		mustParse(t, "#aa5420"),
		mustParse(t, "#2054aa"),
	}

	palette, err := Generate(anchors, Options{Count: 5, Strategy: StrategyEvenlySpaced})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if palette.Len() != 5 {
		t.Fatalf("palette has %d colours, want 5", palette.Len())
	}

	// Explicit inputs first, fills after, in assignment order.
	if palette.Colours[0].RGB != anchors[0] {
		t.Errorf("colour[0] = %s, want first anchor", palette.Colours[0].Hex)
	}
	if palette.Colours[0].Generated || palette.Colours[1].Generated {
		t.Error("anchors must not be flagged as generated")
	}
	for i := 2; i < 5; i++ {
		if !palette.Colours[i].Generated {
			t.Errorf("colour[%d] should be flagged as generated", i)
		}
	}
}

// Without raw, generated colours share the anchor's OKLCH lightness and
// chroma while keeping their own hues.
func TestGenerateNormalization(t *testing.T) {
	anchor := mustParse(t, "#aa5420")
	target := RGBToOKLCH(anchor)

	palette, err := Generate([]RGB{anchor}, Options{Count: 4, Strategy: StrategyEvenlySpaced})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for i, c := range palette.Colours[1:] {
		ok := RGBToOKLCH(c.RGB)
		if math.Abs(ok.L-target.L) > 0.02 {
			t.Errorf("colour[%d] L = %f, want ~%f", i+1, ok.L, target.L)
		}
		if math.Abs(ok.C-target.C) > 0.03 {
			t.Errorf("colour[%d] C = %f, want ~%f", i+1, ok.C, target.C)
		}
	}
}

// A mood preset retargets every colour, the anchor included.
func TestGenerateMood(t *testing.T) {
	tests := []struct {
		name  string
		mood  Mood
		wantL float64
		wantC float64
	}{
		{name: "vibrant", mood: MoodVibrant, wantL: 0.55, wantC: 0.22},
		{name: "pastel", mood: MoodPastel, wantL: 0.82, wantC: 0.07},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor := mustParse(t, "#aa5420")
			palette, err := Generate([]RGB{anchor}, Options{Count: 3, Strategy: StrategyTriadic, Mood: tt.mood})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			for i, c := range palette.Colours {
				ok := RGBToOKLCH(c.RGB)
				// Gamut clamping can nudge lightness for hues that cannot
				// carry the target chroma, hence the loose tolerance.
				if math.Abs(ok.L-tt.wantL) > 0.06 {
					t.Errorf("colour[%d] L = %f, want ~%f", i, ok.L, tt.wantL)
				}
				// Chroma may fall short of the target when the hue cannot
				// carry it in gamut, but must not exceed it meaningfully.
				if ok.C > tt.wantC+0.03 {
					t.Errorf("colour[%d] C = %f, want <= ~%f", i, ok.C, tt.wantC)
				}
			}
		})
	}
}

// Raw skips normalization entirely: generated colours keep the anchor's
// HSL saturation and lightness rather than a shared OKLCH target.
func TestGenerateRaw(t *testing.T) {
	anchor := mustParse(t, "#aa5420")
	_, wantS, wantL := RGBToHSL(anchor)

	palette, err := Generate([]RGB{anchor}, Options{Count: 4, Strategy: StrategyEvenlySpaced, Raw: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for i, c := range palette.Colours[1:] {
		_, s, l := RGBToHSL(c.RGB)
		if math.Abs(s-wantS) > 0.02 {
			t.Errorf("colour[%d] saturation = %f, want ~%f", i+1, s, wantS)
		}
		if math.Abs(l-wantL) > 0.02 {
			t.Errorf("colour[%d] lightness = %f, want ~%f", i+1, l, wantL)
		}
	}
}

func TestGenerateMultiAnchorGapFill(t *testing.T) {
	// Pure red and pure cyan sit 180° apart in HSL; one fill lands at
	// the midpoint of the first-found largest gap.
	anchors := []RGB{
		{R: 255},
		{G: 255, B: 255},
	}

	palette, err := Generate(anchors, Options{Count: 3, Raw: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if palette.Colours[0].RGB != anchors[0] || palette.Colours[1].RGB != anchors[1] {
		t.Fatal("anchors must pass through unchanged in raw mode")
	}

	fillHue, _, _ := RGBToHSL(palette.Colours[2].RGB)
	diff := math.Abs(fillHue - 90)
	if diff > 1.5 {
		t.Errorf("fill hue = %v, want ~90 (midpoint of first-found gap)", fillHue)
	}
}

func TestGenerateErrors(t *testing.T) {
	anchor := RGB{R: 0xaa, G: 0x54, B: 0x20}

	t.Run("no anchors", func(t *testing.T) {
		if _, err := Generate(nil, Options{Count: 3}); err == nil {
			t.Error("expected error for empty anchors")
		}
	})

	t.Run("non-positive count", func(t *testing.T) {
		_, err := Generate([]RGB{anchor}, Options{Count: 0})
		if !errors.Is(err, ErrInvalidCount) {
			t.Errorf("error = %v, want ErrInvalidCount", err)
		}
	})

	t.Run("count below anchors is raised", func(t *testing.T) {
		palette, err := Generate([]RGB{anchor, {B: 255}}, Options{Count: 1})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if palette.Len() != 2 {
			t.Errorf("palette has %d colours, want 2", palette.Len())
		}
	})
}

func TestParseMood(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mood
		wantErr bool
	}{
		{name: "empty is none", input: "", want: MoodNone},
		{name: "vibrant", input: "vibrant", want: MoodVibrant},
		{name: "pastel", input: "pastel", want: MoodPastel},
		{name: "unknown", input: "moody", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMood(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMood) {
					t.Errorf("ParseMood(%q) error = %v, want ErrUnknownMood", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMood(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMood(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPaletteToJSON(t *testing.T) {
	anchor := RGB{R: 0xaa, G: 0x54, B: 0x20}
	palette, err := Generate([]RGB{anchor}, Options{Count: 3, Strategy: StrategyTriadic})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := palette.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	for _, want := range []string{
		`"strategy": "triadic"`,
		`"count": 3`,
		`"hex": "#aa5420"`,
		`"level": 500`,
		`"level": 950`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("ToJSON() output missing %s", want)
		}
	}
}

func TestPaletteToHex(t *testing.T) {
	palette, err := Generate([]RGB{{R: 0xaa, G: 0x54, B: 0x20}}, Options{Count: 2, Raw: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	hexes := palette.ToHex()
	if len(hexes) != 2 {
		t.Fatalf("ToHex() returned %d entries, want 2", len(hexes))
	}
	if hexes[0] != "#aa5420" {
		t.Errorf("ToHex()[0] = %s, want #aa5420", hexes[0])
	}
}
