package colour

import "testing"

var shadeTestColours = []RGB{
	{R: 0xaa, G: 0x54, B: 0x20},
	{R: 255, G: 0, B: 0},
	{R: 0x1e, G: 0x66, B: 0xf5},
	{R: 0x40, G: 0xa0, B: 0x2b},
	{R: 128, G: 128, B: 128},
	{R: 0xf3, G: 0x8b, B: 0xa8},
}

func TestGenerateShadesLevels(t *testing.T) {
	want := []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

	shades := GenerateShades(RGB{R: 0xaa, G: 0x54, B: 0x20})
	if len(shades) != len(want) {
		t.Fatalf("GenerateShades returned %d shades, want %d", len(shades), len(want))
	}
	for i, s := range shades {
		if s.Level != want[i] {
			t.Errorf("shades[%d].Level = %d, want %d", i, s.Level, want[i])
		}
	}
}

// Level 500 must be the input colour with no numeric drift at all.
func TestShade500Identity(t *testing.T) {
	for _, base := range shadeTestColours {
		t.Run(base.Hex(), func(t *testing.T) {
			shades := GenerateShades(base)
			for _, s := range shades {
				if s.Level == 500 {
					if s.Colour != base {
						t.Errorf("shade 500 = %s, want %s exactly", s.Hex, base.Hex())
					}
					if s.Hex != base.Hex() {
						t.Errorf("shade 500 hex = %s, want %s", s.Hex, base.Hex())
					}
					return
				}
			}
			t.Fatal("no shade at level 500")
		})
	}
}

// OKLCH lightness must strictly decrease from level 50 through 950.
func TestShadeLightnessMonotonic(t *testing.T) {
	for _, base := range shadeTestColours {
		t.Run(base.Hex(), func(t *testing.T) {
			shades := GenerateShades(base)
			prev := RGBToOKLCH(shades[0].Colour).L
			for _, s := range shades[1:] {
				l := RGBToOKLCH(s.Colour).L
				if l >= prev {
					t.Errorf("lightness not decreasing at level %d: %f >= %f", s.Level, l, prev)
				}
				prev = l
			}
		})
	}
}

// Chroma attenuates moving away from level 500 toward either extreme;
// it must never exceed the base chroma. The comparison runs on the
// pre-quantization ramp values, so recompute them from the table.
func TestShadeChromaAttenuates(t *testing.T) {
	for _, base := range shadeTestColours {
		t.Run(base.Hex(), func(t *testing.T) {
			baseC := RGBToOKLCH(base).C

			prevLight := baseC
			prevDark := baseC
			for _, step := range shadeSteps {
				if step.level == 500 {
					continue
				}
				var c float64
				if step.darker {
					c = baseC * (1 - step.t*darkChromaDecay)
					if c > prevDark+1e-12 {
						t.Errorf("dark-side chroma grows at level %d", step.level)
					}
					prevDark = c
				} else {
					c = baseC * (1 - step.t*lightChromaDecay)
					// Lighter levels iterate 50→400, so chroma increases
					// toward 500 and must stay at or below the base.
					if c < prevLight-1e-12 && step.level != 50 {
						t.Errorf("light-side chroma not attenuating toward the extreme at level %d", step.level)
					}
					prevLight = c
				}
				if c > baseC+1e-12 {
					t.Errorf("chroma amplified at level %d: %f > %f", step.level, c, baseC)
				}
				if c < 0 {
					t.Errorf("chroma negative at level %d", step.level)
				}
			}
		})
	}
}

// Hue is held constant across the ramp. Compare within a small tolerance
// since each shade passes through 8-bit quantization.
func TestShadeHueConstant(t *testing.T) {
	base := RGB{R: 0x1e, G: 0x66, B: 0xf5}
	baseHue := RGBToOKLCH(base).H

	for _, s := range GenerateShades(base) {
		ok := RGBToOKLCH(s.Colour)
		if ok.C < 0.02 {
			// Hue is unstable near the achromatic axis.
			continue
		}
		diff := ok.H - baseHue
		if diff > 180 {
			diff -= 360
		}
		if diff < -180 {
			diff += 360
		}
		if diff > 3 || diff < -3 {
			t.Errorf("level %d hue = %f, want ~%f", s.Level, ok.H, baseHue)
		}
	}
}

func TestShadeLevels(t *testing.T) {
	levels := ShadeLevels()
	if len(levels) != 11 {
		t.Fatalf("ShadeLevels() returned %d levels, want 11", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("levels not ascending at index %d", i)
		}
	}
}
