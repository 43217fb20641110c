package colour

import (
	"fmt"
	"sort"
)

// Strategy identifies a hue-generation algorithm on the 360° colour wheel.
type Strategy int

// The closed set of hue strategies.
const (
	StrategyEvenlySpaced Strategy = iota
	StrategyAnalogous
	StrategyComplementary
	StrategySplitComplementary
	StrategyTriadic
	StrategyTetradic
)

// strategyNames maps strategies to their CLI-facing names.
var strategyNames = map[Strategy]string{
	StrategyEvenlySpaced:       "evenly-spaced",
	StrategyAnalogous:          "analogous",
	StrategyComplementary:      "complementary",
	StrategySplitComplementary: "split-complementary",
	StrategyTriadic:            "triadic",
	StrategyTetradic:           "tetradic",
}

// String returns the strategy's name.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "evenly-spaced"
}

// ParseStrategy resolves a strategy name. Unknown names fall back to
// evenly-spaced rather than failing; callers that want to reject unknown
// names should check KnownStrategy first.
func ParseStrategy(name string) Strategy {
	for s, n := range strategyNames {
		if n == name {
			return s
		}
	}
	return StrategyEvenlySpaced
}

// KnownStrategy reports whether name is a recognised strategy name.
func KnownStrategy(name string) bool {
	for _, n := range strategyNames {
		if n == name {
			return true
		}
	}
	return false
}

// StrategyNames returns all recognised strategy names, for help text and
// upstream validation.
func StrategyNames() []string {
	names := make([]string, 0, len(strategyNames))
	for _, n := range strategyNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// keyAngles returns the fixed harmony offsets for key-angle strategies,
// or nil for strategies that compute hues directly.
func (s Strategy) keyAngles() []float64 {
	switch s {
	case StrategyComplementary:
		return []float64{0, 180}
	case StrategySplitComplementary:
		return []float64{0, 150, 210}
	case StrategyTriadic:
		return []float64{0, 120, 240}
	case StrategyTetradic:
		return []float64{0, 90, 180, 270}
	}
	return nil
}

// Hues generates count hue angles from the anchor hue using the strategy.
// All results are normalized into [0, 360). A non-positive count returns
// ErrInvalidCount rather than dividing by zero.
func (s Strategy) Hues(anchor float64, count int) ([]float64, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	hues := make([]float64, 0, count)

	switch s {
	case StrategyAnalogous:
		// Alternate above and below the anchor in growing 30° steps.
		hues = append(hues, normalizeHue(anchor))
		for step := 30.0; len(hues) < count; step += 30 {
			hues = append(hues, normalizeHue(anchor+step))
			if len(hues) < count {
				hues = append(hues, normalizeHue(anchor-step))
			}
		}

	case StrategyComplementary, StrategySplitComplementary, StrategyTriadic, StrategyTetradic:
		keys := s.keyAngles()
		for i := 0; i < count && i < len(keys); i++ {
			hues = append(hues, normalizeHue(anchor+keys[i]))
		}
		// Over-requested harmonies continue with evenly-spaced angles from
		// the next index. The spacing relative to the key angles is uneven,
		// which is accepted behaviour.
		step := 360.0 / float64(count)
		for i := len(hues); i < count; i++ {
			hues = append(hues, normalizeHue(anchor+float64(i)*step))
		}

	case StrategyEvenlySpaced:
		fallthrough
	default:
		// Unknown strategies behave as evenly-spaced.
		step := 360.0 / float64(count)
		for i := 0; i < count; i++ {
			hues = append(hues, normalizeHue(anchor+float64(i)*step))
		}
	}

	return hues, nil
}

// FillGaps inserts needed new hues into the largest circular gaps between
// the existing hues, one at a time. Each insertion lands at the midpoint
// of the current largest gap (wrap-around included) and joins the working
// set before the next gap is measured, so placement is greedy rather than
// simultaneous. On exactly equal gaps the first found wins.
// Returns only the inserted hues, in insertion order.
func FillGaps(existing []float64, needed int) []float64 {
	if needed <= 0 || len(existing) == 0 {
		return nil
	}

	working := make([]float64, len(existing))
	for i, h := range existing {
		working[i] = normalizeHue(h)
	}

	inserted := make([]float64, 0, needed)
	for n := 0; n < needed; n++ {
		sorted := make([]float64, len(working))
		copy(sorted, working)
		sort.Float64s(sorted)

		// Find the largest gap between neighbours, including the
		// wrap-around gap from the last hue back to the first.
		largestGap := -1.0
		gapStart := 0.0
		for i, h := range sorted {
			var gap float64
			if i == len(sorted)-1 {
				gap = 360 - h + sorted[0]
			} else {
				gap = sorted[i+1] - h
			}
			if gap > largestGap {
				largestGap = gap
				gapStart = h
			}
		}

		mid := normalizeHue(gapStart + largestGap/2)
		working = append(working, mid)
		inserted = append(inserted, mid)
	}

	return inserted
}
