package indicator

import (
	"sort"

	"StockScope/internal/model"
)

// maxLevels caps how many support/resistance levels are reported.
const maxLevels = 5

// SupportResistance detects support and resistance levels as centered
// local extrema: a bar's low is a support point when it equals the
// minimum low over the centered window of `window` bars around it, and
// symmetrically for highs. Distinct levels come back sorted ascending,
// trimmed to the 5 highest-priced of each kind. That keeps the top of
// each set, not the levels nearest the current price; callers wanting
// nearest-to-price selection must post-filter. Both lists are empty
// when the series has fewer than 2*window bars.
func SupportResistance(bars []model.OHLCV, window int) (support, resistance []float64) {
	n := len(bars)
	if window <= 0 || n < 2*window {
		return nil, nil
	}

	// The centered window for bar i spans [i-window/2, i+window/2-1]
	// and only full windows count.
	half := window / 2
	supSeen := make(map[float64]bool)
	resSeen := make(map[float64]bool)

	for i := half; i+window-half-1 < n; i++ {
		lo, hi := i-half, i+window-half-1
		minLow := bars[lo].Low
		maxHigh := bars[lo].High
		for j := lo + 1; j <= hi; j++ {
			if bars[j].Low < minLow {
				minLow = bars[j].Low
			}
			if bars[j].High > maxHigh {
				maxHigh = bars[j].High
			}
		}
		if bars[i].Low == minLow {
			supSeen[bars[i].Low] = true
		}
		if bars[i].High == maxHigh {
			resSeen[bars[i].High] = true
		}
	}

	support = sortAndTrim(supSeen)
	resistance = sortAndTrim(resSeen)
	return support, resistance
}

func sortAndTrim(levels map[float64]bool) []float64 {
	out := make([]float64, 0, len(levels))
	for v := range levels {
		out = append(out, v)
	}
	sort.Float64s(out)
	if len(out) > maxLevels {
		out = out[len(out)-maxLevels:]
	}
	return out
}
