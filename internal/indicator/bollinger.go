package indicator

import "math"

// BollingerResult holds the three aligned band series.
type BollingerResult struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// Bollinger computes Bollinger Bands: a period-SMA middle line with
// upper/lower envelopes k sample standard deviations away, both
// computed over the exact same trailing window so bands and middle
// line stay aligned.
func Bollinger(closes []float64, period int, k float64) BollingerResult {
	n := len(closes)
	res := BollingerResult{
		Upper:  undefinedSeries(n),
		Middle: SMA(closes, period),
		Lower:  undefinedSeries(n),
	}
	if period < 2 || n < period {
		return res
	}
	for i := period - 1; i < n; i++ {
		mean := res.Middle[i]
		var varSum float64
		for j := i - period + 1; j <= i; j++ {
			d := closes[j] - mean
			varSum += d * d
		}
		std := math.Sqrt(varSum / float64(period-1))
		res.Upper[i] = mean + k*std
		res.Lower[i] = mean - k*std
	}
	return res
}
