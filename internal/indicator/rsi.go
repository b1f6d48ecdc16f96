package indicator

import "math"

// RSI computes the Relative Strength Index from rolling simple means
// of gains and losses over the trailing period of close-to-close
// changes. Undefined until period deltas exist. When the average loss
// is zero the index saturates at 100; when both averages are zero (a
// flat window) the value is undefined.
func RSI(closes []float64, period int) []float64 {
	out := undefinedSeries(len(closes))
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < len(closes); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > period {
			gainSum -= gains[i-period]
			lossSum -= losses[i-period]
		}
		if i < period {
			continue
		}
		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)
		switch {
		case avgLoss > 0:
			rs := avgGain / avgLoss
			out[i] = 100.0 - 100.0/(1.0+rs)
		case avgGain > 0:
			out[i] = 100.0
		default:
			out[i] = math.NaN() // flat window, no momentum to measure
		}
	}
	return out
}
