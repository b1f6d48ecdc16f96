package indicator

import (
	"math"

	"StockScope/internal/model"
)

// ATR computes the Average True Range: the rolling mean over period of
// the true range max(high-low, |high-prevClose|, |low-prevClose|). The
// first bar has no previous close, so its true range is just high-low.
func ATR(bars []model.OHLCV, period int) []float64 {
	out := undefinedSeries(len(bars))
	if period <= 0 || len(bars) < period {
		return out
	}

	tr := make([]float64, len(bars))
	for i, b := range bars {
		if i == 0 {
			tr[i] = b.High - b.Low
			continue
		}
		prevClose := bars[i-1].Close
		tr[i] = math.Max(b.High-b.Low,
			math.Max(math.Abs(b.High-prevClose), math.Abs(b.Low-prevClose)))
	}

	sum := 0.0
	for i, v := range tr {
		sum += v
		if i >= period {
			sum -= tr[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}
