// Package indicator computes technical indicators from daily OHLCV
// series. Every function is a pure transform of its inputs: series
// results come back as new slices aligned with the input, with
// math.NaN() marking indexes where the lookback window exceeds the
// available history. NaN is an internal sentinel only; callers must
// gate on Defined before exporting values.
package indicator

import "math"

// Defined reports whether an indicator value is defined at an index.
func Defined(v float64) bool {
	return !math.IsNaN(v)
}

// Latest returns the last value of a series as a pointer, or nil when
// the series is empty or its last value is undefined.
func Latest(series []float64) *float64 {
	if len(series) == 0 {
		return nil
	}
	v := series[len(series)-1]
	if !Defined(v) {
		return nil
	}
	return &v
}

// SMA computes the simple moving average of prices over the trailing
// period. Undefined until period values are available.
func SMA(prices []float64, period int) []float64 {
	out := undefinedSeries(len(prices))
	if period <= 0 || len(prices) < period {
		return out
	}
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// EMA computes the exponential moving average with smoothing factor
// 2/(period+1), seeded by the first observation. Defined from the
// first value onward.
func EMA(prices []float64, period int) []float64 {
	out := undefinedSeries(len(prices))
	if period <= 0 || len(prices) == 0 {
		return out
	}
	alpha := 2.0 / float64(period+1)
	out[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		out[i] = alpha*prices[i] + (1-alpha)*out[i-1]
	}
	return out
}

func undefinedSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
