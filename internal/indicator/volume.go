package indicator

import (
	"math"

	"StockScope/internal/model"
)

// volumeWindow is the trailing window for volume and volatility checks.
const volumeWindow = 20

// tradingDaysPerYear scales daily return volatility to annual terms.
const tradingDaysPerYear = 252

// AnalyzeVolume compares the latest volume with its trailing 20-bar
// mean and classifies the ratio.
func AnalyzeVolume(bars []model.OHLCV) model.VolumeAnalysis {
	if len(bars) < volumeWindow {
		return model.VolumeAnalysis{Status: "Insufficient data"}
	}

	current := bars[len(bars)-1].Volume
	sum := 0.0
	for _, b := range bars[len(bars)-volumeWindow:] {
		sum += b.Volume
	}
	avg := sum / volumeWindow

	ratio := 1.0
	if avg > 0 {
		ratio = current / avg
	}

	status := "Low"
	switch {
	case ratio > 1.5:
		status = "High"
	case ratio > 0.5:
		status = "Normal"
	}

	return model.VolumeAnalysis{
		Status:    status,
		Current:   int64(current),
		Average20: int64(avg),
		Ratio:     ratio,
	}
}

// AnalyzeVolatility computes the annualized sample standard deviation
// of the trailing 20 daily percentage returns, as a percentage, and
// classifies it.
func AnalyzeVolatility(bars []model.OHLCV) model.Volatility {
	if len(bars) < volumeWindow {
		return model.Volatility{Status: "Insufficient data"}
	}

	// Up to 20 trailing returns; one fewer when only 20 bars exist.
	start := len(bars) - volumeWindow - 1
	if start < 0 {
		start = 0
	}
	var returns []float64
	for i := start + 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, (bars[i].Close-prev)/prev)
	}
	if len(returns) < 2 {
		return model.Volatility{Status: "Insufficient data"}
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var varSum float64
	for _, r := range returns {
		d := r - mean
		varSum += d * d
	}
	std := math.Sqrt(varSum / float64(len(returns)-1))

	annualized := std * math.Sqrt(tradingDaysPerYear) * 100

	status := "Low"
	switch {
	case annualized > 40:
		status = "High"
	case annualized > 20:
		status = "Moderate"
	}

	return model.Volatility{Status: status, Annualized20: annualized}
}
