package indicator

// MACDResult holds the three aligned MACD series.
type MACDResult struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes the Moving Average Convergence Divergence: the fast
// EMA minus the slow EMA, a signal EMA of that line, and their
// difference as the histogram. All three series are defined from the
// first bar because the underlying EMAs are seeded by their first
// observation.
func MACD(closes []float64, fast, slow, signal int) MACDResult {
	emaFast := EMA(closes, fast)
	emaSlow := EMA(closes, slow)

	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = emaFast[i] - emaSlow[i]
	}

	signalLine := EMA(line, signal)

	hist := make([]float64, len(closes))
	for i := range closes {
		hist[i] = line[i] - signalLine[i]
	}

	return MACDResult{Line: line, Signal: signalLine, Histogram: hist}
}
