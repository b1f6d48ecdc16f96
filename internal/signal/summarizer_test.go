package signal

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"StockScope/internal/indicator"
	"StockScope/internal/model"
)

func seriesFromCloses(symbol string, closes []float64) *model.PriceSeries {
	bars := make([]model.OHLCV, len(closes))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   base.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000000,
		}
	}
	return &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
}

func flatSeries(n int) *model.PriceSeries {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100
	}
	return seriesFromCloses("FLAT", closes)
}

func risingSeries(n int) *model.PriceSeries {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	return seriesFromCloses("UP", closes)
}

func TestSummarize_InsufficientData(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("nil series: expected ErrInsufficientData, got %v", err)
	}
	if _, err := Summarize(flatSeries(MinBars - 1)); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("%d bars: expected ErrInsufficientData, got %v", MinBars-1, err)
	}
	if _, err := Summarize(flatSeries(MinBars)); err != nil {
		t.Errorf("%d bars: expected success, got %v", MinBars, err)
	}
}

func TestSummarize_FlatSeries(t *testing.T) {
	sum, err := Summarize(flatSeries(60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Trend != "Sideways" {
		t.Errorf("expected Sideways trend, got %q", sum.Trend)
	}
	if sum.Indicators.RSI != nil || sum.Indicators.RSISignal != "Unknown" {
		t.Errorf("expected undefined RSI for flat series, got %v (%s)",
			sum.Indicators.RSI, sum.Indicators.RSISignal)
	}
	if sum.Indicators.SMA200 != nil {
		t.Error("expected nil SMA200 with only 60 bars")
	}
	if sum.ChangePct != 0 {
		t.Errorf("expected zero change, got %.4f", sum.ChangePct)
	}
	if sum.Signals.Overall != model.Neutral || sum.Signals.Strength != 0 {
		t.Errorf("expected neutral signal, got %s (%d)", sum.Signals.Overall, sum.Signals.Strength)
	}
	if len(sum.Signals.Reasons) != 0 {
		t.Errorf("expected no reasons, got %v", sum.Signals.Reasons)
	}
	if sum.Volatility.Status != "Low" || sum.Volatility.Annualized20 != 0 {
		t.Errorf("expected zero volatility, got %+v", sum.Volatility)
	}
	if sum.VolumeAnalysis.Status != "Normal" || math.Abs(sum.VolumeAnalysis.Ratio-1) > 1e-9 {
		t.Errorf("expected normal volume at ratio 1, got %+v", sum.VolumeAnalysis)
	}
	if sum.Indicators.BBUpper == nil || *sum.Indicators.BBUpper != 100 {
		t.Errorf("expected collapsed upper band at 100, got %v", sum.Indicators.BBUpper)
	}
}

func TestSummarize_StrongUptrend(t *testing.T) {
	sum, err := Summarize(risingSeries(60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Trend != "Strong Uptrend" {
		t.Errorf("expected Strong Uptrend, got %q", sum.Trend)
	}
	if sum.Indicators.RSI == nil || *sum.Indicators.RSI != 100 {
		t.Errorf("expected RSI 100 for monotone gains, got %v", sum.Indicators.RSI)
	}
	if sum.Indicators.RSISignal != "Overbought" {
		t.Errorf("expected Overbought, got %q", sum.Indicators.RSISignal)
	}
	if sum.Indicators.MACDInterpretation != "Bullish" {
		t.Errorf("expected Bullish MACD, got %q", sum.Indicators.MACDInterpretation)
	}
	if !containsReason(sum.Signals.Reasons, "RSI Overbought") ||
		!containsReason(sum.Signals.Reasons, "Price Above Key MAs") {
		t.Errorf("unexpected reasons: %v", sum.Signals.Reasons)
	}
	// Overbought RSI (-2) cancels the MA alignment (+2).
	if sum.Signals.Strength != 0 || sum.Signals.Overall != model.Neutral {
		t.Errorf("expected neutral at strength 0, got %s (%d)", sum.Signals.Overall, sum.Signals.Strength)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	series := risingSeries(80)
	first, err := Summarize(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Summarize(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical summaries for identical input")
	}
}

func TestClassifyTrend(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		price, sma20, sma50 float64
		want                string
	}{
		{105, 102, 100, "Strong Uptrend"},
		{105, 102, 103, "Uptrend"},
		{95, 98, 100, "Strong Downtrend"},
		{95, 98, 97, "Downtrend"},
		{100, 100, 100, "Sideways"},
		{100, nan, 100, "Unknown"},
		{100, 100, nan, "Unknown"},
	}
	for _, tt := range tests {
		if got := classifyTrend(tt.price, tt.sma20, tt.sma50); got != tt.want {
			t.Errorf("classifyTrend(%.0f, %.0f, %.0f): expected %q, got %q",
				tt.price, tt.sma20, tt.sma50, tt.want, got)
		}
	}
}

func TestInterpretMACD_CrossoverEdges(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur float64
		want      string
	}{
		{"bullish crossover", -1, 1, "Bullish Crossover"},
		{"bullish from zero", 0, 1, "Bullish Crossover"},
		{"bearish crossover", 1, -1, "Bearish Crossover"},
		{"bearish from zero", 0, -1, "Bearish Crossover"},
		{"holding bullish", 1, 2, "Bullish"},
		{"holding bearish", -2, -1, "Bearish"},
	}
	for _, tt := range tests {
		m := indicator.MACDResult{
			Line:   []float64{tt.prev, tt.cur},
			Signal: []float64{0, 0},
		}
		if got := interpretMACD(m, 1); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}

	if got := interpretMACD(indicator.MACDResult{Line: []float64{1}, Signal: []float64{0}}, 0); got != "Unknown" {
		t.Errorf("first bar: expected Unknown, got %q", got)
	}
}

func TestScore_Extremes(t *testing.T) {
	bull := score(100, 25, "Bullish Crossover", 90, 80)
	if bull.Strength != 7 || bull.Overall != model.StrongBuy {
		t.Errorf("expected strong buy at +7, got %s (%d)", bull.Overall, bull.Strength)
	}
	if len(bull.Reasons) != 3 {
		t.Errorf("expected 3 reasons, got %v", bull.Reasons)
	}

	bear := score(100, 75, "Bearish Crossover", 110, 120)
	if bear.Strength != -7 || bear.Overall != model.StrongSell {
		t.Errorf("expected strong sell at -7, got %s (%d)", bear.Overall, bear.Strength)
	}
}

func TestMapRecommendation_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  model.Recommendation
	}{
		{7, model.StrongBuy},
		{3, model.StrongBuy},
		{2, model.Buy},
		{1, model.Buy},
		{0, model.Neutral},
		{-1, model.Sell},
		{-2, model.Sell},
		{-3, model.StrongSell},
		{-7, model.StrongSell},
	}
	for _, tt := range tests {
		if got := mapRecommendation(tt.score); got != tt.want {
			t.Errorf("score %d: expected %s, got %s", tt.score, tt.want, got)
		}
	}
}

func containsReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}
