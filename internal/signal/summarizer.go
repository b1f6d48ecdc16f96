// Package signal reduces computed indicators into a trend label, a set
// of qualitative interpretations, and a single scored recommendation.
package signal

import (
	"errors"
	"fmt"

	"StockScope/internal/indicator"
	"StockScope/internal/model"
)

// MinBars is the hard precondition for a full technical summary.
// Shorter series get ErrInsufficientData instead of partial output.
const MinBars = 50

// ErrInsufficientData is returned when a series is too short to
// summarize.
var ErrInsufficientData = errors.New("insufficient data for technical analysis")

// Default indicator parameters.
const (
	rsiPeriod       = 14
	macdFast        = 12
	macdSlow        = 26
	macdSignal      = 9
	bollingerPeriod = 20
	bollingerK      = 2.0
	atrPeriod       = 14
	levelWindow     = 20
)

// Summarize computes the full technical summary for a price series.
// It is a pure function: the series is only read, and two calls on an
// identical series produce identical results.
func Summarize(series *model.PriceSeries) (*model.TechnicalSummary, error) {
	if series == nil || len(series.Bars) < MinBars {
		n := 0
		if series != nil {
			n = len(series.Bars)
		}
		return nil, fmt.Errorf("%w: have %d bars, need %d", ErrInsufficientData, n, MinBars)
	}

	bars := series.Bars
	closes := series.Closes()
	last := len(bars) - 1

	sma20 := indicator.SMA(closes, 20)
	sma50 := indicator.SMA(closes, 50)
	sma200 := indicator.SMA(closes, 200)
	rsi := indicator.RSI(closes, rsiPeriod)
	macd := indicator.MACD(closes, macdFast, macdSlow, macdSignal)
	bands := indicator.Bollinger(closes, bollingerPeriod, bollingerK)
	atr := indicator.ATR(bars, atrPeriod)
	support, resistance := indicator.SupportResistance(bars, levelWindow)

	current := closes[last]
	previous := closes[last-1]

	sum := &model.TechnicalSummary{
		Symbol:         series.Symbol,
		CurrentPrice:   current,
		PreviousClose:  previous,
		ChangePct:      (current - previous) / previous * 100,
		Volume:         int64(bars[last].Volume),
		VolumeAnalysis: indicator.AnalyzeVolume(bars),
		Trend:          classifyTrend(current, sma20[last], sma50[last]),
		Indicators: model.IndicatorSet{
			RSI:                indicator.Latest(rsi),
			RSISignal:          interpretRSI(rsi[last]),
			MACD:               indicator.Latest(macd.Line),
			MACDSignal:         indicator.Latest(macd.Signal),
			MACDHistogram:      indicator.Latest(macd.Histogram),
			MACDInterpretation: interpretMACD(macd, last),
			SMA20:              indicator.Latest(sma20),
			SMA50:              indicator.Latest(sma50),
			SMA200:             indicator.Latest(sma200),
			BBUpper:            indicator.Latest(bands.Upper),
			BBLower:            indicator.Latest(bands.Lower),
			ATR:                indicator.Latest(atr),
		},
		SupportLevels:    support,
		ResistanceLevels: resistance,
		Volatility:       indicator.AnalyzeVolatility(bars),
	}

	sum.Signals = score(current, rsi[last], sum.Indicators.MACDInterpretation, sma20[last], sma50[last])
	return sum, nil
}

// classifyTrend compares the latest close against SMA20 and SMA50.
// A tie with SMA20 falls through to Sideways.
func classifyTrend(price, sma20, sma50 float64) string {
	if !indicator.Defined(sma20) || !indicator.Defined(sma50) {
		return "Unknown"
	}
	switch {
	case price > sma20 && sma20 > sma50:
		return "Strong Uptrend"
	case price > sma20:
		return "Uptrend"
	case price < sma20 && sma20 < sma50:
		return "Strong Downtrend"
	case price < sma20:
		return "Downtrend"
	default:
		return "Sideways"
	}
}

func interpretRSI(rsi float64) string {
	if !indicator.Defined(rsi) {
		return "Unknown"
	}
	switch {
	case rsi > 70:
		return "Overbought"
	case rsi < 30:
		return "Oversold"
	default:
		return "Neutral"
	}
}

// interpretMACD labels the MACD state at index i. A sign transition of
// (line - signal) between the previous and current bar marks a
// crossover: negative-or-zero to positive is bullish, the reverse is
// bearish.
func interpretMACD(m indicator.MACDResult, i int) string {
	if i < 1 {
		return "Unknown"
	}
	cur := m.Line[i] - m.Signal[i]
	prev := m.Line[i-1] - m.Signal[i-1]
	if !indicator.Defined(cur) || !indicator.Defined(prev) {
		return "Unknown"
	}
	switch {
	case prev <= 0 && cur > 0:
		return "Bullish Crossover"
	case prev >= 0 && cur < 0:
		return "Bearish Crossover"
	case cur > 0:
		return "Bullish"
	default:
		return "Bearish"
	}
}

// score accumulates the composite signal. The five rules are
// independent and all evaluated every time; an undefined indicator
// simply contributes nothing.
func score(price, rsi float64, macdInterp string, sma20, sma50 float64) model.SignalResult {
	result := model.SignalResult{Overall: model.Neutral, Reasons: []string{}}
	total := 0

	if indicator.Defined(rsi) {
		if rsi > 70 {
			total -= 2
			result.Reasons = append(result.Reasons, "RSI Overbought")
		} else if rsi < 30 {
			total += 2
			result.Reasons = append(result.Reasons, "RSI Oversold")
		}
	}

	switch macdInterp {
	case "Bullish Crossover":
		total += 3
		result.Reasons = append(result.Reasons, "MACD Bullish Crossover")
	case "Bearish Crossover":
		total -= 3
		result.Reasons = append(result.Reasons, "MACD Bearish Crossover")
	}

	if indicator.Defined(sma20) && indicator.Defined(sma50) {
		if price > sma20 && sma20 > sma50 {
			total += 2
			result.Reasons = append(result.Reasons, "Price Above Key MAs")
		} else if price < sma20 && sma20 < sma50 {
			total -= 2
			result.Reasons = append(result.Reasons, "Price Below Key MAs")
		}
	}

	result.Strength = total
	result.Overall = mapRecommendation(total)
	return result
}

// mapRecommendation maps a score to the discrete recommendation. The
// strong thresholds are checked before the looser ones so boundary
// scores resolve to the stronger label.
func mapRecommendation(score int) model.Recommendation {
	switch {
	case score >= 3:
		return model.StrongBuy
	case score >= 1:
		return model.Buy
	case score <= -3:
		return model.StrongSell
	case score <= -1:
		return model.Sell
	default:
		return model.Neutral
	}
}
