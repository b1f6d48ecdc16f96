package model

// Recommendation is the discrete trading signal derived from the
// composite indicator score.
type Recommendation string

const (
	StrongBuy  Recommendation = "STRONG_BUY"
	Buy        Recommendation = "BUY"
	Neutral    Recommendation = "NEUTRAL"
	Sell       Recommendation = "SELL"
	StrongSell Recommendation = "STRONG_SELL"
)

// SignalResult is the outcome of composite scoring. Strength stores the
// raw accumulated score (bounded by the rule weights, not clamped).
type SignalResult struct {
	Overall  Recommendation `json:"overall"`
	Strength int            `json:"strength"`
	Reasons  []string       `json:"reasons"`
}

// IndicatorSet holds the latest value of each indicator. A nil pointer
// means the indicator is undefined for the available history; the
// accompanying interpretation label is "Unknown" in that case. Nil is
// the only representation of "no value" — NaN never reaches these fields.
type IndicatorSet struct {
	RSI                *float64 `json:"rsi"`
	RSISignal          string   `json:"rsi_signal"`
	MACD               *float64 `json:"macd"`
	MACDSignal         *float64 `json:"macd_signal"`
	MACDHistogram      *float64 `json:"macd_histogram"`
	MACDInterpretation string   `json:"macd_interpretation"`
	SMA20              *float64 `json:"sma_20"`
	SMA50              *float64 `json:"sma_50"`
	SMA200             *float64 `json:"sma_200"`
	BBUpper            *float64 `json:"bb_upper"`
	BBLower            *float64 `json:"bb_lower"`
	ATR                *float64 `json:"atr"`
}

// VolumeAnalysis classifies the latest volume against its 20-day mean.
type VolumeAnalysis struct {
	Status    string  `json:"status"` // High / Normal / Low / Insufficient data
	Current   int64   `json:"current,omitempty"`
	Average20 int64   `json:"average_20d,omitempty"`
	Ratio     float64 `json:"ratio,omitempty"`
}

// Volatility holds the annualized 20-day volatility classification.
type Volatility struct {
	Status       string  `json:"status"` // High / Moderate / Low / Insufficient data
	Annualized20 float64 `json:"annualized_20d,omitempty"`
}

// TechnicalSummary is the complete technical analysis of one series.
// Produced fresh on every call and never mutated afterwards.
type TechnicalSummary struct {
	Symbol           string         `json:"symbol"`
	CurrentPrice     float64        `json:"current_price"`
	PreviousClose    float64        `json:"previous_close"`
	ChangePct        float64        `json:"change_pct"`
	Volume           int64          `json:"volume"`
	VolumeAnalysis   VolumeAnalysis `json:"volume_analysis"`
	Trend            string         `json:"trend"`
	Indicators       IndicatorSet   `json:"indicators"`
	SupportLevels    []float64      `json:"support_levels"`
	ResistanceLevels []float64      `json:"resistance_levels"`
	Signals          SignalResult   `json:"signals"`
	Volatility       Volatility     `json:"volatility"`
}
