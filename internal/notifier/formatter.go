package notifier

import (
	"fmt"
	"strings"
	"time"

	"StockScope/internal/model"
)

// FormatAnalysisReport formats a technical summary into a Telegram message.
func FormatAnalysisReport(sum *model.TechnicalSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 <b>%s</b> | %s\n\n", sum.Symbol, time.Now().Format("2006-01-02"))
	fmt.Fprintf(&b, "Price: %.2f (%+.2f%%)\n", sum.CurrentPrice, sum.ChangePct)
	fmt.Fprintf(&b, "Trend: %s\n", sum.Trend)

	ind := sum.Indicators
	if ind.RSI != nil {
		fmt.Fprintf(&b, "RSI(14): %.1f (%s)\n", *ind.RSI, ind.RSISignal)
	}
	fmt.Fprintf(&b, "MACD: %s\n", ind.MACDInterpretation)
	if ind.SMA20 != nil && ind.SMA50 != nil {
		fmt.Fprintf(&b, "SMA20: %.2f | SMA50: %.2f\n", *ind.SMA20, *ind.SMA50)
	}
	fmt.Fprintf(&b, "Volume: %s | Volatility: %s\n\n", sum.VolumeAnalysis.Status, sum.Volatility.Status)

	if len(sum.SupportLevels) > 0 {
		fmt.Fprintf(&b, "Support: %s\n", joinLevels(sum.SupportLevels))
	}
	if len(sum.ResistanceLevels) > 0 {
		fmt.Fprintf(&b, "Resistance: %s\n", joinLevels(sum.ResistanceLevels))
	}

	fmt.Fprintf(&b, "\n%s <b>%s</b> (strength %+d)\n", signalEmoji(sum.Signals.Overall), sum.Signals.Overall, sum.Signals.Strength)
	for _, r := range sum.Signals.Reasons {
		fmt.Fprintf(&b, "  • %s\n", r)
	}

	return b.String()
}

// FormatAdvice formats AI advice for Telegram.
func FormatAdvice(symbol string, advice *model.Advice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🤖 <b>AI View on %s:</b> %s (confidence %d/10)\n", symbol, advice.Recommendation, advice.Confidence)
	fmt.Fprintf(&b, "%s\n", advice.Reasoning)
	if advice.EntryPoint.Price != nil {
		fmt.Fprintf(&b, "Entry: %.2f\n", *advice.EntryPoint.Price)
	}
	if advice.StopLoss.Price != nil {
		fmt.Fprintf(&b, "Stop: %.2f\n", *advice.StopLoss.Price)
	}
	if advice.TargetPrice.Price3Month != nil {
		fmt.Fprintf(&b, "3mo Target: %.2f\n", *advice.TargetPrice.Price3Month)
	}
	return b.String()
}

func joinLevels(levels []float64) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = fmt.Sprintf("%.2f", l)
	}
	return strings.Join(parts, " / ")
}

func signalEmoji(r model.Recommendation) string {
	switch r {
	case model.StrongBuy:
		return "🟢"
	case model.Buy:
		return "🟩"
	case model.StrongSell:
		return "🔴"
	case model.Sell:
		return "🟥"
	default:
		return "⚪"
	}
}
