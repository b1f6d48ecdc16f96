package advisor

import (
	"fmt"
	"strings"

	"StockScope/internal/model"
)

// BuildPrompt assembles the analysis prompt handed to the model: the
// technical picture, whatever fundamentals are available, and strict
// JSON-only output instructions.
func BuildPrompt(ticker string, technical *model.TechnicalSummary, fundamental *model.FundamentalSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert stock analyst. Analyze %s and provide actionable investment recommendations.\n\n", ticker)

	b.WriteString("TECHNICAL ANALYSIS:\n")
	fmt.Fprintf(&b, "- Current Price: $%.2f\n", technical.CurrentPrice)
	fmt.Fprintf(&b, "- Trend: %s\n", technical.Trend)
	fmt.Fprintf(&b, "- RSI: %s (%s)\n", floatOrNA(technical.Indicators.RSI, "%.1f"), technical.Indicators.RSISignal)
	fmt.Fprintf(&b, "- MACD: %s\n", technical.Indicators.MACDInterpretation)
	fmt.Fprintf(&b, "- Volume: %s\n", technical.VolumeAnalysis.Status)
	fmt.Fprintf(&b, "- Support Levels: %s\n", levelList(technical.SupportLevels))
	fmt.Fprintf(&b, "- Resistance Levels: %s\n", levelList(technical.ResistanceLevels))
	fmt.Fprintf(&b, "- Technical Signal: %s (Strength: %d/10)\n", technical.Signals.Overall, technical.Signals.Strength)

	b.WriteString("\nFUNDAMENTAL ANALYSIS:\n")
	if fundamental != nil {
		if p := fundamental.Profile; p.Available {
			fmt.Fprintf(&b, "- Company: %s\n", p.CompanyName)
			fmt.Fprintf(&b, "- Sector: %s | Industry: %s\n", p.Sector, p.Industry)
			fmt.Fprintf(&b, "- Market Cap: %s\n", p.MarketCapFormatted)
		}
		if m := fundamental.Metrics; m.Available {
			fmt.Fprintf(&b, "- P/E Ratio: %s (%s)\n", floatOrNA(m.PERatio, "%.2f"), m.PEInterpretation)
			fmt.Fprintf(&b, "- P/B Ratio: %s (%s)\n", floatOrNA(m.PBRatio, "%.2f"), m.PBInterpretation)
			fmt.Fprintf(&b, "- ROE: %s%% (%s)\n", floatOrNA(m.ROEPct, "%.1f"), m.ROEInterpretation)
			fmt.Fprintf(&b, "- Debt/Equity: %s (%s)\n", floatOrNA(m.DebtToEquity, "%.2f"), m.DebtInterpretation)
		}
		if r := fundamental.Ratings; r.Available {
			fmt.Fprintf(&b, "- Analyst Consensus: %s (Buy: %d, Hold: %d, Sell: %d)\n",
				r.Consensus, r.Buy, r.Hold, r.Sell)
		}
		if n := fundamental.News; n.Available && len(n.Articles) > 0 {
			fmt.Fprintf(&b, "- Recent News: %d articles in past week\n", n.Count)
			for i, a := range n.Articles {
				if i >= 2 {
					break
				}
				fmt.Fprintf(&b, "  - %s\n", a.Title)
			}
		}
	}

	fmt.Fprintf(&b, `
INSTRUCTIONS:
Combine the technical and fundamental analysis above into an actionable view of %s.

YOUR ANALYSIS (Provide as valid JSON):
{
  "recommendation": "BUY" | "HOLD" | "SELL",
  "confidence": 1-10,
  "reasoning": "2-3 sentences explaining your recommendation",
  "entry_point": {"price": specific dollar amount, "rationale": "why this price?"},
  "stop_loss": {"price": specific dollar amount, "rationale": "risk management reasoning"},
  "target_price": {"price_3month": specific dollar amount, "upside_potential": percentage, "rationale": "basis for target"},
  "risk_factors": ["Risk 1", "Risk 2", "Risk 3"],
  "catalysts": ["Positive catalyst 1", "Positive catalyst 2"]
}

IMPORTANT:
- Provide ONLY valid JSON, no additional text
- Be specific with prices (don't use ranges)
- Base stop loss on technical support levels or ATR
- Consider both short-term technicals and long-term fundamentals
`, ticker)

	return b.String()
}

func floatOrNA(v *float64, format string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf(format, *v)
}

func levelList(levels []float64) string {
	if len(levels) == 0 {
		return "N/A"
	}
	if len(levels) > 3 {
		levels = levels[:3]
	}
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = fmt.Sprintf("$%.2f", l)
	}
	return strings.Join(parts, ", ")
}
