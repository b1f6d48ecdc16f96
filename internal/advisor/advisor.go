// Package advisor wraps an external generative-AI service that turns a
// technical + fundamental analysis into a structured recommendation.
// It is a boundary layer: malformed responses degrade to a neutral
// fallback and never propagate into the analysis core.
package advisor

import (
	"context"

	"StockScope/internal/model"
)

// Advisor produces AI-backed trading advice for one analyzed ticker.
type Advisor interface {
	Analyze(ctx context.Context, ticker string, technical *model.TechnicalSummary, fundamental *model.FundamentalSummary) (*model.Advice, error)
	Name() string
}

// StubAdvisor returns deterministic advice derived from the technical
// signal, for tests and for running without an API key.
type StubAdvisor struct{}

func NewStubAdvisor() *StubAdvisor { return &StubAdvisor{} }

func (s *StubAdvisor) Name() string { return "stub" }

func (s *StubAdvisor) Analyze(_ context.Context, ticker string, technical *model.TechnicalSummary, _ *model.FundamentalSummary) (*model.Advice, error) {
	advice := FallbackAdvice()
	if technical == nil {
		return advice, nil
	}
	switch technical.Signals.Overall {
	case model.StrongBuy, model.Buy:
		advice.Recommendation = "BUY"
	case model.StrongSell, model.Sell:
		advice.Recommendation = "SELL"
	}
	advice.Reasoning = "Deterministic advice derived from the technical signal for " + ticker + "."
	price := technical.CurrentPrice
	advice.EntryPoint = model.PriceTarget{Price: &price, Rationale: "Current market price."}
	return advice, nil
}

// FallbackAdvice is the neutral HOLD placeholder used whenever a real
// response cannot be obtained or parsed.
func FallbackAdvice() *model.Advice {
	return &model.Advice{
		Recommendation: "HOLD",
		Confidence:     5,
		Reasoning:      "Unable to generate detailed analysis. Please try again.",
		EntryPoint:     model.PriceTarget{Rationale: "N/A"},
		StopLoss:       model.PriceTarget{Rationale: "N/A"},
		TargetPrice:    model.TargetPrice{Rationale: "N/A"},
		RiskFactors:    []string{"Analysis unavailable"},
		Catalysts:      []string{"Analysis unavailable"},
	}
}
