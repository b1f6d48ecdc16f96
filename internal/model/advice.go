package model

import "github.com/go-playground/validator/v10"

// PriceTarget is a single price suggestion with its rationale.
type PriceTarget struct {
	Price     *float64 `json:"price"`
	Rationale string   `json:"rationale"`
}

// TargetPrice is the 3-month price objective.
type TargetPrice struct {
	Price3Month     *float64 `json:"price_3month"`
	UpsidePotential *float64 `json:"upside_potential"`
	Rationale       string   `json:"rationale"`
}

// Advice is the structured recommendation returned by the AI advisor.
// Fields are validated with go-playground/validator tags before the
// advice is accepted; anything that fails validation is replaced by the
// neutral fallback.
type Advice struct {
	Recommendation string      `json:"recommendation" validate:"required,oneof=BUY HOLD SELL"`
	Confidence     int         `json:"confidence" validate:"min=1,max=10"`
	Reasoning      string      `json:"reasoning" validate:"required"`
	EntryPoint     PriceTarget `json:"entry_point"`
	StopLoss       PriceTarget `json:"stop_loss"`
	TargetPrice    TargetPrice `json:"target_price"`
	RiskFactors    []string    `json:"risk_factors"`
	Catalysts      []string    `json:"catalysts"`
}

// Validate checks the advice against its validator tags.
func (a *Advice) Validate() error {
	return validator.New().Struct(a)
}
