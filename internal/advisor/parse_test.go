package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAdviceJSON = `{
  "recommendation": "BUY",
  "confidence": 8,
  "reasoning": "Strong uptrend with analyst support.",
  "entry_point": {"price": 180.50, "rationale": "Near support"},
  "stop_loss": {"price": 172.00, "rationale": "Below SMA50"},
  "target_price": {"price_3month": 205.00, "upside_potential": 13.6, "rationale": "Prior high"},
  "risk_factors": ["Rate risk"],
  "catalysts": ["Earnings beat"]
}`

func TestParseAdvice_PlainJSON(t *testing.T) {
	advice, err := ParseAdvice(validAdviceJSON)
	require.NoError(t, err)
	assert.Equal(t, "BUY", advice.Recommendation)
	assert.Equal(t, 8, advice.Confidence)
	require.NotNil(t, advice.EntryPoint.Price)
	assert.Equal(t, 180.50, *advice.EntryPoint.Price)
	require.NotNil(t, advice.TargetPrice.Price3Month)
	assert.Equal(t, 205.00, *advice.TargetPrice.Price3Month)
}

func TestParseAdvice_MarkdownFenced(t *testing.T) {
	advice, err := ParseAdvice("```json\n" + validAdviceJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "BUY", advice.Recommendation)
}

func TestParseAdvice_SurroundingProse(t *testing.T) {
	response := "Here is my analysis:\n" + validAdviceJSON + "\nLet me know if you need more."
	advice, err := ParseAdvice(response)
	require.NoError(t, err)
	assert.Equal(t, "BUY", advice.Recommendation)
}

func TestParseAdvice_InvalidJSONFallsBack(t *testing.T) {
	advice, err := ParseAdvice(`{"recommendation": "BUY", "confidence":`)
	assert.Error(t, err)
	require.NotNil(t, advice)
	assert.Equal(t, "HOLD", advice.Recommendation)
	assert.Equal(t, 5, advice.Confidence)
}

func TestParseAdvice_ValidationFailureFallsBack(t *testing.T) {
	tests := []string{
		`{"recommendation": "MAYBE", "confidence": 5, "reasoning": "x"}`,
		`{"recommendation": "BUY", "confidence": 0, "reasoning": "x"}`,
		`{"recommendation": "BUY", "confidence": 11, "reasoning": "x"}`,
		`{"recommendation": "BUY", "confidence": 5, "reasoning": ""}`,
	}
	for _, in := range tests {
		advice, err := ParseAdvice(in)
		assert.Error(t, err, in)
		assert.Equal(t, "HOLD", advice.Recommendation, in)
	}
}

func TestParseAdvice_NoJSONFallsBack(t *testing.T) {
	advice, err := ParseAdvice("I cannot provide financial advice.")
	assert.Error(t, err)
	assert.Equal(t, "HOLD", advice.Recommendation)
}

func TestFallbackAdvice_IsValid(t *testing.T) {
	assert.NoError(t, FallbackAdvice().Validate())
}
