package advisor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"StockScope/internal/model"
)

// GeminiAdvisor implements Advisor against the Google Gemini API.
type GeminiAdvisor struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

// NewGeminiAdvisor initializes the genai client. The model name
// defaults to a flash-tier model for cost efficiency.
func NewGeminiAdvisor(ctx context.Context, apiKey, modelName string, temperature float32, maxTokens int32) (*GeminiAdvisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init genai client: %w", err)
	}
	return &GeminiAdvisor{
		client:      client,
		model:       modelName,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

func (g *GeminiAdvisor) Name() string { return "gemini" }

// Analyze sends the structured prompt and parses the JSON reply. Parse
// failures are logged and degrade to the neutral fallback, never an
// error that aborts the caller's analysis.
func (g *GeminiAdvisor) Analyze(ctx context.Context, ticker string, technical *model.TechnicalSummary, fundamental *model.FundamentalSummary) (*model.Advice, error) {
	prompt := BuildPrompt(ticker, technical, fundamental)

	contents := []*genai.Content{
		{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{genai.NewPartFromText(prompt)},
		},
	}
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: g.maxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	var text strings.Builder
	if resp != nil {
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			if text.Len() > 0 {
				break
			}
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("gemini: empty response")
	}

	advice, err := ParseAdvice(text.String())
	if err != nil {
		log.Printf("[WARN] gemini advice for %s fell back to neutral: %v", ticker, err)
	}
	return advice, nil
}
