package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"StockScope/internal/model"
)

// ParseAdvice extracts and validates the JSON advice from a model
// response. Models sometimes wrap the payload in markdown code fences;
// those are stripped first. On any parse or validation failure the
// neutral fallback is returned along with the error so callers can log
// it — the fallback advice is always usable.
func ParseAdvice(response string) (*model.Advice, error) {
	jsonStr := extractJSON(response)
	if jsonStr == "" {
		return FallbackAdvice(), fmt.Errorf("no JSON object in response")
	}

	var advice model.Advice
	if err := json.Unmarshal([]byte(jsonStr), &advice); err != nil {
		return FallbackAdvice(), fmt.Errorf("decode advice: %w", err)
	}
	if err := advice.Validate(); err != nil {
		return FallbackAdvice(), fmt.Errorf("validate advice: %w", err)
	}
	return &advice, nil
}

// extractJSON pulls the JSON payload out of a response, handling
// markdown code blocks.
func extractJSON(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```") {
		lines := strings.Split(response, "\n")
		var jsonLines []string
		inCodeBlock := false
		for _, line := range lines {
			if strings.HasPrefix(line, "```") {
				if inCodeBlock {
					break
				}
				inCodeBlock = true
				continue
			}
			if inCodeBlock {
				jsonLines = append(jsonLines, line)
			}
		}
		if len(jsonLines) > 0 {
			return strings.TrimSpace(strings.Join(jsonLines, "\n"))
		}
	}

	// No code fences: take the outermost braces.
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start >= 0 && end > start {
		return response[start : end+1]
	}
	return ""
}
