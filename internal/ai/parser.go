// README: Gemini envelope parsing and generated-plan decoding.
package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// geminiEnvelope mirrors the candidates → content → parts → text nesting of
// the generateContent response.
type geminiEnvelope struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// extractGeneratedText pulls the inner generated text out of the raw API
// response body. A missing nesting level is a hard failure.
func extractGeneratedText(body string) (string, error) {
	var env geminiEnvelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	if len(env.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrInvalidShape)
	}
	parts := env.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: no content parts", ErrInvalidShape)
	}
	return parts[0].Text, nil
}

// decodeGeneratedPlan decodes generated text as a trip plan, stripping a
// markdown code fence first when the model wrapped its output in one.
func decodeGeneratedPlan(text string) (*rawTripPlan, error) {
	cleaned := stripJSONFence(text)

	var plan rawTripPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return &plan, nil
}

// stripJSONFence removes a leading ```json fence and trailing ``` if present.
func stripJSONFence(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
