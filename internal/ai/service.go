// README: Trip-plan orchestrator: external generation with deterministic fallback.
package ai

import (
	"context"
	"fmt"
	"log"
)

// Generator is the outbound generation contract. It exists so the
// orchestrator can be exercised against a fake in tests and so providers can
// be swapped without touching the pipeline.
type Generator interface {
	// Generate sends a prompt and returns the raw response body.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service composes the generation pipeline: build prompt, call out, parse,
// validate, and recover onto the fallback path on any failure. A Service is
// safe for concurrent use; each call owns all of its intermediate state.
type Service struct {
	generator Generator
}

// NewService returns an orchestrator backed by generator. A nil generator
// means external generation is not configured and every request takes the
// fallback path.
func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

// GenerateTripPlan produces a plan for the given request. It never returns
// an error: external generation gets exactly one attempt, and any failure at
// any stage terminates that path and yields one fallback synthesis instead.
// Fallback plans reached via a failure carry the triggering cause in their
// model tag.
func (s *Service) GenerateTripPlan(ctx context.Context, profile ProfileContext, params TripParameters) TripPlan {
	if s.generator == nil {
		return generateFallbackPlan(params)
	}

	plan, err := s.tryExternalPlan(ctx, profile, params)
	if err != nil {
		log.Printf("ai: external generation failed, using fallback: %v", err)
		fallback := generateFallbackPlan(params)
		fallback.AIModel = fmt.Sprintf("Fallback Service (Google AI error: %v)", err)
		return fallback
	}
	return plan
}

// tryExternalPlan runs the single external attempt end to end.
func (s *Service) tryExternalPlan(ctx context.Context, profile ProfileContext, params TripParameters) (TripPlan, error) {
	prompt := buildTripPlanPrompt(profile, params)

	body, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return TripPlan{}, err
	}

	text, err := extractGeneratedText(body)
	if err != nil {
		return TripPlan{}, err
	}

	raw, err := decodeGeneratedPlan(text)
	if err != nil {
		return TripPlan{}, err
	}

	return validatePlan(raw, params)
}
