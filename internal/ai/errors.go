package ai

import "errors"

// Internal failure classes for the generation pipeline. None of them escape
// the orchestrator: every one routes the request onto the fallback path.
var (
	// ErrCallFailed covers network errors, timeouts and non-2xx statuses
	// from the external generation API. Callers never need to know which.
	ErrCallFailed = errors.New("generation call failed")

	// ErrInvalidShape means the response envelope lacked the expected
	// candidates/content/parts/text nesting.
	ErrInvalidShape = errors.New("invalid external response shape")

	// ErrUnparseable means the generated text was not decodable as a plan.
	ErrUnparseable = errors.New("unparseable generated content")

	// ErrIncompletePlan means the decoded plan had no daily itineraries
	// even after gap filling.
	ErrIncompletePlan = errors.New("plan missing daily itineraries")
)
