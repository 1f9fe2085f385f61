// README: Traveler profile and user persona records.
package profile

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("profile not found")
	ErrBadRequest = errors.New("invalid profile request")
)

// TravelerProfile is a reusable archetype (e.g. "budget backpacker") that
// personas are derived from.
type TravelerProfile struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserPersona is a user's customisation of a base profile. The payload
// columns hold caller-provided JSON documents; the backend stores them
// opaquely and never inspects their structure.
type UserPersona struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"userId"`
	BaseProfileID      int64     `json:"baseProfileId"`
	PersonalPreferences string   `json:"personalPreferences,omitempty"`
	Constraints        string    `json:"constraints,omitempty"`
	BudgetDetails      string    `json:"budgetDetails,omitempty"`
	AccessibilityNeeds string    `json:"accessibilityNeeds,omitempty"`
	GroupDynamics      string    `json:"groupDynamics,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// PersonaCommand carries the writable persona fields.
type PersonaCommand struct {
	UserID              int64
	BaseProfileID       int64
	PersonalPreferences string
	Constraints         string
	BudgetDetails       string
	AccessibilityNeeds  string
	GroupDynamics       string
}
