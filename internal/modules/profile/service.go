// README: Profile/persona service.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) CreateProfile(ctx context.Context, name, description string) (TravelerProfile, error) {
	if strings.TrimSpace(name) == "" {
		return TravelerProfile{}, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	return s.store.InsertProfile(ctx, name, description)
}

func (s *Service) GetProfile(ctx context.Context, id int64) (TravelerProfile, error) {
	return s.store.GetProfile(ctx, id)
}

func (s *Service) ListProfiles(ctx context.Context) ([]TravelerProfile, error) {
	return s.store.ListProfiles(ctx)
}

func (s *Service) CreatePersona(ctx context.Context, cmd PersonaCommand) (UserPersona, error) {
	if err := validatePersona(cmd); err != nil {
		return UserPersona{}, err
	}
	// The base profile must exist before a persona can reference it.
	if _, err := s.store.GetProfile(ctx, cmd.BaseProfileID); err != nil {
		return UserPersona{}, err
	}
	return s.store.InsertPersona(ctx, cmd)
}

func (s *Service) ListPersonas(ctx context.Context, userID int64) ([]UserPersona, error) {
	return s.store.ListPersonas(ctx, userID)
}

func (s *Service) UpdatePersona(ctx context.Context, id int64, cmd PersonaCommand) (UserPersona, error) {
	if err := validatePersona(cmd); err != nil {
		return UserPersona{}, err
	}
	return s.store.UpdatePersona(ctx, id, cmd)
}

func (s *Service) DeletePersona(ctx context.Context, id, userID int64) error {
	return s.store.DeletePersona(ctx, id, userID)
}

// validatePersona checks identifiers and that every payload document, when
// present, is well-formed JSON. The documents stay opaque beyond that.
func validatePersona(cmd PersonaCommand) error {
	if cmd.UserID <= 0 || cmd.BaseProfileID <= 0 {
		return fmt.Errorf("%w: userId and baseProfileId are required", ErrBadRequest)
	}
	docs := map[string]string{
		"personalPreferences": cmd.PersonalPreferences,
		"constraints":         cmd.Constraints,
		"budgetDetails":       cmd.BudgetDetails,
		"accessibilityNeeds":  cmd.AccessibilityNeeds,
		"groupDynamics":       cmd.GroupDynamics,
	}
	for field, doc := range docs {
		if doc == "" {
			continue
		}
		if !json.Valid([]byte(doc)) {
			return fmt.Errorf("%w: %s is not valid JSON", ErrBadRequest, field)
		}
	}
	return nil
}
