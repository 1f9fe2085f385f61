// README: Profile and persona store backed by PostgreSQL.
package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) InsertProfile(ctx context.Context, name, description string) (TravelerProfile, error) {
	var p TravelerProfile
	err := s.db.QueryRow(ctx, `
		INSERT INTO traveler_profiles (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at
	`, name, description).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
	return p, err
}

func (s *Store) GetProfile(ctx context.Context, id int64) (TravelerProfile, error) {
	var p TravelerProfile
	err := s.db.QueryRow(ctx, `
		SELECT id, name, description, created_at FROM traveler_profiles WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return TravelerProfile{}, ErrNotFound
	}
	return p, err
}

func (s *Store) ListProfiles(ctx context.Context) ([]TravelerProfile, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, description, created_at FROM traveler_profiles ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []TravelerProfile{}
	for rows.Next() {
		var p TravelerProfile
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (s *Store) InsertPersona(ctx context.Context, cmd PersonaCommand) (UserPersona, error) {
	var p UserPersona
	err := s.db.QueryRow(ctx, `
		INSERT INTO user_personas
			(user_id, base_profile_id, personal_preferences, constraints, budget_details, accessibility_needs, group_dynamics)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, base_profile_id, personal_preferences, constraints,
			budget_details, accessibility_needs, group_dynamics, created_at, updated_at
	`, cmd.UserID, cmd.BaseProfileID, cmd.PersonalPreferences, cmd.Constraints,
		cmd.BudgetDetails, cmd.AccessibilityNeeds, cmd.GroupDynamics).Scan(
		&p.ID, &p.UserID, &p.BaseProfileID, &p.PersonalPreferences, &p.Constraints,
		&p.BudgetDetails, &p.AccessibilityNeeds, &p.GroupDynamics, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (s *Store) ListPersonas(ctx context.Context, userID int64) ([]UserPersona, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, base_profile_id, personal_preferences, constraints,
			budget_details, accessibility_needs, group_dynamics, created_at, updated_at
		FROM user_personas WHERE user_id = $1 ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	personas := []UserPersona{}
	for rows.Next() {
		var p UserPersona
		if err := rows.Scan(&p.ID, &p.UserID, &p.BaseProfileID, &p.PersonalPreferences, &p.Constraints,
			&p.BudgetDetails, &p.AccessibilityNeeds, &p.GroupDynamics, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		personas = append(personas, p)
	}
	return personas, rows.Err()
}

func (s *Store) UpdatePersona(ctx context.Context, id int64, cmd PersonaCommand) (UserPersona, error) {
	var p UserPersona
	err := s.db.QueryRow(ctx, `
		UPDATE user_personas
		SET personal_preferences = $2, constraints = $3, budget_details = $4,
			accessibility_needs = $5, group_dynamics = $6, updated_at = now()
		WHERE id = $1 AND user_id = $7
		RETURNING id, user_id, base_profile_id, personal_preferences, constraints,
			budget_details, accessibility_needs, group_dynamics, created_at, updated_at
	`, id, cmd.PersonalPreferences, cmd.Constraints, cmd.BudgetDetails,
		cmd.AccessibilityNeeds, cmd.GroupDynamics, cmd.UserID).Scan(
		&p.ID, &p.UserID, &p.BaseProfileID, &p.PersonalPreferences, &p.Constraints,
		&p.BudgetDetails, &p.AccessibilityNeeds, &p.GroupDynamics, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return UserPersona{}, ErrNotFound
	}
	return p, err
}

func (s *Store) DeletePersona(ctx context.Context, id, userID int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM user_personas WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
