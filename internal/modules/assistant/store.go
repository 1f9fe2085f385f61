package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles assistant_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// UseToken atomically checks the monthly quota and deducts one token.
// It resets the counter to DefaultTokens when last_reset_month is behind the current month.
// Returns ErrInsufficientTokens when 0 rows are updated (quota exhausted or user absent).
func (s *Store) UseToken(ctx context.Context, userID int64) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE assistant_usage SET
			tokens_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE tokens_remaining - 1 END,
			last_reset_month = $1
		WHERE user_id = $3 AND (last_reset_month < $1 OR tokens_remaining > 0)
	`, now, DefaultTokens, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientTokens
	}
	return nil
}

// EnsureUser inserts a new assistant_usage row for userID with the default token allowance.
// If the row already exists the insert is silently skipped (ON CONFLICT DO NOTHING).
func (s *Store) EnsureUser(ctx context.Context, userID int64) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO assistant_usage (user_id, tokens_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, DefaultTokens, time.Now().Format("2006-01"))
	return err
}

// RemainingTokens reports the current month's remaining allowance for userID.
// A user absent from the table (or one whose last reset is behind the current
// month) still has the full allowance.
func (s *Store) RemainingTokens(ctx context.Context, userID int64) (int, error) {
	now := time.Now().Format("2006-01")

	var remaining int
	var lastReset string
	err := s.db.QueryRow(ctx, `
		SELECT tokens_remaining, last_reset_month FROM assistant_usage WHERE user_id = $1
	`, userID).Scan(&remaining, &lastReset)
	if errors.Is(err, pgx.ErrNoRows) {
		return DefaultTokens, nil
	}
	if err != nil {
		return 0, err
	}
	if lastReset < now {
		return DefaultTokens, nil
	}
	return remaining, nil
}
