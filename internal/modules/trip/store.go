// README: Trip store backed by PostgreSQL.
package trip

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

func (s *Store) Insert(ctx context.Context, cmd CreateCommand) (Trip, error) {
	var t Trip
	err := s.db.QueryRow(ctx, `
		INSERT INTO trips (name, description, start_date, end_date, destination)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, start_date, end_date, destination, created_at
	`, cmd.Name, cmd.Description, cmd.StartDate, cmd.EndDate, cmd.Destination).Scan(
		&t.ID, &t.Name, &t.Description, &t.StartDate, &t.EndDate, &t.Destination, &t.CreatedAt)
	return t, err
}

func (s *Store) Get(ctx context.Context, id int64) (Trip, error) {
	var t Trip
	err := s.db.QueryRow(ctx, `
		SELECT id, name, description, start_date, end_date, destination, created_at
		FROM trips WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.Description, &t.StartDate, &t.EndDate, &t.Destination, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Trip{}, ErrNotFound
	}
	return t, err
}

func (s *Store) List(ctx context.Context) ([]Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, description, start_date, end_date, destination, created_at
		FROM trips ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []Trip{}
	for rows.Next() {
		var t Trip
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.StartDate, &t.EndDate, &t.Destination, &t.CreatedAt); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (s *Store) Update(ctx context.Context, id int64, cmd CreateCommand) (Trip, error) {
	var t Trip
	err := s.db.QueryRow(ctx, `
		UPDATE trips
		SET name = $2, description = $3, start_date = $4, end_date = $5, destination = $6
		WHERE id = $1
		RETURNING id, name, description, start_date, end_date, destination, created_at
	`, id, cmd.Name, cmd.Description, cmd.StartDate, cmd.EndDate, cmd.Destination).Scan(
		&t.ID, &t.Name, &t.Description, &t.StartDate, &t.EndDate, &t.Destination, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Trip{}, ErrNotFound
	}
	return t, err
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
