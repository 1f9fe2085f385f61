// README: Trip service: validation in front of the store.
package trip

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (Trip, error) {
	if err := validateCommand(cmd); err != nil {
		return Trip{}, err
	}
	return s.store.Insert(ctx, cmd)
}

func (s *Service) Get(ctx context.Context, id int64) (Trip, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Trip, error) {
	return s.store.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, cmd CreateCommand) (Trip, error) {
	if err := validateCommand(cmd); err != nil {
		return Trip{}, err
	}
	return s.store.Update(ctx, id, cmd)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func validateCommand(cmd CreateCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	start, err := parseOptionalDate(cmd.StartDate)
	if err != nil {
		return fmt.Errorf("%w: bad startDate", ErrBadRequest)
	}
	end, err := parseOptionalDate(cmd.EndDate)
	if err != nil {
		return fmt.Errorf("%w: bad endDate", ErrBadRequest)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("%w: endDate before startDate", ErrBadRequest)
	}
	return nil
}

func parseOptionalDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, v)
}
