// README: Trip module tests (validation without a database, CRUD with one).
package trip

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestValidateCommand(t *testing.T) {
	cases := []struct {
		name    string
		cmd     CreateCommand
		wantErr bool
	}{
		{"valid", CreateCommand{Name: "Summer in Lisbon", StartDate: "2025-10-15", EndDate: "2025-10-17"}, false},
		{"name only", CreateCommand{Name: "Quick getaway"}, false},
		{"missing name", CreateCommand{StartDate: "2025-10-15"}, true},
		{"blank name", CreateCommand{Name: "   "}, true},
		{"bad start date", CreateCommand{Name: "x", StartDate: "15/10/2025"}, true},
		{"bad end date", CreateCommand{Name: "x", EndDate: "soon"}, true},
		{"end before start", CreateCommand{Name: "x", StartDate: "2025-10-17", EndDate: "2025-10-15"}, true},
		{"same day", CreateCommand{Name: "x", StartDate: "2025-10-15", EndDate: "2025-10-15"}, false},
	}
	for _, tc := range cases {
		err := validateCommand(tc.cmd)
		if tc.wantErr && !errors.Is(err, ErrBadRequest) {
			t.Fatalf("%s: expected ErrBadRequest, got %v", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
	}
}

func TestTripCRUD(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCommand{
		Name:        "Lisbon long weekend",
		Description: "Three days of pastries",
		StartDate:   "2025-10-15",
		EndDate:     "2025-10-17",
		Destination: "Lisbon",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("create returned zero id")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Lisbon long weekend" || got.Destination != "Lisbon" {
		t.Fatalf("get returned %+v", got)
	}

	updated, err := svc.Update(ctx, created.ID, CreateCommand{Name: "Lisbon, extended", Destination: "Lisbon"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Lisbon, extended" {
		t.Fatalf("update returned %+v", updated)
	}

	trips, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("list returned %d trips", len(trips))
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); err != ErrNotFound {
		t.Fatalf("get after delete: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != ErrNotFound {
		t.Fatalf("double delete: %v", err)
	}
}

// setupTestService creates a real postgres-backed Service. It skips the test
// when WAYFARE_TEST_DSN is not set.
func setupTestService(t *testing.T) *Service {
	t.Helper()

	dsn := os.Getenv("WAYFARE_TEST_DSN")
	if dsn == "" {
		t.Skip("WAYFARE_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS trips (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			start_date TEXT NOT NULL DEFAULT '',
			end_date TEXT NOT NULL DEFAULT '',
			destination TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		t.Fatalf("ensure trips table: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE trips"); err != nil {
		t.Fatalf("truncate trips: %v", err)
	}

	return NewService(NewStore(db))
}
