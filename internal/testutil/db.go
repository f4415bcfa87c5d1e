package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/templui/inorbit/internal/db"
)

// NewTestDB opens a SQLite database in the test's temp dir with all migrations applied.
// It is closed automatically when the test completes.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Init("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}

	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Errorf("closing test db: %v", err)
		}
	})

	if err := db.RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}

	return database
}
