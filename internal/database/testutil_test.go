package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// every pooled connection would otherwise get its own empty :memory: database
	db.SetMaxOpenConns(1)

	if err := RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// testDBPath returns a file path for tests that need to reopen the database
func testDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "atelier-test.db")
}
