// Package testutil provides shared fixtures for package tests
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/atelier/internal/database"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the slot schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// every pooled connection would otherwise see its own empty database
	db.SetMaxOpenConns(1)

	if err := database.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestAdapter returns a persistence adapter over a fresh in-memory database
func SetupTestAdapter(t *testing.T) *database.Adapter {
	t.Helper()
	return database.NewAdapter(SetupTestDB(t))
}
