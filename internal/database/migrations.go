package database

import (
	"context"
	"database/sql"
)

// RunMigrations creates the schema if needed.
// Only the slot table exists: every store keeps its whole collection in one row.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_slots (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
