// Package database handles the SQLite file that backs every store
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// InitDB opens (creating if needed) the SQLite database at dbPath and runs migrations
func InitDB(ctx context.Context, dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		// SQLite will retry for this long before returning SQLITE_BUSY
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			closeDB(db)
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// SQLite benefits from a single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
