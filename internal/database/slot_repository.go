package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SlotRepo reads and writes raw values in the kv_slots table
type SlotRepo struct {
	db *sql.DB
}

// NewSlotRepo wraps db for slot access
func NewSlotRepo(db *sql.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// Put stores value under key, replacing any previous value
func (r *SlotRepo) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key, or ErrSlotNotFound
func (r *SlotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv_slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return []byte(value), nil
}
