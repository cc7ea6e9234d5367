package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Loader reads a previously saved value into dest
type Loader interface {
	Load(ctx context.Context, key string, dest any) error
}

// Adapter persists whole collections as JSON documents, one slot per key.
// Every save replaces the full value; there are no incremental writes.
type Adapter struct {
	slots *SlotRepo
}

// NewAdapter creates a persistence adapter over db
func NewAdapter(db *sql.DB) *Adapter {
	return &Adapter{slots: NewSlotRepo(db)}
}

// Save serializes collection and writes it under key
func (a *Adapter) Save(ctx context.Context, key string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return a.slots.Put(ctx, key, data)
}

// Load decodes the value saved under key into dest.
// Returns ErrSlotNotFound when the key was never saved.
func (a *Adapter) Load(ctx context.Context, key string, dest any) error {
	data, err := a.slots.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return nil
}

// LoadCollection returns the last collection saved under key.
// A missing slot or an unreadable value yields an empty collection, never nil.
func LoadCollection[T any](ctx context.Context, loader Loader, key string, logger *slog.Logger) []T {
	var items []T
	err := loader.Load(ctx, key, &items)
	switch {
	case errors.Is(err, ErrSlotNotFound):
		return []T{}
	case err != nil:
		logger.Warn("discarding unreadable collection", "key", key, "error", err)
		return []T{}
	case items == nil:
		return []T{}
	}
	return items
}
