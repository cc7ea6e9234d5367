// Package store holds the in-memory entity collections shared by every service.
//
// A Collection is loaded once when opened and written back in full after every
// mutation. Writes are serialized so a save always reflects the latest state.
package store

import (
	"context"
	"slices"
	"sync"

	"github.com/thenoetrevino/atelier/internal/database"
)

// Record is implemented by every persisted entity
type Record interface {
	GetID() string
}

// Persister saves and loads whole collections by key
type Persister interface {
	database.Loader
	Save(ctx context.Context, key string, collection any) error
}

// Collection is an ordered set of records (insertion order is display order)
type Collection[E Record] struct {
	mu      sync.RWMutex
	key     string
	items   []E
	persist Persister
	cfg     config
}

// Open loads the collection saved under key and returns it ready for use
func Open[E Record](ctx context.Context, p Persister, key string, opts ...Option) *Collection[E] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Collection[E]{
		key:     key,
		items:   database.LoadCollection[E](ctx, p, key, cfg.logger),
		persist: p,
		cfg:     cfg,
	}
}

// Key returns the storage key the collection is persisted under
func (c *Collection[E]) Key() string {
	return c.key
}

// List returns every record in collection order
func (c *Collection[E]) List() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Len returns the number of records
func (c *Collection[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the record with the given id
func (c *Collection[E]) Get(id string) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero E
	return zero, false
}

// Filter returns the records matching pred, preserving order.
// The result is empty (not nil) when nothing matches.
func (c *Collection[E]) Filter(pred func(E) bool) []E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]E, 0)
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Insert builds a record around a freshly generated id, appends it and persists
func (c *Collection[E]) Insert(ctx context.Context, build func(id string) E) E {
	c.mu.Lock()
	defer c.mu.Unlock()

	record := build(c.cfg.newID())
	c.items = append(c.items, record)
	c.save(ctx)
	return record
}

// Update replaces the record matching id with merge(old).
// The collection is persisted whether or not a record matched.
func (c *Collection[E]) Update(ctx context.Context, id string, merge func(E) E) (E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var updated E
	i := c.indexOf(id)
	if i >= 0 {
		updated = merge(c.items[i])
		c.items[i] = updated
	}
	c.save(ctx)
	return updated, i >= 0
}

// Delete removes the record matching id.
// The collection is persisted whether or not a record matched.
func (c *Collection[E]) Delete(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}
	c.save(ctx)
	return i >= 0
}

// indexOf must be called with the lock held
func (c *Collection[E]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(item E) bool {
		return item.GetID() == id
	})
}

// save must be called with the write lock held.
// Failures leave memory ahead of disk until the next successful save.
func (c *Collection[E]) save(ctx context.Context) {
	if err := c.persist.Save(ctx, c.key, c.items); err != nil {
		c.cfg.logger.Error("failed to persist collection",
			"key", c.key,
			"records", len(c.items),
			"error", err,
		)
	}
}
