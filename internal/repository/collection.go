package repository

import (
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/kvstore"
	"academic_dashboard/pkg/logger"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Collection is a JSON array persisted under one key. Every mutation reads
// the whole array, changes it and writes it back; concurrent writers race
// and the last full write wins.
type Collection[T any] struct {
	store kvstore.Store
	key   string
	id    func(*T) *string
	ids   *IDGenerator
}

// NewCollection binds a collection to key. id returns the address of the
// item's id field so the collection can read and assign it.
func NewCollection[T any](store kvstore.Store, key string, id func(*T) *string) *Collection[T] {
	return &Collection[T]{store: store, key: key, id: id, ids: defaultIDs}
}

// WithIDs swaps the id generator, mainly for tests.
func (c *Collection[T]) WithIDs(g *IDGenerator) *Collection[T] {
	c.ids = g
	return c
}

func (c *Collection[T]) Key() string {
	return c.key
}

// List returns the items in stored order. Text that does not decode is
// treated as an empty collection.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	items := []T{}
	if !ok || raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Log.Debug("discarding unreadable collection",
			zap.String("key", c.key),
			zap.Error(err),
		)
		return []T{}, nil
	}
	return items, nil
}

// Count is len(List).
func (c *Collection[T]) Count(ctx context.Context) (int, error) {
	items, err := c.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (c *Collection[T]) Find(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := c.List(ctx)
	if err != nil {
		return zero, err
	}
	for i := range items {
		if *c.id(&items[i]) == id {
			return items[i], nil
		}
	}
	return zero, util.ErrNotFound
}

// Filter returns the items for which keep is true.
func (c *Collection[T]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []T{}
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

// Append assigns a fresh id to item and adds it to the end.
func (c *Collection[T]) Append(ctx context.Context, item T) (T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return item, err
	}
	*c.id(&item) = c.ids.Next()
	items = append(items, item)
	if err := c.Replace(ctx, items); err != nil {
		return item, err
	}
	return item, nil
}

// Remove drops the item with id. It reports false, without writing, when
// no item matches.
func (c *Collection[T]) Remove(ctx context.Context, id string) (bool, error) {
	items, err := c.List(ctx)
	if err != nil {
		return false, err
	}
	kept := make([]T, 0, len(items))
	for i := range items {
		if *c.id(&items[i]) != id {
			kept = append(kept, items[i])
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	return true, c.Replace(ctx, kept)
}

// Update applies fn to the item with id and rewrites the collection. If fn
// returns an error nothing is written.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(*T) error) (T, error) {
	var zero T
	items, err := c.List(ctx)
	if err != nil {
		return zero, err
	}
	for i := range items {
		if *c.id(&items[i]) != id {
			continue
		}
		if err := fn(&items[i]); err != nil {
			return items[i], err
		}
		if err := c.Replace(ctx, items); err != nil {
			return zero, err
		}
		return items[i], nil
	}
	return zero, util.ErrNotFound
}

// Replace overwrites the whole collection.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	return c.store.Set(ctx, c.key, string(data))
}
