// Package kvstore is the persistent name/value space behind every dashboard
// collection and scalar marker. Values are opaque text; collections are
// stored as JSON arrays by the repository layer.
package kvstore

import (
	"context"
	"errors"
)

// ErrEmptyKey is returned when a blank key is used.
var ErrEmptyKey = errors.New("kvstore: empty key")

// Store is a flat text key-value space. There is no multi-key atomicity:
// callers updating two related keys perform two independent writes.
type Store interface {
	// Get returns the stored text and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Pinger is implemented by backends with a remote or file handle whose
// health can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks s when the backend supports it.
func Ping(ctx context.Context, s Store) error {
	if p, ok := s.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// GetOr returns the stored value or def when the key is absent.
func GetOr(ctx context.Context, s Store, key, def string) (string, error) {
	v, ok, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}
