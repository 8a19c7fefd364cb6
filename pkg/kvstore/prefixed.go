package kvstore

import "context"

type prefixed struct {
	inner  Store
	prefix string
}

// Prefixed returns a view of s in which every key is namespaced by prefix.
// It is used to give each session and each viewer its own markers.
func Prefixed(s Store, prefix string) Store {
	if p, ok := s.(*prefixed); ok {
		return &prefixed{inner: p.inner, prefix: p.prefix + prefix}
	}
	return &prefixed{inner: s, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return p.inner.Remove(ctx, p.prefix+key)
}

func (p *prefixed) Ping(ctx context.Context) error {
	return Ping(ctx, p.inner)
}
