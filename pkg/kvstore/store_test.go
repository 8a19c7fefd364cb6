package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func newBoltStore(t *testing.T) Store {
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewBoltStore(db, nil)
	require.NoError(t, err)
	return s
}

func newRedisStore(t *testing.T) Store {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client)
}

func TestStoreBackends(t *testing.T) {
	backends := []struct {
		name string
		open func(t *testing.T) Store
	}{
		{name: "memory", open: func(t *testing.T) Store { return NewMemoryStore() }},
		{name: "bolt", open: newBoltStore},
		{name: "redis", open: newRedisStore},
		{name: "prefixed", open: func(t *testing.T) Store { return Prefixed(NewMemoryStore(), "p:") }},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			s := b.open(t)

			_, ok, err := s.Get(ctx, "assignments")
			require.NoError(t, err)
			assert.False(t, ok, "absent key must report not found")

			require.NoError(t, s.Set(ctx, "assignments", `[{"id":"1"}]`))
			v, ok, err := s.Get(ctx, "assignments")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":"1"}]`, v)

			require.NoError(t, s.Set(ctx, "assignments", "[]"))
			v, _, _ = s.Get(ctx, "assignments")
			assert.Equal(t, "[]", v)

			require.NoError(t, s.Remove(ctx, "assignments"))
			_, ok, err = s.Get(ctx, "assignments")
			require.NoError(t, err)
			assert.False(t, ok)

			// removing twice is fine
			assert.NoError(t, s.Remove(ctx, "assignments"))

			assert.ErrorIs(t, s.Set(ctx, "", "x"), ErrEmptyKey)
			assert.NoError(t, Ping(ctx, s))
		})
	}
}

func TestPrefixedIsolatesKeys(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()
	a := Prefixed(base, "session:a:")
	b := Prefixed(base, "session:b:")

	require.NoError(t, a.Set(ctx, "userRole", "student"))
	require.NoError(t, b.Set(ctx, "userRole", "teacher"))

	v, _, _ := a.Get(ctx, "userRole")
	assert.Equal(t, "student", v)
	v, _, _ = b.Get(ctx, "userRole")
	assert.Equal(t, "teacher", v)

	raw, ok, _ := base.Get(ctx, "session:a:userRole")
	assert.True(t, ok)
	assert.Equal(t, "student", raw)

	nested := Prefixed(a, "x:")
	require.NoError(t, nested.Set(ctx, "k", "v"))
	_, ok, _ = base.Get(ctx, "session:a:x:k")
	assert.True(t, ok, "nested prefixes must concatenate")
}

func TestGetOr(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	v, err := GetOr(ctx, s, "lastCheckedEvents", "0")
	require.NoError(t, err)
	assert.Equal(t, "0", v)

	require.NoError(t, s.Set(ctx, "lastCheckedEvents", "42"))
	v, err = GetOr(ctx, s, "lastCheckedEvents", "0")
	require.NoError(t, err)
	assert.Equal(t, "42", v)
}
