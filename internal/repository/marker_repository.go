package repository

import (
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/kvstore"
	"context"
	"strconv"
)

// MarkerRepository reads and writes scalar markers such as "last posted"
// timestamps and version counters.
type MarkerRepository struct {
	Store kvstore.Store
}

func NewMarkerRepository(store kvstore.Store) *MarkerRepository {
	return &MarkerRepository{Store: store}
}

// Int returns the marker as an integer; absent or malformed markers are 0.
func (r *MarkerRepository) Int(ctx context.Context, key string) (int64, error) {
	v, err := kvstore.GetOr(ctx, r.Store, key, "0")
	if err != nil {
		return 0, err
	}
	return util.ParseInt64Marker(v), nil
}

// Has reports whether the marker exists at all.
func (r *MarkerRepository) Has(ctx context.Context, key string) (bool, error) {
	_, ok, err := r.Store.Get(ctx, key)
	return ok, err
}

func (r *MarkerRepository) SetInt(ctx context.Context, key string, v int64) error {
	return r.Store.Set(ctx, key, strconv.FormatInt(v, 10))
}

// Incr bumps a counter and returns the new value. Not atomic across
// processes.
func (r *MarkerRepository) Incr(ctx context.Context, key string) (int64, error) {
	n, err := r.Int(ctx, key)
	if err != nil {
		return 0, err
	}
	n++
	return n, r.SetInt(ctx, key, n)
}

func (r *MarkerRepository) String(ctx context.Context, key string) (string, bool, error) {
	return r.Store.Get(ctx, key)
}

func (r *MarkerRepository) SetString(ctx context.Context, key, v string) error {
	return r.Store.Set(ctx, key, v)
}

func (r *MarkerRepository) Remove(ctx context.Context, key string) error {
	return r.Store.Remove(ctx, key)
}
