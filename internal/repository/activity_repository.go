package repository

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/pkg/kvstore"
	"context"
	"sort"
	"time"
)

// ActivityRepository is the teacher activity log. It grows without bound.
type ActivityRepository struct {
	*Collection[model.Activity]
}

func NewActivityRepository(store kvstore.Store) *ActivityRepository {
	return &ActivityRepository{
		Collection: NewCollection(store, KeyTeacherActivities, func(a *model.Activity) *string { return &a.ID }),
	}
}

func (r *ActivityRepository) Log(ctx context.Context, typ model.ActivityType, message string, at time.Time) (model.Activity, error) {
	return r.Append(ctx, model.Activity{
		Message:   message,
		Timestamp: at.UTC(),
		Type:      typ,
	})
}

// ListRecent returns entries newest first. limit <= 0 returns everything.
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]model.Activity, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
