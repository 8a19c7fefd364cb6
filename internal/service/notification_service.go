package service

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/repository"
	"academic_dashboard/pkg/kvstore"
	"academic_dashboard/pkg/logger"
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	SourceAssignments = "assignments"
	SourceEvents      = "events"
)

// notificationSource binds one teacher-posted collection to its markers.
type notificationSource struct {
	name        string
	postedKey   string // global, unix ms of the latest post
	versionKey  string // global, bumped on every post
	checkedKey  string // per viewer, unix ms of the last visit
	observedKey string // per viewer, version seen on the last visit
	count       func(ctx context.Context) (int, error)
}

// NotificationService computes "new items" badges for students. A badge is
// non-zero only when something was posted after the viewer's last visit,
// and then counts the posts the viewer has not seen, capped at the size of
// the collection.
type NotificationService struct {
	Store   kvstore.Store
	Markers *repository.MarkerRepository

	sources  []notificationSource
	interval atomic.Int64
}

// DefaultPollInterval matches how often the sidebar used to re-check.
const DefaultPollInterval = 5 * time.Second

func NewNotificationService(store kvstore.Store, assignments *repository.AssignmentRepository, events *repository.ClubEventRepository) *NotificationService {
	return &NotificationService{
		Store:   store,
		Markers: repository.NewMarkerRepository(store),
		sources: []notificationSource{
			{
				name:        SourceAssignments,
				postedKey:   repository.KeyLastAssignmentPosted,
				versionKey:  repository.KeyAssignmentsVersion,
				checkedKey:  repository.KeyLastCheckedAssignments,
				observedKey: repository.KeyLastObservedAssignmentVersion,
				count:       assignments.Count,
			},
			{
				name:        SourceEvents,
				postedKey:   repository.KeyLastEventPosted,
				versionKey:  repository.KeyClubEventsVersion,
				checkedKey:  repository.KeyLastCheckedEvents,
				observedKey: repository.KeyLastObservedEventVersion,
				count:       events.Count,
			},
		},
	}
}

// PollInterval is the tick of notification streams; it can change on
// config reload.
func (s *NotificationService) PollInterval() time.Duration {
	if d := time.Duration(s.interval.Load()); d > 0 {
		return d
	}
	return DefaultPollInterval
}

func (s *NotificationService) SetPollInterval(d time.Duration) {
	s.interval.Store(int64(d))
}

func (s *NotificationService) source(name string) (notificationSource, error) {
	for _, src := range s.sources {
		if src.name == name {
			return src, nil
		}
	}
	return notificationSource{}, fmt.Errorf("unknown notification source %q", name)
}

func (s *NotificationService) viewer(userID string) *repository.MarkerRepository {
	return repository.NewMarkerRepository(kvstore.Prefixed(s.Store, repository.ViewerPrefix(userID)))
}

// Posted records a new post on source: the posted marker moves to now and
// the version counter is bumped.
func (s *NotificationService) Posted(ctx context.Context, name string) error {
	src, err := s.source(name)
	if err != nil {
		return err
	}
	if err := s.Markers.SetInt(ctx, src.postedKey, nowFunc().UnixMilli()); err != nil {
		return err
	}
	_, err = s.Markers.Incr(ctx, src.versionKey)
	return err
}

// Badge returns the unseen count of one source for userID.
func (s *NotificationService) Badge(ctx context.Context, userID, name string) (int, error) {
	src, err := s.source(name)
	if err != nil {
		return 0, err
	}
	return s.badge(ctx, s.viewer(userID), src)
}

func (s *NotificationService) badge(ctx context.Context, viewer *repository.MarkerRepository, src notificationSource) (int, error) {
	posted, err := s.Markers.Int(ctx, src.postedKey)
	if err != nil {
		return 0, err
	}
	checked, err := viewer.Int(ctx, src.checkedKey)
	if err != nil {
		return 0, err
	}
	if posted <= checked {
		return 0, nil
	}

	size, err := src.count(ctx)
	if err != nil {
		return 0, err
	}

	versioned, err := s.Markers.Has(ctx, src.versionKey)
	if err != nil {
		return 0, err
	}
	if !versioned {
		// data written before version counters existed
		return size, nil
	}

	current, err := s.Markers.Int(ctx, src.versionKey)
	if err != nil {
		return 0, err
	}
	observed, err := viewer.Int(ctx, src.observedKey)
	if err != nil {
		return 0, err
	}

	unseen := int(current - observed)
	switch {
	case unseen < 0:
		unseen = 0
	case unseen > size:
		unseen = size
	}
	return unseen, nil
}

// Badges evaluates every source, in a fixed order. A badge counts the
// items posted since the viewer last observed the source (version delta,
// capped at the collection size), not the whole collection.
func (s *NotificationService) Badges(ctx context.Context, userID string) ([]model.Badge, error) {
	viewer := s.viewer(userID)
	badges := make([]model.Badge, 0, len(s.sources))
	for _, src := range s.sources {
		n, err := s.badge(ctx, viewer, src)
		if err != nil {
			return nil, err
		}
		badges = append(badges, model.Badge{Source: src.name, Count: n})
	}
	return badges, nil
}

// Visit marks source as seen by userID. The checked marker never lands
// before the latest post, so a skewed clock cannot resurrect the badge.
func (s *NotificationService) Visit(ctx context.Context, userID, name string) error {
	src, err := s.source(name)
	if err != nil {
		return err
	}
	viewer := s.viewer(userID)

	posted, err := s.Markers.Int(ctx, src.postedKey)
	if err != nil {
		return err
	}
	checked := nowFunc().UnixMilli()
	if posted > checked {
		checked = posted
	}
	if err := viewer.SetInt(ctx, src.checkedKey, checked); err != nil {
		return err
	}

	current, err := s.Markers.Int(ctx, src.versionKey)
	if err != nil {
		return err
	}
	return viewer.SetInt(ctx, src.observedKey, current)
}

// Watch evaluates the badges immediately and then every interval, calling
// emit each time, until ctx is done. Evaluation errors are logged and the
// tick skipped.
func (s *NotificationService) Watch(ctx context.Context, userID string, interval time.Duration, emit func([]model.Badge) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		badges, err := s.Badges(ctx, userID)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Log.Warn("failed to evaluate notification badges",
				zap.String("userId", userID),
				zap.Error(err),
			)
		} else if err := emit(badges); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
