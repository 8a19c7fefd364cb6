package service

import (
	"academic_dashboard/internal/config"
	"academic_dashboard/internal/repository"
	"academic_dashboard/pkg/kvstore"
	"testing"
	"time"
)

type testEnv struct {
	store         *kvstore.MemoryStore
	markers       *repository.MarkerRepository
	activities    *ActivityService
	notifications *NotificationService
	assignments   *AssignmentService
	events        *ClubEventService
	achievements  *AchievementService
	feedback      *FeedbackService
	submissions   *SubmissionService
	datasets      *DatasetService
	sessions      *SessionService
	now           *time.Time
}

// setup wires every service over one in-memory store and pins the clock.
// Move the clock with env.advance.
func setup(t *testing.T) *testEnv {
	t.Helper()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	prev := nowFunc
	env := &testEnv{now: &now}
	nowFunc = func() time.Time { return *env.now }
	t.Cleanup(func() { nowFunc = prev })

	store := kvstore.NewMemoryStore()
	env.store = store
	env.markers = repository.NewMarkerRepository(store)
	env.activities = NewActivityService(repository.NewActivityRepository(store))

	assignmentRepo := repository.NewAssignmentRepository(store)
	eventRepo := repository.NewClubEventRepository(store)
	env.notifications = NewNotificationService(store, assignmentRepo, eventRepo)
	env.assignments = NewAssignmentService(assignmentRepo, env.notifications, env.activities)
	env.events = NewClubEventService(eventRepo, env.notifications, env.activities)
	env.achievements = NewAchievementService(repository.NewAchievementRepository(store))
	env.feedback = NewFeedbackService(repository.NewFeedbackRepository(store))
	env.submissions = NewSubmissionService(repository.NewSubmissionRepository(store), env.activities)
	env.datasets = NewDatasetService(repository.NewStudentRecordRepository(store), env.markers, env.activities, nil)
	env.sessions = NewSessionService(store, &config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour})
	return env
}

func (e *testEnv) advance(d time.Duration) {
	*e.now = e.now.Add(d)
}
