package service

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/repository"
	"context"
)

const recentActivityLimit = 10

type DashboardService struct {
	SubmissionRepo *repository.SubmissionRepository
	Datasets       *DatasetService
	Activities     *ActivityService
	Notifications  *NotificationService
}

func NewDashboardService(
	submissionRepo *repository.SubmissionRepository,
	datasets *DatasetService,
	activities *ActivityService,
	notifications *NotificationService,
) *DashboardService {
	return &DashboardService{
		SubmissionRepo: submissionRepo,
		Datasets:       datasets,
		Activities:     activities,
		Notifications:  notifications,
	}
}

type TeacherStats struct {
	TotalStudents  int `json:"totalStudents"`
	ActiveDatasets int `json:"activeDatasets"`
	PendingReviews int `json:"pendingReviews"`
}

type TeacherDashboard struct {
	Stats          TeacherStats     `json:"stats"`
	Dataset        DatasetStatus    `json:"dataset"`
	RecentActivity []model.Activity `json:"recentActivity"`
}

func (s *DashboardService) GetTeacherDashboard(ctx context.Context) (*TeacherDashboard, error) {
	status, err := s.Datasets.Status(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.SubmissionRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.Activities.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	stats := TeacherStats{
		TotalStudents:  status.Students,
		PendingReviews: pending,
	}
	// the dataset is replaced as a whole, so at most one is active
	if status.Uploaded {
		stats.ActiveDatasets = 1
	}
	return &TeacherDashboard{Stats: stats, Dataset: *status, RecentActivity: recent}, nil
}

type StudentDashboard struct {
	Identity      model.Identity `json:"identity"`
	Notifications []model.Badge  `json:"notifications"`
}

// GetStudentDashboard lists only the sources that have something new.
func (s *DashboardService) GetStudentDashboard(ctx context.Context, id model.Identity) (*StudentDashboard, error) {
	badges, err := s.Notifications.Badges(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	alerts := []model.Badge{}
	for _, b := range badges {
		if b.Count > 0 {
			alerts = append(alerts, b)
		}
	}
	return &StudentDashboard{Identity: id, Notifications: alerts}, nil
}
