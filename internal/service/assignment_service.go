package service

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/repository"
	"academic_dashboard/pkg/logger"
	"context"

	"go.uber.org/zap"
)

type AssignmentRequest struct {
	Title       string `json:"title" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
	DueDate     string `json:"dueDate" validate:"required"`
}

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	Notifications  *NotificationService
	Activities     *ActivityService
}

func NewAssignmentService(repo *repository.AssignmentRepository, notifications *NotificationService, activities *ActivityService) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: repo,
		Notifications:  notifications,
		Activities:     activities,
	}
}

func (s *AssignmentService) List(ctx context.Context) ([]model.Assignment, error) {
	return s.AssignmentRepo.List(ctx)
}

// Post appends the assignment and raises the student badge.
func (s *AssignmentService) Post(ctx context.Context, req AssignmentRequest) (*model.Assignment, error) {
	trimStrings(&req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	a, err := s.AssignmentRepo.Append(ctx, model.Assignment{
		Title:       req.Title,
		Subject:     req.Subject,
		Description: req.Description,
		DueDate:     req.DueDate,
		PostedDate:  today(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.Notifications.Posted(ctx, SourceAssignments); err != nil {
		return nil, err
	}
	s.Activities.Record(ctx, model.ActivityAssignment, "Posted assignment: "+a.Title)

	logger.Log.Info("assignment posted",
		zap.String("id", a.ID),
		zap.String("subject", a.Subject),
	)
	return &a, nil
}

// Delete reports false when no assignment has id.
func (s *AssignmentService) Delete(ctx context.Context, id string) (bool, error) {
	a, err := s.AssignmentRepo.Find(ctx, id)
	if err != nil {
		return false, ignoreNotFound(err)
	}
	removed, err := s.AssignmentRepo.Remove(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.Activities.Record(ctx, model.ActivityAssignment, "Deleted assignment: "+a.Title)
	return true, nil
}
