package service

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/repository"
	"academic_dashboard/pkg/logger"
	"context"

	"go.uber.org/zap"
)

type ClubEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Club        string `json:"club" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description"`
}

type ClubEventService struct {
	EventRepo     *repository.ClubEventRepository
	Notifications *NotificationService
	Activities    *ActivityService
}

func NewClubEventService(repo *repository.ClubEventRepository, notifications *NotificationService, activities *ActivityService) *ClubEventService {
	return &ClubEventService{
		EventRepo:     repo,
		Notifications: notifications,
		Activities:    activities,
	}
}

func (s *ClubEventService) List(ctx context.Context) ([]model.ClubEvent, error) {
	return s.EventRepo.List(ctx)
}

func (s *ClubEventService) Post(ctx context.Context, req ClubEventRequest) (*model.ClubEvent, error) {
	trimStrings(&req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	e, err := s.EventRepo.Append(ctx, model.ClubEvent{
		Title:       req.Title,
		Club:        req.Club,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Notifications.Posted(ctx, SourceEvents); err != nil {
		return nil, err
	}
	s.Activities.Record(ctx, model.ActivityEvent, "Posted event: "+e.Title+" ("+e.Club+")")

	logger.Log.Info("club event posted",
		zap.String("id", e.ID),
		zap.String("club", e.Club),
	)
	return &e, nil
}

func (s *ClubEventService) Delete(ctx context.Context, id string) (bool, error) {
	e, err := s.EventRepo.Find(ctx, id)
	if err != nil {
		return false, ignoreNotFound(err)
	}
	removed, err := s.EventRepo.Remove(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.Activities.Record(ctx, model.ActivityEvent, "Deleted event: "+e.Title)
	return true, nil
}
