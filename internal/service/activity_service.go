package service

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/repository"
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/logger"
	"context"
	"errors"

	"go.uber.org/zap"
)

// ActivityService appends to the teacher activity log. Logging is best
// effort: a failed write never fails the action being logged.
type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
}

func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{ActivityRepo: repo}
}

func (s *ActivityService) Record(ctx context.Context, typ model.ActivityType, message string) {
	if _, err := s.ActivityRepo.Log(ctx, typ, message, nowFunc()); err != nil {
		logger.Log.Warn("failed to record teacher activity",
			zap.String("type", string(typ)),
			zap.Error(err),
		)
	}
}

func (s *ActivityService) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	return s.ActivityRepo.ListRecent(ctx, limit)
}

func ignoreNotFound(err error) error {
	if errors.Is(err, util.ErrNotFound) {
		return nil
	}
	return err
}
