package service

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/repository"
	"context"
)

type AchievementRequest struct {
	Type           model.AchievementType `json:"type" validate:"required,oneof=inter-college external"`
	Date           string                `json:"date" validate:"required"`
	Content        string                `json:"content" validate:"required"`
	Location       string                `json:"location" validate:"required"`
	UniversityName string                `json:"universityName" validate:"required_if=Type external"`
	FileName       string                `json:"fileName"`
}

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
}

func NewAchievementService(repo *repository.AchievementRepository) *AchievementService {
	return &AchievementService{AchievementRepo: repo}
}

func (s *AchievementService) Submit(ctx context.Context, studentID string, req AchievementRequest) (*model.Achievement, error) {
	trimStrings(&req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	a := model.Achievement{
		StudentID:     studentID,
		Type:          req.Type,
		Date:          req.Date,
		Content:       req.Content,
		Location:      req.Location,
		FileName:      req.FileName,
		SubmittedDate: today(),
	}
	// the university only applies to external achievements
	if req.Type == model.External {
		a.UniversityName = req.UniversityName
	}

	a, err := s.AchievementRepo.Append(ctx, a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AchievementService) ListByStudent(ctx context.Context, studentID string) ([]model.Achievement, error) {
	return s.AchievementRepo.FindByStudentID(ctx, studentID)
}

func (s *AchievementService) ListAll(ctx context.Context) ([]model.Achievement, error) {
	return s.AchievementRepo.List(ctx)
}
