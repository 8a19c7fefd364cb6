package service

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/repository"
	"context"
)

type FeedbackRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type FeedbackService struct {
	FeedbackRepo *repository.FeedbackRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{FeedbackRepo: repo}
}

func (s *FeedbackService) Submit(ctx context.Context, studentID string, req FeedbackRequest) (*model.Feedback, error) {
	trimStrings(&req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	f, err := s.FeedbackRepo.Append(ctx, model.Feedback{
		StudentID:     studentID,
		Subject:       req.Subject,
		Message:       req.Message,
		SubmittedDate: today(),
	})
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *FeedbackService) ListByStudent(ctx context.Context, studentID string) ([]model.Feedback, error) {
	return s.FeedbackRepo.FindByStudentID(ctx, studentID)
}

func (s *FeedbackService) ListAll(ctx context.Context) ([]model.Feedback, error) {
	return s.FeedbackRepo.List(ctx)
}
