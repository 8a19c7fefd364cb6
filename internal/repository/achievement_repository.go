package repository

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/pkg/kvstore"
	"context"
)

type AchievementRepository struct {
	*Collection[model.Achievement]
}

func NewAchievementRepository(store kvstore.Store) *AchievementRepository {
	return &AchievementRepository{
		Collection: NewCollection(store, KeyAchievements, func(a *model.Achievement) *string { return &a.ID }),
	}
}

func (r *AchievementRepository) FindByStudentID(ctx context.Context, studentID string) ([]model.Achievement, error) {
	return r.Filter(ctx, func(a model.Achievement) bool { return a.StudentID == studentID })
}

type FeedbackRepository struct {
	*Collection[model.Feedback]
}

func NewFeedbackRepository(store kvstore.Store) *FeedbackRepository {
	return &FeedbackRepository{
		Collection: NewCollection(store, KeyStudentFeedback, func(f *model.Feedback) *string { return &f.ID }),
	}
}

func (r *FeedbackRepository) FindByStudentID(ctx context.Context, studentID string) ([]model.Feedback, error) {
	return r.Filter(ctx, func(f model.Feedback) bool { return f.StudentID == studentID })
}
