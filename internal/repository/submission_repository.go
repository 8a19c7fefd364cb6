package repository

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/kvstore"
	"context"
	"errors"
)

type SubmissionRepository struct {
	*Collection[model.Submission]
}

func NewSubmissionRepository(store kvstore.Store) *SubmissionRepository {
	return &SubmissionRepository{
		Collection: NewCollection(store, KeySubmissions, func(s *model.Submission) *string { return &s.ID }),
	}
}

func (r *SubmissionRepository) FindByStudentID(ctx context.Context, studentID string) ([]model.Submission, error) {
	return r.Filter(ctx, func(s model.Submission) bool { return s.StudentID == studentID })
}

// FindByType returns all submissions when typ is empty.
func (r *SubmissionRepository) FindByType(ctx context.Context, typ model.SubmissionType) ([]model.Submission, error) {
	return r.Filter(ctx, func(s model.Submission) bool { return typ == "" || s.Type == typ })
}

var errUnchanged = errors.New("unchanged")

// UpdateStatus records a review decision. Only pending submissions can
// change; repeating the current terminal status is a no-op reported as
// changed=false, and any other change after review is ErrStatusFinal.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus) (model.Submission, bool, error) {
	if !status.Terminal() {
		return model.Submission{}, false, util.ErrInvalidStatus
	}

	sub, err := r.Update(ctx, id, func(s *model.Submission) error {
		switch {
		case s.Status == status:
			return errUnchanged
		case s.Status.Terminal():
			return util.ErrStatusFinal
		}
		s.Status = status
		return nil
	})

	switch {
	case err == nil:
		return sub, true, nil
	case errors.Is(err, errUnchanged):
		return sub, false, nil
	case errors.Is(err, util.ErrNotFound):
		return sub, false, util.ErrSubmissionNotFound
	}
	return sub, false, err
}

// CountPending is used for the teacher dashboard.
func (r *SubmissionRepository) CountPending(ctx context.Context) (int, error) {
	pending, err := r.Filter(ctx, func(s model.Submission) bool { return s.Status == model.StatusPending })
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}
