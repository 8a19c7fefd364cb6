package repository

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/kvstore"
	"context"
	"strings"
)

// StudentRecordRepository holds the uploaded performance dataset. It is
// only ever replaced as a whole.
type StudentRecordRepository struct {
	*Collection[model.StudentRecord]
}

func NewStudentRecordRepository(store kvstore.Store) *StudentRecordRepository {
	return &StudentRecordRepository{
		Collection: NewCollection(store, KeyStudentData, func(r *model.StudentRecord) *string { return &r.RegNo }),
	}
}

// FindByRegNo matches both registration number and semester exactly,
// ignoring surrounding whitespace.
func (r *StudentRecordRepository) FindByRegNo(ctx context.Context, regNo, semester string) (model.StudentRecord, error) {
	regNo, semester = strings.TrimSpace(regNo), strings.TrimSpace(semester)
	records, err := r.List(ctx)
	if err != nil {
		return model.StudentRecord{}, err
	}
	for _, rec := range records {
		if rec.RegNo == regNo && rec.Semester == semester {
			return rec, nil
		}
	}
	return model.StudentRecord{}, util.ErrStudentNotFound
}
