package repository

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/pkg/kvstore"
)

type AssignmentRepository struct {
	*Collection[model.Assignment]
}

func NewAssignmentRepository(store kvstore.Store) *AssignmentRepository {
	return &AssignmentRepository{
		Collection: NewCollection(store, KeyAssignments, func(a *model.Assignment) *string { return &a.ID }),
	}
}

type ClubEventRepository struct {
	*Collection[model.ClubEvent]
}

func NewClubEventRepository(store kvstore.Store) *ClubEventRepository {
	return &ClubEventRepository{
		Collection: NewCollection(store, KeyClubEvents, func(e *model.ClubEvent) *string { return &e.ID }),
	}
}
