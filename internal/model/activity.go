package model

import "time"

type ActivityType string

const (
	ActivityAssignment ActivityType = "assignment"
	ActivityEvent      ActivityType = "event"
	ActivityDataset    ActivityType = "dataset"
	ActivityReview     ActivityType = "review"
)

type Activity struct {
	ID        string       `json:"id"`
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
	Type      ActivityType `json:"type"`
}
