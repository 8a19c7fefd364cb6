package model

type AchievementType string

const (
	InterCollege AchievementType = "inter-college"
	External     AchievementType = "external"
)

type Achievement struct {
	ID             string          `json:"id"`
	StudentID      string          `json:"studentId"`
	Type           AchievementType `json:"type"`
	Date           string          `json:"date"`
	Content        string          `json:"content"`
	Location       string          `json:"location"`
	UniversityName string          `json:"universityName,omitempty"`
	FileName       string          `json:"fileName"`
	SubmittedDate  string          `json:"submittedDate"`
}
