package model

type Assignment struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	PostedDate  string `json:"postedDate"`
}
