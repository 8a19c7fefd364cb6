package model

type Feedback struct {
	ID            string `json:"id"`
	StudentID     string `json:"studentId"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	SubmittedDate string `json:"submittedDate"`
}
