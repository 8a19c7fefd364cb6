package model

type SubjectScore struct {
	Subject string  `json:"subject"`
	Marks   float64 `json:"marks"`
	Total   float64 `json:"total"`
}

func (s SubjectScore) Percentage() float64 {
	if s.Total <= 0 {
		return 0
	}
	return s.Marks / s.Total * 100
}

// StudentRecord is one student's row set from the uploaded dataset.
type StudentRecord struct {
	RegNo             string         `json:"regNo"`
	Semester          string         `json:"semester"`
	SubjectData       []SubjectScore `json:"subjectData"`
	OverallPercentage float64        `json:"overallPercentage"`
}

// ComputeOverall returns total marks over total possible, as a percentage.
func (r StudentRecord) ComputeOverall() float64 {
	var marks, total float64
	for _, s := range r.SubjectData {
		marks += s.Marks
		total += s.Total
	}
	if total <= 0 {
		return 0
	}
	return marks / total * 100
}
