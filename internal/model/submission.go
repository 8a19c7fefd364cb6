package model

type SubmissionType string

const (
	Research   SubmissionType = "research"
	Internship SubmissionType = "internship"
)

type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// Terminal reports whether no further review decision may follow.
func (s SubmissionStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Submission is either a research paper or an internship record; Type tells
// which group of optional fields is populated.
type Submission struct {
	ID             string           `json:"id"`
	Type           SubmissionType   `json:"type"`
	StudentID      string           `json:"studentId"`
	StudentName    string           `json:"studentName"`
	RegisterNumber string           `json:"registerNumber"`
	Department     string           `json:"department"`
	Semester       string           `json:"semester"`
	SubmittedDate  string           `json:"submittedDate"`
	Status         SubmissionStatus `json:"status"`

	// research
	ResearchTitle     string `json:"researchTitle,omitempty"`
	ResearchDomain    string `json:"researchDomain,omitempty"`
	PublicationType   string `json:"publicationType,omitempty"`
	PublisherName     string `json:"publisherName,omitempty"`
	DOILink           string `json:"doiLink,omitempty"`
	Abstract          string `json:"abstract,omitempty"`
	DateOfPublication string `json:"dateOfPublication,omitempty"`
	MentorName        string `json:"mentorName,omitempty"`
	Organization      string `json:"organization,omitempty"`
	FileURL           string `json:"fileUrl,omitempty"`

	// internship
	CompanyName    string   `json:"companyName,omitempty"`
	Role           string   `json:"role,omitempty"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	Duration       string   `json:"duration,omitempty"`
	InternshipType string   `json:"internshipType,omitempty"`
	SupervisorName string   `json:"supervisorName,omitempty"`
	Description    string   `json:"description,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	CertificateURL string   `json:"certificateUrl,omitempty"`
	ProjectDetails string   `json:"projectDetails,omitempty"`
}
