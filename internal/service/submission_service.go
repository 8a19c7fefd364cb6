package service

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/repository"
	"academic_dashboard/internal/util"
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// StudentInfo is shared by both submission forms.
type StudentInfo struct {
	StudentName    string `json:"studentName" validate:"required"`
	RegisterNumber string `json:"registerNumber" validate:"required"`
	Department     string `json:"department" validate:"required"`
	Semester       string `json:"semester" validate:"required"`
}

type ResearchRequest struct {
	StudentInfo
	ResearchTitle     string `json:"researchTitle" validate:"required"`
	ResearchDomain    string `json:"researchDomain" validate:"required"`
	PublicationType   string `json:"publicationType" validate:"required"`
	PublisherName     string `json:"publisherName" validate:"required"`
	DOILink           string `json:"doiLink" validate:"required"`
	Abstract          string `json:"abstract" validate:"required"`
	DateOfPublication string `json:"dateOfPublication" validate:"required"`
	MentorName        string `json:"mentorName" validate:"required"`
	Organization      string `json:"organization" validate:"required"`
	FileURL           string `json:"fileUrl"`
}

type InternshipRequest struct {
	StudentInfo
	CompanyName    string   `json:"companyName" validate:"required"`
	Role           string   `json:"role" validate:"required"`
	StartDate      string   `json:"startDate" validate:"required"`
	EndDate        string   `json:"endDate" validate:"required"`
	InternshipType string   `json:"internshipType" validate:"required"`
	SupervisorName string   `json:"supervisorName" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Skills         []string `json:"skills" validate:"required,min=1"`
	CertificateURL string   `json:"certificateUrl"`
	ProjectDetails string   `json:"projectDetails"`
}

type ReviewRequest struct {
	Status model.SubmissionStatus `json:"status" validate:"required"`
}

type SubmissionService struct {
	SubmissionRepo *repository.SubmissionRepository
	Activities     *ActivityService
}

func NewSubmissionService(repo *repository.SubmissionRepository, activities *ActivityService) *SubmissionService {
	return &SubmissionService{SubmissionRepo: repo, Activities: activities}
}

func (s *SubmissionService) SubmitResearch(ctx context.Context, studentID string, req ResearchRequest) (*model.Submission, error) {
	trimStrings(&req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	sub := newSubmission(model.Research, studentID, req.StudentInfo)
	sub.ResearchTitle = req.ResearchTitle
	sub.ResearchDomain = req.ResearchDomain
	sub.PublicationType = req.PublicationType
	sub.PublisherName = req.PublisherName
	sub.DOILink = req.DOILink
	sub.Abstract = req.Abstract
	sub.DateOfPublication = req.DateOfPublication
	sub.MentorName = req.MentorName
	sub.Organization = req.Organization
	sub.FileURL = req.FileURL
	return s.save(ctx, sub)
}

func (s *SubmissionService) SubmitInternship(ctx context.Context, studentID string, req InternshipRequest) (*model.Submission, error) {
	trimStrings(&req)
	req.Skills = normalizeSkills(req.Skills)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	sub := newSubmission(model.Internship, studentID, req.StudentInfo)
	sub.CompanyName = req.CompanyName
	sub.Role = req.Role
	sub.StartDate = req.StartDate
	sub.EndDate = req.EndDate
	sub.Duration = InternshipDuration(req.StartDate, req.EndDate)
	sub.InternshipType = req.InternshipType
	sub.SupervisorName = req.SupervisorName
	sub.Description = req.Description
	sub.Skills = req.Skills
	sub.CertificateURL = req.CertificateURL
	sub.ProjectDetails = req.ProjectDetails
	return s.save(ctx, sub)
}

func newSubmission(typ model.SubmissionType, studentID string, info StudentInfo) model.Submission {
	return model.Submission{
		Type:           typ,
		StudentID:      studentID,
		StudentName:    info.StudentName,
		RegisterNumber: info.RegisterNumber,
		Department:     info.Department,
		Semester:       info.Semester,
		SubmittedDate:  today(),
		Status:         model.StatusPending,
	}
}

func (s *SubmissionService) save(ctx context.Context, sub model.Submission) (*model.Submission, error) {
	sub, err := s.SubmissionRepo.Append(ctx, sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// normalizeSkills trims entries and drops blanks and repeats, keeping the
// first occurrence.
func normalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, sk := range skills {
		sk = strings.TrimSpace(sk)
		if sk == "" || seen[sk] {
			continue
		}
		seen[sk] = true
		out = append(out, sk)
	}
	return out
}

// InternshipDuration renders the span between two YYYY-MM-DD dates as
// "M months D days", counting 30-day months. Unparseable dates give "".
func InternshipDuration(start, end string) string {
	from, err := time.Parse(util.DateFormat, strings.TrimSpace(start))
	if err != nil {
		return ""
	}
	to, err := time.Parse(util.DateFormat, strings.TrimSpace(end))
	if err != nil {
		return ""
	}
	days := int(math.Ceil(math.Abs(to.Sub(from).Hours()) / 24))
	return fmt.Sprintf("%d months %d days", days/30, days%30)
}

func (s *SubmissionService) ListByStudent(ctx context.Context, studentID string) ([]model.Submission, error) {
	return s.SubmissionRepo.FindByStudentID(ctx, studentID)
}

// List filters by type; an empty type lists everything.
func (s *SubmissionService) List(ctx context.Context, typ model.SubmissionType) ([]model.Submission, error) {
	switch typ {
	case "", model.Research, model.Internship:
	default:
		return nil, &util.ValidationError{Field: "type", Rule: "oneof"}
	}
	return s.SubmissionRepo.FindByType(ctx, typ)
}

// Review approves or rejects a pending submission. Repeating the decision
// already recorded is accepted and changes nothing.
func (s *SubmissionService) Review(ctx context.Context, id string, status model.SubmissionStatus) (*model.Submission, error) {
	sub, changed, err := s.SubmissionRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if changed {
		s.Activities.Record(ctx, model.ActivityReview,
			fmt.Sprintf("%s %s submission: %s", reviewVerbs[status], sub.Type, submissionTitle(sub)))
	}
	return &sub, nil
}

var reviewVerbs = map[model.SubmissionStatus]string{
	model.StatusApproved: "Approved",
	model.StatusRejected: "Rejected",
}

func submissionTitle(s model.Submission) string {
	if s.Type == model.Research {
		return s.ResearchTitle
	}
	return s.CompanyName + " (" + s.StudentName + ")"
}
