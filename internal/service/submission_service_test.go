package service

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var student = StudentInfo{
	StudentName:    "Asha Rao",
	RegisterNumber: "2024CS001",
	Department:     "CSE",
	Semester:       "5",
}

func internshipRequest() InternshipRequest {
	return InternshipRequest{
		StudentInfo:    student,
		CompanyName:    "Acme Labs",
		Role:           "Backend Intern",
		StartDate:      "2025-01-01",
		EndDate:        "2025-03-02",
		InternshipType: "Summer",
		SupervisorName: "R. Iyer",
		Description:    "Built internal tooling",
		Skills:         []string{" Go ", "SQL", "Go", ""},
	}
}

func TestInternshipDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"2025-01-01", "2025-03-02", "2 months 0 days"},
		{"2025-01-01", "2025-01-16", "0 months 15 days"},
		{"2025-03-02", "2025-01-01", "2 months 0 days"},
		{"2025-01-01", "2025-01-01", "0 months 0 days"},
		{"2025-01-01", "not a date", ""},
	}
	for _, tt := range tests {
		t.Run(tt.start+"_"+tt.end, func(t *testing.T) {
			assert.Equal(t, tt.want, InternshipDuration(tt.start, tt.end))
		})
	}
}

func TestSubmitInternship(t *testing.T) {
	env := setup(t)
	sub, err := env.submissions.SubmitInternship(context.Background(), "student_001", internshipRequest())
	require.NoError(t, err)

	assert.Equal(t, model.Internship, sub.Type)
	assert.Equal(t, model.StatusPending, sub.Status)
	assert.Equal(t, "2 months 0 days", sub.Duration)
	assert.Equal(t, []string{"Go", "SQL"}, sub.Skills)
	assert.Equal(t, "2025-03-10", sub.SubmittedDate)
	assert.Equal(t, "student_001", sub.StudentID)
}

func TestSubmitInternshipRequiresSkills(t *testing.T) {
	env := setup(t)
	req := internshipRequest()
	req.Skills = []string{"  "}

	_, err := env.submissions.SubmitInternship(context.Background(), "student_001", req)
	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "skills", verr.Field)

	all, err := env.submissions.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, all, "nothing is written on validation failure")
}

func TestSubmitResearchNamesMissingField(t *testing.T) {
	env := setup(t)
	req := ResearchRequest{
		StudentInfo:       student,
		ResearchTitle:     "Graph Sparsifiers",
		ResearchDomain:    "Algorithms",
		PublicationType:   "Journal",
		PublisherName:     "ACM",
		Abstract:          "...",
		DateOfPublication: "2025-02-01",
		MentorName:        "Dr. Sen",
		Organization:      "IISc",
	}
	_, err := env.submissions.SubmitResearch(context.Background(), "student_001", req)
	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "doiLink", verr.Field)

	req.DOILink = "https://doi.org/10.1/x"
	sub, err := env.submissions.SubmitResearch(context.Background(), "student_001", req)
	require.NoError(t, err)
	assert.Equal(t, model.Research, sub.Type)
	assert.Empty(t, sub.CompanyName)
}

func TestReviewFirstTransitionOnly(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	sub, err := env.submissions.SubmitInternship(ctx, "student_001", internshipRequest())
	require.NoError(t, err)

	reviewed, err := env.submissions.Review(ctx, sub.ID, model.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, reviewed.Status)

	_, err = env.submissions.Review(ctx, sub.ID, model.StatusApproved)
	assert.NoError(t, err, "repeating the decision is a no-op")

	_, err = env.submissions.Review(ctx, sub.ID, model.StatusRejected)
	assert.ErrorIs(t, err, util.ErrStatusFinal)

	_, err = env.submissions.Review(ctx, "missing", model.StatusApproved)
	assert.ErrorIs(t, err, util.ErrSubmissionNotFound)

	acts, err := env.activities.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, acts, 1, "only the real transition is logged")
	assert.Equal(t, "Approved internship submission: Acme Labs (Asha Rao)", acts[0].Message)
}

func TestListSubmissionsByType(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	_, err := env.submissions.SubmitInternship(ctx, "student_001", internshipRequest())
	require.NoError(t, err)

	research, err := env.submissions.List(ctx, model.Research)
	require.NoError(t, err)
	assert.Empty(t, research)

	internships, err := env.submissions.List(ctx, model.Internship)
	require.NoError(t, err)
	assert.Len(t, internships, 1)

	_, err = env.submissions.List(ctx, "thesis")
	assert.True(t, util.IsValidation(err))
}

func TestAchievementUniversityRequiredForExternal(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	req := AchievementRequest{
		Type:     model.External,
		Date:     "2025-02-14",
		Content:  "First place, national hackathon",
		Location: "Bengaluru",
	}
	_, err := env.achievements.Submit(ctx, "student_001", req)
	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "universityName", verr.Field)

	req.UniversityName = "IIT Madras"
	a, err := env.achievements.Submit(ctx, "student_001", req)
	require.NoError(t, err)
	assert.Equal(t, "IIT Madras", a.UniversityName)

	inter := AchievementRequest{
		Type:           model.InterCollege,
		Date:           "2025-02-20",
		Content:        "Debate finalist",
		Location:       "Main hall",
		UniversityName: "ignored",
	}
	b, err := env.achievements.Submit(ctx, "student_002", inter)
	require.NoError(t, err)
	assert.Empty(t, b.UniversityName)

	mine, err := env.achievements.ListByStudent(ctx, "student_001")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestFeedbackRequiresMessage(t *testing.T) {
	env := setup(t)
	_, err := env.feedback.Submit(context.Background(), "student_001", FeedbackRequest{Subject: "Labs"})
	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "message", verr.Field)

	f, err := env.feedback.Submit(context.Background(), "student_001", FeedbackRequest{Subject: "Labs", Message: "More lab hours please"})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", f.SubmittedDate)
}

func TestClubEventDescriptionOptional(t *testing.T) {
	env := setup(t)
	_, err := env.events.Post(context.Background(), ClubEventRequest{
		Title: "Quiz Night", Club: "Literary Club", Date: "2025-03-12", Time: "18:00",
	})
	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "location", verr.Field)

	e, err := env.events.Post(context.Background(), ClubEventRequest{
		Title: "Quiz Night", Club: "Literary Club", Date: "2025-03-12", Time: "18:00", Location: "Auditorium",
	})
	require.NoError(t, err)
	assert.Empty(t, e.Description)
}

func TestAchievementRequiresLocation(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	before, err := env.achievements.ListAll(ctx)
	require.NoError(t, err)

	_, err = env.achievements.Submit(ctx, "student_001", AchievementRequest{
		Type:    model.InterCollege,
		Date:    "2025-02-20",
		Content: "Debate finalist",
	})
	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "location", verr.Field)

	after, err := env.achievements.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestNormalizeSkillsKeepsCase(t *testing.T) {
	got := normalizeSkills([]string{"Go", " Go ", "go", "", "SQL"})
	assert.Equal(t, []string{"Go", "go", "SQL"}, got)
}
