package service

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/repository"
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/logger"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

const DefaultWeakThreshold = 75

type VerifyRequest struct {
	RegNo    string `json:"regNo" validate:"required"`
	Semester string `json:"semester" validate:"required"`
}

// SubjectResult is one subject of a report with its derived percentage.
type SubjectResult struct {
	Subject    string  `json:"subject"`
	Marks      float64 `json:"marks"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
	Weak       bool    `json:"weak"`
}

// PerformanceReport bundles a verified record with whatever insights could
// be generated. Failed parts are reported in Notices and left empty.
type PerformanceReport struct {
	Student   model.StudentRecord              `json:"student"`
	Subjects  []SubjectResult                  `json:"subjects"`
	Resources map[string][]model.StudyResource `json:"resources"`
	StudyPlan []model.StudyPlanItem            `json:"studyPlan"`
	Summary   string                           `json:"summary"`
	Notices   []string                         `json:"notices"`
}

type PerformanceService struct {
	RecordRepo    *repository.StudentRecordRepository
	Markers       *repository.MarkerRepository
	Insights      InsightGenerator
	WeakThreshold float64
}

func NewPerformanceService(records *repository.StudentRecordRepository, markers *repository.MarkerRepository, insights InsightGenerator, weakThreshold float64) *PerformanceService {
	if weakThreshold <= 0 {
		weakThreshold = DefaultWeakThreshold
	}
	return &PerformanceService{
		RecordRepo:    records,
		Markers:       markers,
		Insights:      insights,
		WeakThreshold: weakThreshold,
	}
}

// Verify finds the record matching both registration number and semester.
func (s *PerformanceService) Verify(ctx context.Context, req VerifyRequest) (*model.StudentRecord, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	uploaded, err := s.Markers.Has(ctx, repository.KeyStudentData)
	if err != nil {
		return nil, err
	}
	if !uploaded {
		return nil, util.ErrNoDataset
	}
	rec, err := s.RecordRepo.FindByRegNo(ctx, req.RegNo, req.Semester)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

type resourceResult struct {
	subject   string
	resources []model.StudyResource
	notice    string
}

// Generate builds the report for rec. Resources are requested for every
// weak subject at once; the study plan and summary follow. No single
// failure aborts the report.
func (s *PerformanceService) Generate(ctx context.Context, rec model.StudentRecord) *PerformanceReport {
	report := &PerformanceReport{
		Student:   rec,
		Subjects:  make([]SubjectResult, 0, len(rec.SubjectData)),
		Resources: map[string][]model.StudyResource{},
		StudyPlan: []model.StudyPlanItem{},
		Notices:   []string{},
	}

	var weak, strong []model.ScoreInput
	for _, sub := range rec.SubjectData {
		pct := sub.Percentage()
		isWeak := pct < s.WeakThreshold
		report.Subjects = append(report.Subjects, SubjectResult{
			Subject:    sub.Subject,
			Marks:      sub.Marks,
			Total:      sub.Total,
			Percentage: round2(pct),
			Weak:       isWeak,
		})
		in := model.ScoreInput{Name: sub.Subject, Marks: sub.Marks, Total: sub.Total}
		if isWeak {
			weak = append(weak, in)
		} else {
			strong = append(strong, in)
		}
	}

	if len(weak) > 0 {
		results := iter.Map(weak, func(sub *model.ScoreInput) resourceResult {
			return s.resourcesFor(ctx, *sub)
		})
		for _, r := range results {
			if r.notice != "" {
				report.Notices = append(report.Notices, r.notice)
			}
			if r.resources != nil {
				report.Resources[r.subject] = r.resources
			}
		}

		content, err := s.Insights.Generate(ctx, model.InsightStudyPlan, weak)
		if err != nil {
			report.Notices = append(report.Notices, "Could not generate study plan: "+err.Error())
		} else if err := decodeJSONArray(content, &report.StudyPlan); err != nil {
			logger.Log.Debug("unreadable study plan", zap.Error(err))
			report.StudyPlan = []model.StudyPlanItem{}
			report.Notices = append(report.Notices, "Study plan response was not valid JSON")
		}
	}

	overall := rec.OverallPercentage
	if overall == 0 {
		overall = rec.ComputeOverall()
	}
	summary, err := s.Insights.Generate(ctx, model.InsightSummary, model.SummaryInput{
		Strong:  nonNil(strong),
		Weak:    nonNil(weak),
		Overall: round2(overall),
	})
	if err != nil {
		report.Notices = append(report.Notices, "Could not generate summary: "+err.Error())
	} else {
		report.Summary = strings.TrimSpace(summary)
	}

	return report
}

func (s *PerformanceService) resourcesFor(ctx context.Context, sub model.ScoreInput) resourceResult {
	res := resourceResult{subject: sub.Name}
	content, err := s.Insights.Generate(ctx, model.InsightResources, []model.ScoreInput{sub})
	if err != nil {
		res.notice = fmt.Sprintf("Could not generate resources for %s: %s", sub.Name, err.Error())
		return res
	}
	var list []model.StudyResource
	if err := decodeJSONArray(content, &list); err != nil {
		logger.Log.Debug("unreadable resources",
			zap.String("subject", sub.Name),
			zap.Error(err),
		)
		res.resources = []model.StudyResource{}
		res.notice = fmt.Sprintf("Resources for %s were not valid JSON", sub.Name)
		return res
	}
	res.resources = list
	return res
}

// decodeJSONArray accepts a bare JSON array, optionally wrapped in a
// markdown code fence.
func decodeJSONArray(content string, v interface{}) error {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimPrefix(content, "json")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return json.Unmarshal([]byte(strings.TrimSpace(content)), v)
}

func nonNil(in []model.ScoreInput) []model.ScoreInput {
	if in == nil {
		return []model.ScoreInput{}
	}
	return in
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
