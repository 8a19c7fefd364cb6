package model

type InsightType string

const (
	InsightResources InsightType = "resources"
	InsightStudyPlan InsightType = "studyPlan"
	InsightSummary   InsightType = "summary"
)

// ScoreInput is the subject shape sent to the insight proxy.
type ScoreInput struct {
	Name  string  `json:"name"`
	Marks float64 `json:"marks"`
	Total float64 `json:"total"`
}

type SummaryInput struct {
	Strong  []ScoreInput `json:"strong"`
	Weak    []ScoreInput `json:"weak"`
	Overall float64      `json:"overall"`
}

type StudyResource struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type StudyPlanItem struct {
	Day       string `json:"day"`
	Subject   string `json:"subject"`
	Task      string `json:"task"`
	Resources string `json:"resources"`
}

// Badge counts unseen items of one notification source.
type Badge struct {
	Source string `json:"type"`
	Count  int    `json:"count"`
}
