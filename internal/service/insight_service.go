package service

import (
	"academic_dashboard/internal/config"
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/logger"
	"academic_dashboard/pkg/monitoring"
	"academic_dashboard/pkg/tracing"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// InsightGenerator turns a subject payload into model-written text.
type InsightGenerator interface {
	Generate(ctx context.Context, typ model.InsightType, subjects interface{}) (string, error)
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// InsightRequest is the body of the insight proxy. The shape of Subjects
// depends on Type.
type InsightRequest struct {
	Subjects json.RawMessage   `json:"subjects"`
	Type     model.InsightType `json:"type"`
}

// InsightService forwards prompt pairs to an OpenAI-compatible
// chat/completions gateway.
type InsightService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewInsightService(cfg config.AIConfig) *InsightService {
	return &InsightService{config: cfg, client: &http.Client{}}
}

// UpdateConfig swaps gateway settings on config reload.
func (s *InsightService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

func (s *InsightService) currentConfig() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Generate marshals subjects and calls GenerateRaw.
func (s *InsightService) Generate(ctx context.Context, typ model.InsightType, subjects interface{}) (string, error) {
	raw, err := json.Marshal(subjects)
	if err != nil {
		return "", err
	}
	return s.GenerateRaw(ctx, typ, raw)
}

// GenerateRaw builds the prompts for typ and returns the first completion.
func (s *InsightService) GenerateRaw(ctx context.Context, typ model.InsightType, subjects json.RawMessage) (string, error) {
	system, user, err := BuildPrompt(typ, subjects)
	if err != nil {
		return "", err
	}

	ctx, span := tracing.Tracer.Start(ctx, "insight.generate")
	defer span.End()
	span.SetAttributes(attribute.String("insight.type", string(typ)))

	start := time.Now()
	content, err := s.complete(ctx, system, user)
	monitoring.InsightDuration.WithLabelValues(string(typ)).Observe(time.Since(start).Seconds())
	monitoring.InsightRequests.WithLabelValues(string(typ), outcome(err)).Inc()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Log.Error("insight generation failed",
			zap.String("type", string(typ)),
			zap.Error(err),
		)
		return "", err
	}
	return content, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case err == util.ErrRateLimited:
		return "rate_limited"
	case err == util.ErrQuotaExceeded:
		return "quota"
	}
	return "error"
}

func (s *InsightService) complete(ctx context.Context, system, user string) (string, error) {
	cfg := s.currentConfig()
	if cfg.APIKey == "" {
		return "", util.ErrAIKeyMissing
	}
	if timeout := cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	reqBody := ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(cfg.BaseURL, "/")+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return "", util.ErrRateLimited
	case http.StatusPaymentRequired:
		return "", util.ErrQuotaExceeded
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logger.Log.Warn("AI gateway rejected request",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return "", fmt.Errorf("AI Gateway error: %d", resp.StatusCode)
	}

	var result ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode AI response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("AI API returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

// BuildPrompt returns the system and user prompt for an insight request.
func BuildPrompt(typ model.InsightType, subjects json.RawMessage) (string, string, error) {
	switch typ {
	case model.InsightResources:
		var list []model.ScoreInput
		if err := json.Unmarshal(subjects, &list); err != nil || len(list) == 0 {
			return "", "", &util.ValidationError{Field: "subjects", Rule: "required"}
		}
		s := list[0]
		return "You are an educational resource curator. Generate high-quality study resources for students.",
			fmt.Sprintf("Generate 2-3 study resources (YouTube tutorials, documentation, or articles) for the subject: %s. "+
				"The student scored %s/%s. "+
				`Return ONLY a JSON array with this structure: [{"title": "Resource Title", "type": "YouTube/Documentation/Article", "url": "https://example.com", "description": "Brief description"}]`,
				s.Name, num(s.Marks), num(s.Total)),
			nil

	case model.InsightStudyPlan:
		var list []model.ScoreInput
		if err := json.Unmarshal(subjects, &list); err != nil || len(list) == 0 {
			return "", "", &util.ValidationError{Field: "subjects", Rule: "required"}
		}
		return "You are a study planner. Create personalized weekly study plans for students.",
			fmt.Sprintf("Create a 5-day study plan for weak subjects: %s. "+
				`Return ONLY a JSON array with this structure: [{"day": "Monday", "subject": "SubjectName", "task": "Specific task", "resources": "Suggested resource type"}]`,
				scoreList(list)),
			nil

	case model.InsightSummary:
		var in model.SummaryInput
		if err := json.Unmarshal(subjects, &in); err != nil {
			return "", "", &util.ValidationError{Field: "subjects", Rule: "required"}
		}
		return "You are an academic performance analyst. Provide concise, actionable insights.",
			fmt.Sprintf("Analyze this student's performance:\n"+
				"Strong subjects: %s\n"+
				"Weak subjects: %s\n"+
				"Overall percentage: %s%%\n\n"+
				"Write a concise 3-4 sentence summary highlighting strengths, areas to improve, and recommendations for better future performance.",
				scoreList(in.Strong), scoreList(in.Weak), num(in.Overall)),
			nil
	}
	return "", "", util.ErrUnknownInsightType
}

func scoreList(list []model.ScoreInput) string {
	parts := make([]string, len(list))
	for i, s := range list {
		parts[i] = fmt.Sprintf("%s (%s/%s)", s.Name, num(s.Marks), num(s.Total))
	}
	return strings.Join(parts, ", ")
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
