package app

import (
	"academic_dashboard/internal/config"
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/service"
	"academic_dashboard/pkg/kvstore"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t        *testing.T
	app      *App
	upstream *httptest.Server
	status   atomic.Int32
	calls    atomic.Int32
}

// setup builds the full router over a memory store with a fake AI gateway
// that answers every completion with an empty JSON array.
func setup(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &harness{t: t}
	h.status.Store(http.StatusOK)
	h.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.calls.Add(1)
		if code := int(h.status.Load()); code != http.StatusOK {
			w.WriteHeader(code)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"[]"}}]}`)
	}))
	t.Cleanup(h.upstream.Close)

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0", Mode: "test"},
		Store:   config.StoreConfig{Driver: "memory"},
		JWT:     config.JWTConfig{Secret: "app-test-secret", ExpireTime: time.Hour},
		Storage: config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
		AI: config.AIConfig{
			BaseURL:        h.upstream.URL,
			APIKey:         "test-key",
			Model:          "test-model",
			TimeoutSeconds: 5,
		},
		CORS:          config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Notifications: config.NotificationsConfig{PollInterval: 20 * time.Millisecond},
		Insights:      config.InsightsConfig{WeakThreshold: 75},
	}
	h.app = build(cfg, kvstore.NewMemoryStore(), gin.New())
	return h
}

func (h *harness) request(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.app.Router.ServeHTTP(w, req)
	return w
}

func (h *harness) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(h.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	return h.request(req, token)
}

func (h *harness) login(role model.UserRole, userID string) string {
	h.t.Helper()
	w := h.do(http.MethodPost, "/api/session/login", "", gin.H{"role": role, "userId": userID})
	require.Equal(h.t, http.StatusOK, w.Code, w.Body.String())

	var resp service.LoginResponse
	decode(h.t, w, &resp)
	require.NotEmpty(h.t, resp.Token)
	return resp.Token
}

// decode unwraps the response envelope into v.
func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	var env struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func (h *harness) badges(token string) map[string]int {
	h.t.Helper()
	w := h.do(http.MethodGet, "/api/notifications", token, nil)
	require.Equal(h.t, http.StatusOK, w.Code)

	var list []model.Badge
	decode(h.t, w, &list)
	out := make(map[string]int, len(list))
	for _, b := range list {
		out[b.Source] = b.Count
	}
	return out
}

func TestHealth(t *testing.T) {
	h := setup(t)

	w := h.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store":"memory"`)
}

func TestSessionLifecycle(t *testing.T) {
	h := setup(t)

	token := h.login(model.Student, "stu_42")

	w := h.do(http.MethodGet, "/api/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var id model.Identity
	decode(t, w, &id)
	assert.Equal(t, model.Identity{Role: model.Student, UserID: "stu_42"}, id)

	w = h.do(http.MethodPost, "/api/session/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodGet, "/api/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(http.MethodPost, "/api/session/login", "", gin.H{"role": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoleGuards(t *testing.T) {
	h := setup(t)
	student := h.login(model.Student, "")
	teacher := h.login(model.Teacher, "")

	assignment := gin.H{"title": "Lab 1", "subject": "DBMS", "description": "ER diagram", "dueDate": "2025-03-20"}

	assert.Equal(t, http.StatusUnauthorized, h.do(http.MethodGet, "/api/assignments", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, h.do(http.MethodPost, "/api/teacher/assignments", student, assignment).Code)
	assert.Equal(t, http.StatusForbidden, h.do(http.MethodGet, "/api/notifications", teacher, nil).Code)
	assert.Equal(t, http.StatusCreated, h.do(http.MethodPost, "/api/teacher/assignments", teacher, assignment).Code)

	// both roles read the board
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/api/assignments", student, nil).Code)
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/api/assignments", teacher, nil).Code)
}

func TestNotificationBadges(t *testing.T) {
	h := setup(t)
	student := h.login(model.Student, "stu_1")
	other := h.login(model.Student, "stu_2")
	teacher := h.login(model.Teacher, "")

	assert.Equal(t, map[string]int{"assignments": 0, "events": 0}, h.badges(student))

	w := h.do(http.MethodPost, "/api/teacher/assignments", teacher, gin.H{
		"title": "Lab 1", "subject": "DBMS", "description": "ER diagram", "dueDate": "2025-03-20",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var posted model.Assignment
	decode(t, w, &posted)

	w = h.do(http.MethodPost, "/api/teacher/events", teacher, gin.H{
		"title": "Hackathon", "club": "Coding Club", "date": "2025-04-01", "time": "10:00", "location": "Main hall",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	assert.Equal(t, map[string]int{"assignments": 1, "events": 1}, h.badges(student))

	w = h.do(http.MethodPost, "/api/assignments/visit", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]int{"assignments": 0, "events": 1}, h.badges(student))

	// visits are per student
	assert.Equal(t, map[string]int{"assignments": 1, "events": 1}, h.badges(other))

	w = h.do(http.MethodGet, "/api/dashboard", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dash service.StudentDashboard
	decode(t, w, &dash)
	assert.Equal(t, []model.Badge{{Source: "events", Count: 1}}, dash.Notifications)

	w = h.do(http.MethodDelete, "/api/teacher/assignments/"+posted.ID, teacher, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = h.do(http.MethodDelete, "/api/teacher/assignments/"+posted.ID, teacher, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationStream(t *testing.T) {
	h := setup(t)
	student := h.login(model.Student, "stu_1")
	teacher := h.login(model.Teacher, "")

	w := h.do(http.MethodPost, "/api/teacher/assignments", teacher, gin.H{
		"title": "Lab 1", "subject": "DBMS", "description": "ER diagram", "dueDate": "2025-03-20",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	// EventSource cannot send headers, so the token rides in the query
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/stream?token="+student, nil).WithContext(ctx)
	w = h.request(req, "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "event:badges")
	assert.Contains(t, body, `{"type":"assignments","count":1}`)
	assert.GreaterOrEqual(t, strings.Count(body, "event:badges"), 2)
}

func TestSubmissionReview(t *testing.T) {
	h := setup(t)
	student := h.login(model.Student, "stu_1")
	teacher := h.login(model.Teacher, "")

	w := h.do(http.MethodPost, "/api/submissions/internship", student, gin.H{
		"studentName":    "Asha Rao",
		"registerNumber": "21CS001",
		"department":     "CSE",
		"semester":       "6",
		"companyName":    "Acme Labs",
		"role":           "Backend Intern",
		"startDate":      "2025-01-01",
		"endDate":        "2025-03-15",
		"internshipType": "Remote",
		"supervisorName": "R. Iyer",
		"description":    "Built APIs",
		"skills":         []string{"Go", " Go ", "SQL"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sub model.Submission
	decode(t, w, &sub)
	assert.Equal(t, model.StatusPending, sub.Status)
	assert.Equal(t, []string{"Go", "SQL"}, sub.Skills)

	w = h.do(http.MethodPost, "/api/submissions/internship", student, gin.H{"studentName": "Asha Rao"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodGet, "/api/teacher/submissions?type=internship", teacher, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []model.Submission
	decode(t, w, &list)
	require.Len(t, list, 1)

	path := "/api/teacher/submissions/" + sub.ID + "/status"
	w = h.do(http.MethodPatch, path, teacher, gin.H{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &sub)
	assert.Equal(t, model.StatusApproved, sub.Status)

	// repeating the decision is a no-op
	assert.Equal(t, http.StatusOK, h.do(http.MethodPatch, path, teacher, gin.H{"status": "approved"}).Code)
	assert.Equal(t, http.StatusConflict, h.do(http.MethodPatch, path, teacher, gin.H{"status": "rejected"}).Code)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPatch, path, teacher, gin.H{"status": "archived"}).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodPatch, "/api/teacher/submissions/missing/status", teacher, gin.H{"status": "approved"}).Code)

	w = h.do(http.MethodGet, "/api/submissions/my", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, model.StatusApproved, list[0].Status)

	w = h.do(http.MethodGet, "/api/teacher/activities", teacher, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Approved internship submission: Acme Labs (Asha Rao)")
}

func upload(t *testing.T, path, fileName, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAttachmentUpload(t *testing.T) {
	h := setup(t)
	student := h.login(model.Student, "stu_1")

	w := h.request(upload(t, "/api/attachments", "certificate.pdf", "%PDF-1.4"), student)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var att struct {
		FileName string `json:"fileName"`
		URL      string `json:"url"`
	}
	decode(t, w, &att)
	assert.Equal(t, "certificate.pdf", att.FileName)
	assert.NotEmpty(t, att.URL)

	for _, name := range []string{"page.html", "logo.svg", "run.sh", "noext"} {
		w = h.request(upload(t, "/api/attachments", name, "<script>alert(1)</script>"), student)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}

	// extension match ignores case
	w = h.request(upload(t, "/api/attachments", "SCAN.PNG", "png"), student)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAchievementMissingLocation(t *testing.T) {
	h := setup(t)
	student := h.login(model.Student, "stu_1")
	teacher := h.login(model.Teacher, "")

	w := h.do(http.MethodPost, "/api/achievements", student, gin.H{
		"type":    "inter-college",
		"date":    "2025-02-20",
		"content": "Debate finalist",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "location")

	w = h.do(http.MethodGet, "/api/teacher/achievements", teacher, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []model.Achievement
	decode(t, w, &list)
	assert.Empty(t, list)
}

func TestDatasetUploadAndVerify(t *testing.T) {
	h := setup(t)
	student := h.login(model.Student, "stu_1")
	teacher := h.login(model.Teacher, "")

	w := h.do(http.MethodPost, "/api/performance/verify", student, gin.H{"regNo": "21CS001", "semester": "3"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.request(upload(t, "/api/teacher/dataset", "marks.txt", "hello"), teacher)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	csv := "regNo,semester,subject,marks,total\n" +
		"21CS001,3,Maths,60,100\n" +
		"21CS001,3,Physics,90,100\n" +
		"21CS002,3,Maths,80,100\n"
	w = h.request(upload(t, "/api/teacher/dataset", "marks.csv", csv), teacher)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var result service.ImportResult
	decode(t, w, &result)
	assert.Equal(t, 2, result.Students)
	assert.Equal(t, 3, result.Rows)

	w = h.do(http.MethodGet, "/api/teacher/dashboard", teacher, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dash service.TeacherDashboard
	decode(t, w, &dash)
	assert.Equal(t, 2, dash.Stats.TotalStudents)
	assert.Equal(t, 1, dash.Stats.ActiveDatasets)

	w = h.do(http.MethodPost, "/api/performance/verify", student, gin.H{"regNo": "21CS001", "semester": "4"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(http.MethodPost, "/api/performance/verify", student, gin.H{"regNo": "21CS001", "semester": "3"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var report service.PerformanceReport
	decode(t, w, &report)
	assert.Equal(t, "21CS001", report.Student.RegNo)
	assert.InDelta(t, 75.0, report.Student.OverallPercentage, 0.001)
	require.Len(t, report.Subjects, 2)
	assert.True(t, report.Subjects[0].Weak)
	assert.False(t, report.Subjects[1].Weak)
	assert.Empty(t, report.Notices)
	// one resources call for Maths, then the study plan and the summary
	assert.Equal(t, int32(3), h.calls.Load())
}

func TestInsightProxy(t *testing.T) {
	h := setup(t)
	body := `{"type":"summary","subjects":{"strong":[{"name":"Physics","marks":90,"total":100}],"weak":[],"overall":90}}`

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/insights", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", "https://anywhere.example")
		return h.request(req, "")
	}

	tests := []struct {
		name     string
		upstream int
		want     int
		key      string
	}{
		{"ok", http.StatusOK, http.StatusOK, `"content":"[]"`},
		{"rate limited", http.StatusTooManyRequests, http.StatusTooManyRequests, `"error"`},
		{"quota", http.StatusPaymentRequired, http.StatusPaymentRequired, `"error"`},
		{"other", http.StatusServiceUnavailable, http.StatusInternalServerError, `"error":"AI Gateway error: 503"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.status.Store(int32(tt.upstream))
			w := post()
			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), tt.key)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/insights", strings.NewReader("{"))
		w := h.request(req, "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/insights", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		w := h.request(req, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "apikey")
	})

	t.Run("other routes keep the allow list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		w := h.request(req, "")
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w = h.request(req, "")
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestReloadConfig(t *testing.T) {
	h := setup(t)

	next := *h.app.Config
	next.Notifications.PollInterval = time.Second
	next.AI.APIKey = ""
	h.app.ReloadConfig(&next)

	assert.Equal(t, time.Second, h.app.services.notification.PollInterval())

	// the proxy now has no key
	req := httptest.NewRequest(http.MethodPost, "/api/insights", strings.NewReader(`{"type":"summary","subjects":{}}`))
	w := h.request(req, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, int32(0), h.calls.Load())
}
