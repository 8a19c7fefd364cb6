package middleware

import (
	"academic_dashboard/internal/config"
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/kvstore"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*gin.Engine, *service.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.JWTConfig{Secret: "middleware-secret", ExpireTime: time.Hour}
	sessions := service.NewSessionService(kvstore.NewMemoryStore(), cfg)

	r := gin.New()
	auth := r.Group("/", AuthMiddleware(cfg, sessions))
	auth.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, util.MustGetIdentity(c))
	})
	auth.GET("/teacher", RoleMiddleware(model.Teacher), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, sessions
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, sessions *service.SessionService, role model.UserRole) (string, *util.Claims) {
	t.Helper()
	resp, err := sessions.Login(context.Background(), service.LoginRequest{Role: role})
	require.NoError(t, err)
	claims, err := util.ParseJWT(resp.Token, "middleware-secret")
	require.NoError(t, err)
	return resp.Token, claims
}

func TestAuthMiddleware(t *testing.T) {
	r, sessions := setup(t)
	studentToken, _ := login(t, sessions, model.Student)
	teacherToken, _ := login(t, sessions, model.Teacher)

	tests := []struct {
		name  string
		path  string
		token string
		want  int
	}{
		{"no token", "/me", "", http.StatusUnauthorized},
		{"garbage token", "/me", "not-a-jwt", http.StatusUnauthorized},
		{"student identity", "/me", studentToken, http.StatusOK},
		{"student on teacher route", "/teacher", studentToken, http.StatusForbidden},
		{"teacher on teacher route", "/teacher", teacherToken, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, do(r, tt.path, tt.token).Code)
		})
	}
}

func TestAuthMiddlewareQueryToken(t *testing.T) {
	r, sessions := setup(t)
	token, _ := login(t, sessions, model.Student)

	w := do(r, "/me?token="+token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"student_001"`)
}

func TestAuthMiddlewareRejectsLoggedOutSession(t *testing.T) {
	r, sessions := setup(t)
	token, claims := login(t, sessions, model.Teacher)

	require.NoError(t, sessions.Logout(context.Background(), claims.SessionID))
	assert.Equal(t, http.StatusUnauthorized, do(r, "/teacher", token).Code)
}

func TestAuthMiddlewareRejectsForeignSecret(t *testing.T) {
	r, _ := setup(t)
	token, err := util.GenerateJWT("sid", model.Identity{Role: model.Teacher, UserID: "t"}, "other-secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/teacher", token).Code)
}
