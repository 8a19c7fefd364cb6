package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

func TestNewResource(t *testing.T) {
	r := newResource("release")
	name, ok := r.Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, ServiceName, name.AsString())

	version, ok := r.Set().Value(semconv.ServiceVersionKey)
	require.True(t, ok)
	assert.Equal(t, ServiceVersion, version.AsString())

	env, _ := newResource("").Set().Value(semconv.DeploymentEnvironmentKey)
	assert.Equal(t, gin.DebugMode, env.AsString())
}

func TestGinMiddlewareSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.PATCH("/api/teacher/submissions/:id/status", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/api/teacher/submissions/sub_42/status", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/boom", nil))

	spans := sr.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "PATCH /api/teacher/submissions/:id/status", spans[0].Name())
	attrs := attribute.NewSet(spans[0].Attributes()...)
	route, _ := attrs.Value(semconv.HTTPRouteKey)
	assert.Equal(t, "/api/teacher/submissions/:id/status", route.AsString())
	status, _ := attrs.Value(semconv.HTTPStatusCodeKey)
	assert.Equal(t, int64(http.StatusOK), status.AsInt64())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
