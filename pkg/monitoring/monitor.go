package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// InsightRequests counts upstream AI calls by insight type and outcome
	// (ok, rate_limited, quota, error).
	InsightRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_requests_total",
			Help: "Total number of AI insight requests",
		},
		[]string{"type", "outcome"},
	)

	InsightDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "insight_request_duration_seconds",
			Help:    "Duration of upstream AI insight requests",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30},
		},
		[]string{"type"},
	)

	DatasetRows = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_student_records",
			Help: "Number of student records in the last imported dataset",
		},
	)

	NotificationStreams = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "notification_streams_active",
			Help: "Open notification event streams",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(InsightRequests)
	prometheus.MustRegister(InsightDuration)
	prometheus.MustRegister(DatasetRows)
	prometheus.MustRegister(NotificationStreams)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
