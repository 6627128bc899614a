// Package monitoring provides Prometheus metrics collection
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	logger *zap.Logger

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	recipesGeneratedTotal prometheus.Counter
	dishesCompletedTotal  prometheus.Counter
	usersRegisteredTotal  prometheus.Counter
	aiRequestsTotal       *prometheus.CounterVec
	aiRequestDuration     *prometheus.HistogramVec
	cacheOperations       *prometheus.CounterVec
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger *zap.Logger) *MetricsCollector {
	return &MetricsCollector{
		logger: logger,

		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),

		recipesGeneratedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recipes_generated_total",
				Help: "Total number of recipe generations served",
			},
		),
		dishesCompletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dishes_completed_total",
				Help: "Total number of dishes marked as cooked",
			},
		),
		usersRegisteredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "users_registered_total",
				Help: "Total number of registered users",
			},
		),
		aiRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_requests_total",
				Help: "Total number of AI model calls",
			},
			[]string{"operation", "status"},
		),
		aiRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ai_request_duration_seconds",
				Help:    "AI model call duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30},
			},
			[]string{"operation"},
		),
		cacheOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_operations_total",
				Help: "Total number of cache operations",
			},
			[]string{"operation", "result"},
		),
	}
}

// HTTPMiddleware records request counts and latency per route
func (m *MetricsCollector) HTTPMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			status := strconv.Itoa(wrapped.status)
			m.httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
			m.httpRequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
		})
	}
}

// RecordRecipeGeneration counts a served recipe generation
func (m *MetricsCollector) RecordRecipeGeneration() {
	m.recipesGeneratedTotal.Inc()
}

// RecordDishCompleted counts a cooked dish
func (m *MetricsCollector) RecordDishCompleted() {
	m.dishesCompletedTotal.Inc()
}

// RecordUserRegistration counts a new account
func (m *MetricsCollector) RecordUserRegistration() {
	m.usersRegisteredTotal.Inc()
}

// RecordAIRequest records an AI model call with its outcome
func (m *MetricsCollector) RecordAIRequest(operation, status string, duration time.Duration) {
	m.aiRequestsTotal.WithLabelValues(operation, status).Inc()
	m.aiRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCacheOperation records a cache hit, miss or write
func (m *MetricsCollector) RecordCacheOperation(operation, result string) {
	m.cacheOperations.WithLabelValues(operation, result).Inc()
}

// Handler returns the Prometheus scrape endpoint
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
