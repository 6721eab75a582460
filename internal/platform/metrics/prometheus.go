package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsManager holds the service's Prometheus metrics. A nil manager is valid
// and records nothing.
type MetricsManager struct {
	Registry             *prometheus.Registry
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestLatency   *prometheus.HistogramVec
	APIErrorsTotal       *prometheus.CounterVec
	VideosPublishedTotal prometheus.Counter
	VideosDeletedTotal   prometheus.Counter
	CleanupFailuresTotal *prometheus.CounterVec
	RelationTogglesTotal *prometheus.CounterVec
}

// NewMetricsManager creates and registers the metrics on a private registry.
func NewMetricsManager(serviceName string) *MetricsManager {
	registry := prometheus.NewRegistry()
	// Metric names may not contain dashes.
	ns := strings.ReplaceAll(serviceName, "-", "_")

	m := &MetricsManager{
		Registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_latency_seconds",
			Help:      "Latency of HTTP requests by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		APIErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "api_errors_total",
			Help:      "Total number of API errors by route and error type.",
		}, []string{"route", "error_type"}),
		VideosPublishedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "videos_published_total",
			Help:      "Total number of videos published.",
		}),
		VideosDeletedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "videos_deleted_total",
			Help:      "Total number of videos deleted.",
		}),
		CleanupFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "cleanup_failures_total",
			Help:      "Best-effort cleanup steps that failed after a delete.",
		}, []string{"step"}),
		RelationTogglesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "relation_toggles_total",
			Help:      "Like and subscription toggles by kind and resulting action.",
		}, []string{"kind", "action"}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestLatency,
		m.APIErrorsTotal,
		m.VideosPublishedTotal,
		m.VideosDeletedTotal,
		m.CleanupFailuresTotal,
		m.RelationTogglesTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *MetricsManager) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *MetricsManager) APIError(route, errorType string) {
	if m == nil {
		return
	}
	m.APIErrorsTotal.WithLabelValues(route, errorType).Inc()
}

func (m *MetricsManager) VideoPublished() {
	if m == nil {
		return
	}
	m.VideosPublishedTotal.Inc()
}

// VideoDeleted counts a delete and each cleanup step that failed with it.
func (m *MetricsManager) VideoDeleted(failedSteps []string) {
	if m == nil {
		return
	}
	m.VideosDeletedTotal.Inc()
	for _, step := range failedSteps {
		m.CleanupFailuresTotal.WithLabelValues(step).Inc()
	}
}

func (m *MetricsManager) RelationToggled(kind, action string) {
	if m == nil {
		return
	}
	m.RelationTogglesTotal.WithLabelValues(kind, action).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *MetricsManager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// StartMetricsServer serves /metrics on its own port. The returned server is nil
// when no port is configured.
func StartMetricsServer(port string, appLogger *logger.Logger, m *MetricsManager) *http.Server {
	if port == "" {
		appLogger.Info("Prometheus metrics server port not configured, server will not start.")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("Prometheus metrics server starting", zap.String("port", port), zap.String("path", "/metrics"))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Prometheus metrics server failed", zap.Error(err))
		}
	}()
	return server
}
