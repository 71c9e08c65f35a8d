package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/praxisgrc/praxis/pkg/constants"
)

// Metrics manages the Prometheus metrics of the analytics service.
type Metrics struct {
	AnalysisRequests *prometheus.CounterVec
	AnalysisLatency  *prometheus.HistogramVec
	Classifications  *prometheus.CounterVec
	MatrixDefaults   prometheus.Counter
	HTTPRequests     *prometheus.CounterVec
	HTTPLatency      *prometheus.HistogramVec
}

// NewMetrics creates and registers the Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		AnalysisRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "analysis_requests_total",
				Help:      "Total number of analysis requests by type and result.",
			},
			[]string{"analysis_type", "result"},
		),
		AnalysisLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "analysis_latency_seconds",
				Help:      "Latency of analysis requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"analysis_type"},
		),
		Classifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "risk_classifications_total",
				Help:      "Total number of risk classifications by matrix type.",
			},
			[]string{"matrix_type"},
		),
		MatrixDefaults: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "risk_matrix_defaults_total",
				Help:      "Classifications served with the built-in default matrix.",
			},
		),
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency of HTTP requests by method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// ObserveAnalysis records one analysis request outcome.
func (m *Metrics) ObserveAnalysis(analysisType, result string, duration time.Duration) {
	m.AnalysisRequests.WithLabelValues(analysisType, result).Inc()
	m.AnalysisLatency.WithLabelValues(analysisType).Observe(duration.Seconds())
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, status).Inc()
	m.HTTPLatency.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordClassification records one risk classification.
func (m *Metrics) RecordClassification(matrixType string, usedDefaults bool) {
	m.Classifications.WithLabelValues(matrixType).Inc()
	if usedDefaults {
		m.MatrixDefaults.Inc()
	}
}
