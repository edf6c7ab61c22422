package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics groups request level collectors.
type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// ScoringMetrics groups collectors for the prediction and login flows.
type ScoringMetrics struct {
	PredictionsTotal     *prometheus.CounterVec
	ArtifactLoadFailures prometheus.Counter
	LoginAttemptsTotal   *prometheus.CounterVec
	ReportsTotal         *prometheus.CounterVec
}

var (
	HTTP = HTTPMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditscore_http_requests_total",
				Help: "Total number of HTTP requests received.",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "creditscore_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}

	Scoring = ScoringMetrics{
		PredictionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditscore_predictions_total",
				Help: "Total number of credit score predictions by label.",
			},
			[]string{"label"},
		),
		ArtifactLoadFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "creditscore_artifact_load_failures_total",
				Help: "Total number of failed model artifact loads.",
			},
		),
		LoginAttemptsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditscore_login_attempts_total",
				Help: "Total number of login attempts by result.",
			},
			[]string{"result"},
		),
		ReportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditscore_reports_total",
				Help: "Total number of credit report lookups by result.",
			},
			[]string{"result"},
		),
	}
)

// Login and report outcomes used as label values.
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultNotFound = "not_found"
)

// Handler exposes the default registry in Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
