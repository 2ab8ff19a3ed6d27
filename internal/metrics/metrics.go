// Package metrics defines the Prometheus metrics exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "interview"

// Metrics holds all Prometheus metrics for the interview server.
// Pass to components that need to record metrics.
type Metrics struct {
	InterviewsStarted   prometheus.Counter
	InterviewsCompleted prometheus.Counter
	AnswersGraded       *prometheus.CounterVec
	GradingFallbacks    *prometheus.CounterVec
	ActiveSessions      prometheus.GaugeFunc // nil until WatchSessions
	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec

	reg prometheus.Registerer
}

// New creates and registers all metrics with the given registry.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		reg: reg,
		InterviewsStarted: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "started_total",
				Help:      "Total number of interviews started",
			},
		),
		InterviewsCompleted: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "completed_total",
				Help:      "Total number of interviews answered to the last question",
			},
		),
		AnswersGraded: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "answers_graded_total",
				Help:      "Total graded answers by verdict",
			},
			[]string{"verdict"},
		),
		GradingFallbacks: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "grading_fallbacks_total",
				Help:      "Remote grading or summary calls replaced by the fallback",
			},
			[]string{"operation", "reason"}, // operation=grade/summarize
		),
		RequestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		RequestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
}

// WatchSessions registers the active-sessions gauge, read from count at
// scrape time. Call it once per registry.
func (m *Metrics) WatchSessions(count func() int) {
	m.ActiveSessions = promauto.With(m.reg).NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions held in memory; abandoned interviews are never evicted",
		},
		func() float64 { return float64(count()) },
	)
}

// ObserveFallback implements grader.FallbackObserver.
func (m *Metrics) ObserveFallback(operation, reason string) {
	m.GradingFallbacks.WithLabelValues(operation, reason).Inc()
}
