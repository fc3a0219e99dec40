package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK          = "ok"
	outcomeClientError = "client_error"
	outcomeServerError = "server_error"
	outcomeTransport   = "transport_error"
)

// Metrics counts every HTTP attempt the client makes, retries included.
type Metrics struct {
	attempts *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics registers the client collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		attempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "api_watchdog",
			Subsystem: "client",
			Name:      "attempts_total",
			Help:      "HTTP attempts against the watchdog backend by endpoint and outcome.",
		}, []string{"method", "endpoint", "outcome"}),
		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "api_watchdog",
			Subsystem: "client",
			Name:      "attempt_duration_seconds",
			Help:      "Latency of single HTTP attempts.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
	}
}

func (m *Metrics) observe(method, endpoint, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(method, endpoint, outcome).Inc()
	m.latency.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

func outcomeFor(code int) string {
	switch {
	case code >= 500:
		return outcomeServerError
	case code >= 400:
		return outcomeClientError
	default:
		return outcomeOK
	}
}
