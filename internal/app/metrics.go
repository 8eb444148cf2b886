package app

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "maeumgido"

// Metrics counts recommendation and share use cases.
// They are served by the /-/metrics endpoint next to the Go runtime collectors.
type Metrics struct {
	recommendations *prometheus.CounterVec
	shares          *prometheus.CounterVec
}

// NewMetrics registers the counters with reg. A nil reg leaves them unregistered,
// which is what tests and the CLI use.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		recommendations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "recommendations_total",
			Help:      "Recommendations served, by whether the fallback set was returned.",
		}, []string{"fallback"}),
		shares: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "share_attempts_total",
			Help:      "Share and copy attempts by action, strategy and outcome.",
		}, []string{"action", "strategy", "outcome"}),
	}
}

func (m *Metrics) recordRecommendation(fallback bool) {
	if m == nil {
		return
	}

	m.recommendations.WithLabelValues(strconv.FormatBool(fallback)).Inc()
}

func (m *Metrics) recordShare(r *ShareResult) {
	if m == nil {
		return
	}

	strategy := string(r.Strategy)
	if strategy == "" {
		strategy = "none"
	}

	m.shares.WithLabelValues(string(r.Action), strategy, string(r.Outcome)).Inc()
}
