package services

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts inference attempts per model and outcome.
type Metrics struct {
	attempts *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "balanceai",
			Name:      "model_attempts_total",
			Help:      "Inference attempts by model and outcome.",
		}, []string{"model", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.attempts)
	}
	return m
}

func (m *Metrics) observeAttempt(a ModelAttempt) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(a.Model, string(a.Outcome)).Inc()
}
