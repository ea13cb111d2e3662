package conformance

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Case results as recorded in blueprints_conformance_cases_total.
const (
	resultPass = "pass"
	resultFail = "fail"
	resultSkip = "skip"
)

// Metrics holds the harness counters. A nil *Metrics records nothing.
type Metrics struct {
	Elements    *prometheus.CounterVec
	CaseSeconds *prometheus.HistogramVec
	Cases       *prometheus.CounterVec
}

// NewMetrics registers the harness metrics on reg. A nil reg returns nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	f := promauto.With(reg)

	return &Metrics{
		Elements: f.NewCounterVec(prometheus.CounterOpts{
			Name: "blueprints_conformance_elements_total",
			Help: "Elements processed by timed conformance operations",
		}, []string{"suite"}),
		CaseSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blueprints_conformance_case_seconds",
			Help:    "Wall time of a single conformance case",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"suite"}),
		Cases: f.NewCounterVec(prometheus.CounterOpts{
			Name: "blueprints_conformance_cases_total",
			Help: "Conformance cases by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) addElements(suite string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.Elements.WithLabelValues(suite).Add(float64(n))
}

func (m *Metrics) observeCase(suite, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Cases.WithLabelValues(result).Inc()
	if result != resultSkip {
		m.CaseSeconds.WithLabelValues(suite).Observe(elapsed.Seconds())
	}
}
