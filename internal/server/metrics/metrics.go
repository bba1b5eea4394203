// Package metrics exposes Prometheus counters for the evaluation API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	Registry         *prometheus.Registry
	EvaluationsTotal prometheus.Counter
	CompliantDoors   prometheus.Counter
	ViolationsTotal  prometheus.Counter
}

// New creates a registry and registers all Prometheus metrics on it.
// Each server owns its registry so repeated construction does not collide.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,
		EvaluationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "door_compliance_evaluations_total",
			Help: "Total number of door evaluations performed",
		}),
		CompliantDoors: factory.NewCounter(prometheus.CounterOpts{
			Name: "door_compliance_compliant_doors_total",
			Help: "Total number of evaluations that produced no violations",
		}),
		ViolationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "door_compliance_violations_total",
			Help: "Total number of violations found across all evaluations",
		}),
	}
}

// RecordEvaluation records the outcome of a single door evaluation.
func (m *Metrics) RecordEvaluation(violationCount int) {
	m.EvaluationsTotal.Inc()
	if violationCount == 0 {
		m.CompliantDoors.Inc()
		return
	}
	m.ViolationsTotal.Add(float64(violationCount))
}
