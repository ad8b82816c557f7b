// Package metrics records evaluation results as Prometheus metrics.
//
// Metrics live in a private registry (never the global one) and are written
// in the text exposition format for the node_exporter textfile collector.
// gedcheck is a batch tool, so there is no /metrics endpoint.
//
// Thread-safety: all methods are safe for concurrent use; Recorder
// implements engine.Observer for the parallel batch.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/roach88/gedcheck/internal/rules"
)

const metricsNamespace = "gedcheck"

// Recorder holds gedcheck's metrics.
type Recorder struct {
	registry *prometheus.Registry

	// RuleFindings is the finding count of the latest evaluation per rule.
	// Labels: rule (US01, ...)
	RuleFindings *prometheus.GaugeVec

	// RuleEvaluations counts rule evaluations.
	// Labels: rule
	RuleEvaluations *prometheus.CounterVec

	// LastRunTimestamp is the Unix time of the latest completed run.
	LastRunTimestamp prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		RuleFindings: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "rule_findings",
				Help:      "Findings reported by the latest evaluation of each rule",
			},
			[]string{"rule"},
		),
		RuleEvaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "rule_evaluations_total",
				Help:      "Total rule evaluations",
			},
			[]string{"rule"},
		),
		LastRunTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time of the latest completed run",
			},
		),
	}
	r.registry.MustRegister(r.RuleFindings, r.RuleEvaluations, r.LastRunTimestamp)
	return r
}

// ObserveRule records one rule evaluation.
func (r *Recorder) ObserveRule(id rules.ID, findings int) {
	r.RuleFindings.WithLabelValues(string(id)).Set(float64(findings))
	r.RuleEvaluations.WithLabelValues(string(id)).Inc()
}

// MarkRun sets the last-run timestamp to now.
func (r *Recorder) MarkRun() {
	r.LastRunTimestamp.SetToCurrentTime()
}

// Registry returns the private registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
