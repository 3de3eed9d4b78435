// Package metrics records use case outcomes in Prometheus collectors.
package metrics

import (
	"time"

	"market/config"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "market"

// NewRegistry creates the registry served on /metrics.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

type prometheusMetrics struct {
	operations      *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	attachments     *prometheus.CounterVec
	cleanupFailures prometheus.Counter
}

// NewOperationMetrics registers the collectors on registry. With metrics
// disabled nothing is registered and observations are dropped.
func NewOperationMetrics(cfg *config.Config, registry *prometheus.Registry) service.OperationMetrics {
	if !cfg.Metrics.Enabled {
		return noopMetrics{}
	}

	m := &prometheusMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Use case calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Use case latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		attachments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attachments_total",
			Help:      "Attachment files stored or removed.",
		}, []string{"action"}),
		cleanupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attachment_cleanup_failures_total",
			Help:      "Attachment files that could not be removed.",
		}),
	}
	registry.MustRegister(m.operations, m.latency, m.attachments, m.cleanupFailures)

	return m
}

// ObserveOperation labels the outcome with the error kind, or "ok".
func (m *prometheusMetrics) ObserveOperation(op string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = string(domainerrors.KindOf(err))
	}

	m.operations.WithLabelValues(op, outcome).Inc()
	m.latency.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (m *prometheusMetrics) ObserveAttachments(action string, count int) {
	if count <= 0 {
		return
	}

	m.attachments.WithLabelValues(action).Add(float64(count))
}

func (m *prometheusMetrics) ObserveCleanupFailure() {
	m.cleanupFailures.Inc()
}

type noopMetrics struct{}

// NewNoopMetrics returns metrics that record nothing.
func NewNoopMetrics() service.OperationMetrics {
	return noopMetrics{}
}

func (noopMetrics) ObserveOperation(string, error, time.Duration) {}
func (noopMetrics) ObserveAttachments(string, int)                {}
func (noopMetrics) ObserveCleanupFailure()                        {}
