// Package metrics registers the Prometheus collectors of the booking service.
// Every recorder is nil-safe so components can run without a registry in tests.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics counts cart transitions and persistence outcomes.
type CartMetrics struct {
	mutations       *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	restores        prometheus.Counter
}

// NewCartMetrics registers the cart collectors on reg. A nil registerer yields
// a recorder that drops every observation.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart transitions applied, by action.",
	}, []string{"action"})
	persistFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_storage_failures_total",
		Help: "Cart snapshot reads and writes that failed, by operation.",
	}, []string{"operation"})
	restores := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_snapshot_restores_total",
		Help: "Non-empty carts restored from storage.",
	})
	reg.MustRegister(mutations, persistFailures, restores)
	return &CartMetrics{
		mutations:       mutations,
		persistFailures: persistFailures,
		restores:        restores,
	}
}

func (m *CartMetrics) IncMutation(action string) {
	if m == nil || m.mutations == nil {
		return
	}
	m.mutations.WithLabelValues(action).Inc()
}

func (m *CartMetrics) IncReadFailure() {
	m.incFailure("read")
}

func (m *CartMetrics) IncWriteFailure() {
	m.incFailure("write")
}

func (m *CartMetrics) IncRestore() {
	if m == nil || m.restores == nil {
		return
	}
	m.restores.Inc()
}

func (m *CartMetrics) incFailure(operation string) {
	if m == nil || m.persistFailures == nil {
		return
	}
	m.persistFailures.WithLabelValues(operation).Inc()
}
