package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects driver status counters.
type Metrics struct {
	changes  *prometheus.CounterVec
	failures *prometheus.CounterVec
	gatherer prometheus.Gatherer
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	changes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "driver_status_changes_total",
		Help: "Total driver status changes by new status.",
	}, []string{"status"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "driver_notification_failures_total",
		Help: "Total failed listener notifications by listener.",
	}, []string{"listener"})

	changes = registerCounterVec(registry, changes)
	failures = registerCounterVec(registry, failures)

	return &Metrics{
		changes:  changes,
		failures: failures,
		gatherer: registry,
	}
}

// Handler exposes the metrics in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) IncStatusChange(status string) {
	if m == nil || m.changes == nil {
		return
	}
	m.changes.WithLabelValues(status).Inc()
}

func (m *Metrics) IncFailure(listener string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(listener).Inc()
}

func registerCounterVec(registerer prometheus.Registerer, counter *prometheus.CounterVec) *prometheus.CounterVec {
	if err := registerer.Register(counter); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return counter
}
