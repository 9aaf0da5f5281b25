package notifier

import (
	"github.com/kettari/driver-status/internal/entity"
	"github.com/kettari/driver-status/internal/observability"
)

// Metrics counts status changes
type Metrics struct {
	metrics *observability.Metrics
}

func NewMetricsObserver(metrics *observability.Metrics) *Metrics {
	return &Metrics{metrics: metrics}
}

func (m *Metrics) Update(driver *entity.Driver) error {
	m.metrics.IncStatusChange(string(driver.Status()))
	return nil
}
