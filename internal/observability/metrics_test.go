package observability

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.IncStatusChange("En Route")
	m.IncStatusChange("En Route")
	m.IncStatusChange("Loading")
	m.IncFailure("*notifier.Telegram")

	if got := testutil.ToFloat64(m.changes.WithLabelValues("En Route")); got != 2 {
		t.Errorf("En Route changes = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.changes.WithLabelValues("Loading")); got != 1 {
		t.Errorf("Loading changes = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.failures.WithLabelValues("*notifier.Telegram")); got != 1 {
		t.Errorf("failures = %v, want 1", got)
	}
}

func TestMetrics_SharedRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := NewMetrics(registry)
	second := NewMetrics(registry)

	first.IncStatusChange("Off Duty")
	second.IncStatusChange("Off Duty")

	if got := testutil.ToFloat64(first.changes.WithLabelValues("Off Duty")); got != 2 {
		t.Errorf("changes = %v, want 2 across instances", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.IncStatusChange("Available")
	m.IncFailure("listener")
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics(nil)
	m.IncStatusChange("Unloading")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	if !strings.Contains(string(body), `driver_status_changes_total{status="Unloading"} 1`) {
		t.Errorf("metrics output missing counter:\n%s", body)
	}
}
