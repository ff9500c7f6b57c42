package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "github.com/prometheus/client_model/go"

	threadlaunch "github.com/wippyai/thread-launch"
)

var _ threadlaunch.Observer = (*Exporter)(nil)

func metricValue(t *testing.T, e *Exporter, name string) float64 {
	t.Helper()

	families, err := e.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		m := mf.GetMetric()
		if len(m) != 1 {
			t.Fatalf("metric %s has %d series, want 1", name, len(m))
		}
		switch mf.GetType() {
		case dto.MetricType_COUNTER:
			return m[0].GetCounter().GetValue()
		case dto.MetricType_GAUGE:
			return m[0].GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestExporter_Events(t *testing.T) {
	e := NewExporter()

	e.Launched()
	e.Launched()
	e.Launched()
	e.Completed()
	e.CreateFailed()

	tests := []struct {
		name string
		want float64
	}{
		{"threadlaunch_launches_total", 3},
		{"threadlaunch_create_failures_total", 1},
		{"threadlaunch_completed_total", 1},
		{"threadlaunch_active_threads", 2},
	}
	for _, tt := range tests {
		if got := metricValue(t, e, tt.name); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestExporter_Handler(t *testing.T) {
	e := NewExporter()
	e.Launched()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "threadlaunch_launches_total 1") {
		t.Errorf("exposition output missing launches counter:\n%s", body)
	}
}
