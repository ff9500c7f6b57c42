package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter tracks launcher lifecycle events on a private Prometheus
// registry. It implements threadlaunch.Observer.
type Exporter struct {
	registry       *prometheus.Registry
	launches       prometheus.Counter
	createFailures prometheus.Counter
	completed      prometheus.Counter
	active         prometheus.Gauge
}

// NewExporter creates an exporter with all metrics registered.
func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		launches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "threadlaunch_launches_total",
			Help: "Total number of threads launched",
		}),
		createFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "threadlaunch_create_failures_total",
			Help: "Total number of rejected thread creation requests",
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "threadlaunch_completed_total",
			Help: "Total number of launched methods that returned",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "threadlaunch_active_threads",
			Help: "Number of launched threads still running",
		}),
	}

	e.registry.MustRegister(e.launches)
	e.registry.MustRegister(e.createFailures)
	e.registry.MustRegister(e.completed)
	e.registry.MustRegister(e.active)

	return e
}

// Launched implements threadlaunch.Observer.
func (e *Exporter) Launched() {
	e.launches.Inc()
	e.active.Inc()
}

// CreateFailed implements threadlaunch.Observer.
func (e *Exporter) CreateFailed() {
	e.createFailures.Inc()
}

// Completed implements threadlaunch.Observer.
func (e *Exporter) Completed() {
	e.completed.Inc()
	e.active.Dec()
}

// Registry returns the exporter's registry, for composing with other
// collectors.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// Handler returns an HTTP handler serving the exporter's metrics in
// Prometheus exposition format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}
