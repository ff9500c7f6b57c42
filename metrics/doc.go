// Package metrics exports launcher lifecycle events as Prometheus metrics.
//
// Exporter implements threadlaunch.Observer; attach it to a Launcher and
// serve its Handler:
//
//	exp := metrics.NewExporter()
//	l := launch.New(eng, launch.WithObserver(exp))
//	http.Handle("/metrics", exp.Handler())
package metrics
