// Package metric provides Prometheus metrics registration for sliding
// window observability.
//
// # Overview
//
// The metric package wraps a prometheus.Registry with named registration:
// every collector is registered under a "component.metric" key, so an
// application holding many windows gets duplicate detection at both the
// registry level (same component re-registering the same name) and the
// Prometheus level (colliding metric descriptors).
//
// Windows never require this package. Statistics are always collected via
// the window package's built-in atomic counters; Prometheus export is
// opt-in through window.WithMetrics.
//
// # Quick Start
//
//	registry := metric.NewRegistry()
//
//	w, err := window.New[float64](64,
//	    window.WithMetrics[float64](registry, "sensor_smoothing"),
//	)
//	if err != nil {
//	    return err
//	}
//
// Expose the metrics on an existing mux:
//
//	mux.Handle("/metrics", registry.Handler())
//
// # Error Handling
//
// Registration failures are classified via the errors package: duplicate
// registrations are Invalid (a wiring bug in the caller), while unexpected
// Prometheus failures are Fatal.
package metric
