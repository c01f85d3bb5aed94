package window

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/slidingwindow/metric"
)

// windowMetrics holds Prometheus metrics for window operations.
type windowMetrics struct {
	inserts   prometheus.Counter
	evictions prometheus.Counter
	clears    prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
}

// newWindowMetrics creates and registers window metrics with the provided registry.
func newWindowMetrics(registry *metric.Registry, prefix string) (*windowMetrics, error) {
	m := &windowMetrics{
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "slidingwindow",
			Subsystem:   "window",
			Name:        "inserts_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of window insert operations",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "slidingwindow",
			Subsystem:   "window",
			Name:        "evictions_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of elements evicted by inserts into a full window",
		}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "slidingwindow",
			Subsystem:   "window",
			Name:        "clears_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of window clear operations",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "slidingwindow",
			Subsystem:   "window",
			Name:        "size",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of resident elements",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "slidingwindow",
			Subsystem:   "window",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Window fill level as a fraction of capacity (0.0 to 1.0)",
		}),
	}

	if err := registry.RegisterCounter(prefix, "window_inserts", m.inserts); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "window_evictions", m.evictions); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "window_clears", m.clears); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "window_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "window_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordInsert increments the insert counter and updates size/utilization.
func (m *windowMetrics) recordInsert(size, capacity int) {
	m.inserts.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordEviction increments the eviction counter.
func (m *windowMetrics) recordEviction() {
	m.evictions.Inc()
}

// recordClear increments the clear counter and zeroes size/utilization.
func (m *windowMetrics) recordClear() {
	m.clears.Inc()
	m.size.Set(0)
	m.utilization.Set(0)
}
