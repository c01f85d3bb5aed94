package window

import (
	"github.com/c360/slidingwindow/metric"
)

// Option configures window behavior using the functional options pattern.
type Option[T any] func(*windowOptions[T])

// EvictionCallback is called with each element displaced by an insertion
// into a full window. It is not called for elements dropped by Clear.
type EvictionCallback[T any] func(item T)

// windowOptions holds internal configuration for window instances.
// Statistics are always collected; Prometheus metrics are opt-in.
type windowOptions[T any] struct {
	evictionCallback EvictionCallback[T]

	// metricsReg is optional - if provided, window stats are also exposed
	// as Prometheus metrics under the given component prefix
	metricsReg    *metric.Registry
	metricsPrefix string
}

// WithEvictionCallback sets a callback invoked with every element evicted
// by an insertion into a full window.
func WithEvictionCallback[T any](callback EvictionCallback[T]) Option[T] {
	return func(opts *windowOptions[T]) {
		opts.evictionCallback = callback
	}
}

// WithMetrics enables Prometheus metrics export for window statistics.
// If registry is nil or prefix is empty, the option is ignored.
func WithMetrics[T any](registry *metric.Registry, prefix string) Option[T] {
	return func(opts *windowOptions[T]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// applyOptions applies functional options to create final window configuration.
func applyOptions[T any](options ...Option[T]) *windowOptions[T] {
	opts := &windowOptions[T]{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
