// Package slidingwindow provides a fixed-capacity sliding window primitive
// for retaining the most recent N samples of a data stream.
//
// # Package Organization
//
// The module is organized into focused packages:
//
//   - window: the Window type itself - insertion with silent eviction of
//     the oldest sample, logical indexing from oldest to newest, ordered
//     and unordered iteration, always-on statistics, and optional
//     Prometheus metrics.
//   - pkg/ringmath: overflow-safe modular index arithmetic, usable on its
//     own by any circular addressing scheme.
//   - errors: classified error handling shared by all packages.
//   - metric: Prometheus registry wiring for applications that want window
//     activity exposed as metrics.
//
// # Design Philosophy
//
// The window is a pure in-memory data structure: no I/O, no internal
// locking, and no allocation after construction outside the documented
// snapshot methods. Observability follows a dual-tracking pattern -
// lightweight atomic statistics are always collected, while Prometheus
// export is opt-in per window through functional options.
//
// See the window package documentation for usage examples.
package slidingwindow
