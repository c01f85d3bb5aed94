// Package window provides a fixed-capacity sliding window that retains the
// N most recently inserted samples of a stream, with built-in statistics
// tracking and optional Prometheus metrics integration.
//
// # Overview
//
// A Window holds exactly the last N inserted elements. While fewer than N
// elements have been inserted it simply accumulates them; once full, each
// insertion silently evicts the oldest resident element and returns it to
// the caller. This makes the type a natural fit for bounded histories of
// recent values: sensor smoothing, rate-limiting windows, moving statistics.
//
// Storage is allocated once at construction and never grows. Apart from the
// documented snapshot methods (Slice, MarshalJSON), no operation allocates,
// so a Window is usable on hot paths.
//
// # Quick Start
//
// Basic usage:
//
//	w, err := window.New[float64](64)
//	if err != nil {
//		return err
//	}
//
//	for sample := range samples {
//		if evicted, ok := w.Insert(sample); ok {
//			_ = evicted // displaced oldest sample
//		}
//	}
//
//	oldest, err := w.At(0)
//
// With an eviction callback and metrics:
//
//	w, err := window.New[Reading](1024,
//		window.WithEvictionCallback(func(r Reading) { recycle(r) }),
//		window.WithMetrics[Reading](registry, "sensor_history"),
//	)
//
// # Iteration
//
// Two iteration modes are available. Iter walks the elements in insertion
// order, oldest first, computing each position with wraparound arithmetic:
//
//	for it := w.Iter(); ; {
//		v, ok := it.Next()
//		if !ok {
//			break
//		}
//		process(v)
//	}
//
// IterUnordered yields the same set of elements in an unspecified but
// deterministic order and skips the wraparound arithmetic, which makes it
// the cheaper choice for order-insensitive reductions such as sums:
//
//	var sum float64
//	for it := w.IterUnordered(); it.Len() > 0; {
//		v, _ := it.Next()
//		sum += v
//	}
//
// Both iterators are restartable (each call to Iter/IterUnordered returns a
// fresh instance), expose an exact remaining-length hint via Len, and
// borrow the window read-only. Mutating the window while an iterator is
// live is not supported.
//
// # Concurrency
//
// The Window itself is not synchronized. Insert and Clear require exclusive
// access; Count, IsFull, At, and iteration require only that no mutation is
// in flight. Callers needing concurrent access must supply external mutual
// exclusion. Statistics counters use atomics, so a metrics scrape from
// another goroutine is safe regardless.
//
// # Observability
//
// Statistics are always collected via atomic counters and available through
// Stats(); they require no configuration and have no external dependencies.
// Prometheus export is opt-in through WithMetrics and publishes insert,
// eviction, and clear counters along with size and utilization gauges.
package window
