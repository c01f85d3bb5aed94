package window

import (
	"encoding/json"
	"fmt"

	"github.com/c360/slidingwindow/errors"
	"github.com/c360/slidingwindow/pkg/ringmath"
)

// Window is a fixed-capacity circular buffer retaining the most recently
// inserted elements of a stream. Once full, every insertion silently evicts
// the oldest resident element.
//
// The backing storage is allocated once at construction; no operation
// allocates afterwards except the explicitly documented snapshot methods.
// A Window is not internally synchronized: Insert and Clear require
// exclusive access, read operations require that no mutation is in flight.
type Window[T any] struct {
	items    []T
	capacity int
	cursor   int // next slot to overwrite, always in [0, capacity)

	// full flips false->true exactly once per fill cycle, on the insert
	// that lands in the last never-written slot. Go slices of plain values
	// cannot distinguish a populated slot from a zero-valued one, so
	// fullness is tracked explicitly instead of inferred from storage.
	full bool

	stats   *Statistics
	metrics *windowMetrics
	opts    *windowOptions[T]
}

// New creates an empty Window with the given capacity.
// Capacity must be at least 1; statistics are always collected, Prometheus
// export is opt-in via WithMetrics. Returns an error if metrics
// registration fails when requested.
func New[T any](capacity int, options ...Option[T]) (*Window[T], error) {
	if capacity < 1 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity, "Window", "New", "capacity validation")
	}

	opts := applyOptions(options...)

	var metrics *windowMetrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newWindowMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "Window", "New", "metrics registration")
		}
	}

	return &Window[T]{
		items:    make([]T, capacity),
		capacity: capacity,
		stats:    NewStatistics(),
		metrics:  metrics,
		opts:     opts,
	}, nil
}

// Insert writes item into the slot under the write cursor and advances the
// cursor with wraparound. If the window was already full, the displaced
// oldest element is returned together with true; otherwise the zero value
// and false. Insert accepts any value unconditionally.
func (w *Window[T]) Insert(item T) (T, bool) {
	var evicted T
	wasFull := w.full

	if wasFull {
		evicted = w.items[w.cursor]
	}

	w.items[w.cursor] = item
	w.cursor = int(ringmath.Next(uint(w.cursor), uint(w.capacity)))
	if !w.full && w.cursor == 0 {
		// Mid-cycle the cursor only returns to slot 0 by wrapping.
		w.full = true
	}

	w.stats.Insert()
	w.stats.UpdateSize(int64(w.Count()))
	if wasFull {
		w.stats.Evict()
	}
	if w.metrics != nil {
		w.metrics.recordInsert(w.Count(), w.capacity)
		if wasFull {
			w.metrics.recordEviction()
		}
	}

	if wasFull && w.opts.evictionCallback != nil {
		w.opts.evictionCallback(evicted)
	}

	return evicted, wasFull
}

// Clear drops every resident element and resets the Window to the empty
// state. Cleared slots are zeroed so the window never pins dead references.
// The eviction callback is not fired: clearing is caller-initiated
// disposal, not capacity pressure.
func (w *Window[T]) Clear() {
	var zero T
	for i := range w.items {
		w.items[i] = zero
	}
	w.cursor = 0
	w.full = false

	w.stats.Clear()
	w.stats.UpdateSize(0)
	if w.metrics != nil {
		w.metrics.recordClear()
	}
}

// Count returns the number of resident elements, in [0, Capacity()].
func (w *Window[T]) Count() int {
	if w.full {
		return w.capacity
	}
	return w.cursor
}

// Capacity returns the fixed maximum number of resident elements.
func (w *Window[T]) Capacity() int {
	return w.capacity
}

// IsFull returns true iff exactly Capacity() elements are resident.
func (w *Window[T]) IsFull() bool {
	return w.full
}

// IsEmpty returns true if no elements are resident.
func (w *Window[T]) IsEmpty() bool {
	return w.Count() == 0
}

// At returns the element at the given logical index, where index 0 is the
// oldest resident element and Count()-1 the newest. Reading beyond the
// resident element count is a contract violation and returns a classified
// invalid error wrapping ErrIndexOutOfRange, never a stale value.
func (w *Window[T]) At(idx int) (T, error) {
	if idx < 0 || idx >= w.Count() {
		var zero T
		return zero, errors.WrapInvalid(
			fmt.Errorf("%w: index %d with %d resident", errors.ErrIndexOutOfRange, idx, w.Count()),
			"Window", "At", "bounds check")
	}

	w.stats.Read()
	return w.items[w.physical(idx)], nil
}

// Oldest returns the oldest resident element without removing it.
// Returns the zero value and false when the window is empty.
func (w *Window[T]) Oldest() (T, bool) {
	if w.IsEmpty() {
		var zero T
		return zero, false
	}
	w.stats.Peek()
	return w.items[w.physical(0)], true
}

// Newest returns the most recently inserted element without removing it.
// Returns the zero value and false when the window is empty.
func (w *Window[T]) Newest() (T, bool) {
	if w.IsEmpty() {
		var zero T
		return zero, false
	}
	w.stats.Peek()
	return w.items[w.physical(w.Count() - 1)], true
}

// Slice returns a freshly allocated snapshot of the resident elements in
// insertion order, oldest first. Returns nil when the window is empty.
func (w *Window[T]) Slice() []T {
	count := w.Count()
	if count == 0 {
		return nil
	}

	out := make([]T, count)
	if !w.full {
		copy(out, w.items[:count])
		return out
	}

	n := copy(out, w.items[w.cursor:])
	copy(out[n:], w.items[:w.cursor])
	return out
}

// MarshalJSON encodes the resident elements as a JSON array in insertion
// order. An empty window encodes as [].
func (w *Window[T]) MarshalJSON() ([]byte, error) {
	snapshot := w.Slice()
	if snapshot == nil {
		snapshot = []T{}
	}
	return json.Marshal(snapshot)
}

// Stats returns the window's statistics (always collected).
func (w *Window[T]) Stats() *Statistics {
	return w.stats
}

// physical maps a logical index (0 = oldest) onto a storage slot.
// Before the first wrap insertion order equals physical order; once full
// the oldest element sits under the cursor and logical order is a forward
// walk with wraparound.
func (w *Window[T]) physical(idx int) int {
	if !w.full {
		return idx
	}
	return int(ringmath.Add(uint(w.cursor), uint(idx), uint(w.capacity)))
}
