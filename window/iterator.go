package window

import (
	"github.com/c360/slidingwindow/pkg/ringmath"
)

// Iterator yields the resident elements in insertion order, oldest first.
//
// The iterator snapshots the starting slot and element count at creation
// and borrows the window read-only. Mutating the window while an iterator
// is live is not supported; create a fresh iterator after every mutation.
type Iterator[T any] struct {
	w      *Window[T]
	start  int
	offset int
	count  int
}

// Iter returns a fresh ordered iterator over the currently resident
// elements, oldest to newest.
func (w *Window[T]) Iter() *Iterator[T] {
	start := 0
	if w.full {
		start = w.cursor
	}
	return &Iterator[T]{
		w:     w,
		start: start,
		count: w.Count(),
	}
}

// Next returns the next element in insertion order. The boolean is false
// once the snapshotted element count has been yielded.
func (it *Iterator[T]) Next() (T, bool) {
	if it.offset >= it.count {
		var zero T
		return zero, false
	}

	slot := ringmath.Add(uint(it.start), uint(it.offset), uint(it.w.capacity))
	it.offset++
	return it.w.items[slot], true
}

// Len returns the exact number of elements remaining.
func (it *Iterator[T]) Len() int {
	return it.count - it.offset
}

// UnorderedIterator yields the same set of resident elements as Iterator
// but in an unspecified, deterministic order that avoids wraparound
// arithmetic entirely. Use it when only the set of held samples matters,
// e.g. for a sum or other order-insensitive statistic; it must not be
// relied upon for temporal semantics.
type UnorderedIterator[T any] struct {
	w   *Window[T]
	pos int // next slot to yield, walking toward 0; done when negative
}

// IterUnordered returns a fresh unordered iterator over the currently
// resident elements. It yields exactly Count() elements and never touches
// an unpopulated slot.
func (w *Window[T]) IterUnordered() *UnorderedIterator[T] {
	// The last populated physical slot is Count()-1 in both regimes:
	// before the first wrap the populated slots are [0, cursor), and once
	// full every slot is populated.
	return &UnorderedIterator[T]{
		w:   w,
		pos: w.Count() - 1,
	}
}

// Next returns the next element. The boolean is false after every
// populated slot has been yielded.
func (it *UnorderedIterator[T]) Next() (T, bool) {
	if it.pos < 0 {
		var zero T
		return zero, false
	}

	item := it.w.items[it.pos]
	it.pos--
	return item, true
}

// Len returns the exact number of elements remaining.
func (it *UnorderedIterator[T]) Len() int {
	return it.pos + 1
}
