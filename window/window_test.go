package window

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	cerrors "github.com/c360/slidingwindow/errors"
)

func TestNewRejectsInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		_, err := New[int](capacity)
		if err == nil {
			t.Fatalf("expected error for capacity %d", capacity)
		}
		if !errors.Is(err, cerrors.ErrInvalidCapacity) {
			t.Errorf("expected ErrInvalidCapacity for capacity %d, got %v", capacity, err)
		}
		if !cerrors.IsInvalid(err) {
			t.Errorf("capacity error should classify as invalid, got %v", err)
		}
	}
}

func TestWindowInitialState(t *testing.T) {
	w, err := New[int](5)
	require.NoError(t, err, "Failed to create window")

	if w.Count() != 0 {
		t.Errorf("Expected initial count 0, got %d", w.Count())
	}
	if w.Capacity() != 5 {
		t.Errorf("Expected capacity 5, got %d", w.Capacity())
	}
	if !w.IsEmpty() {
		t.Error("Expected window to be empty initially")
	}
	if w.IsFull() {
		t.Error("Expected window not to be full initially")
	}
}

func TestWindowFillAndEvict(t *testing.T) {
	w, err := New[int](4)
	require.NoError(t, err, "Failed to create window")

	// Partial fill: count tracks insertions, nothing evicted.
	for i, v := range []int{1, 2, 3} {
		evicted, ok := w.Insert(v)
		if ok {
			t.Errorf("insert %d should not evict, got %d", v, evicted)
		}
		if w.Count() != i+1 {
			t.Errorf("after insert %d expected count %d, got %d", v, i+1, w.Count())
		}
	}
	if w.IsFull() {
		t.Error("window should not be full after 3 of 4 inserts")
	}

	oldest, err := w.At(0)
	require.NoError(t, err)
	if oldest != 1 {
		t.Errorf("At(0) = %d, expected 1", oldest)
	}

	// Fourth insert fills the window without evicting.
	if _, ok := w.Insert(4); ok {
		t.Error("filling insert should not evict")
	}
	if !w.IsFull() {
		t.Error("window should be full after 4 inserts")
	}
	if w.Count() != 4 {
		t.Errorf("expected count 4, got %d", w.Count())
	}

	// Fifth insert evicts the first-ever element.
	evicted, ok := w.Insert(5)
	if !ok {
		t.Fatal("insert into full window should evict")
	}
	if evicted != 1 {
		t.Errorf("expected eviction of 1, got %d", evicted)
	}
	if w.Count() != 4 {
		t.Errorf("count should stay 4 after eviction, got %d", w.Count())
	}

	oldest, err = w.At(0)
	require.NoError(t, err)
	if oldest != 2 {
		t.Errorf("At(0) = %d, expected 2 after eviction", oldest)
	}
}

func TestWindowAtLogicalOrder(t *testing.T) {
	w, err := New[int](4)
	require.NoError(t, err)

	// Insert past capacity so the physical layout wraps.
	for i := 1; i <= 6; i++ {
		w.Insert(i)
	}

	// Residents should be 3,4,5,6 oldest to newest.
	for idx, expected := range []int{3, 4, 5, 6} {
		v, err := w.At(idx)
		require.NoError(t, err)
		if v != expected {
			t.Errorf("At(%d) = %d, expected %d", idx, v, expected)
		}
	}
}

func TestWindowAtOutOfRange(t *testing.T) {
	w, err := New[string](3)
	require.NoError(t, err)

	w.Insert("a")
	w.Insert("b")

	tests := []struct {
		name string
		idx  int
	}{
		{"negative", -1},
		{"at count", 2},
		{"beyond count", 5},
		{"at capacity", 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := w.At(test.idx)
			if err == nil {
				t.Fatalf("expected error for index %d", test.idx)
			}
			if !errors.Is(err, cerrors.ErrIndexOutOfRange) {
				t.Errorf("expected ErrIndexOutOfRange, got %v", err)
			}

			var ce *cerrors.ClassifiedError
			if !errors.As(err, &ce) {
				t.Fatal("expected a classified error")
			}
			if ce.Class != cerrors.ErrorInvalid {
				t.Errorf("expected ErrorInvalid class, got %v", ce.Class)
			}
			if ce.Component != "Window" || ce.Operation != "At" {
				t.Errorf("expected Window.At context, got %s.%s", ce.Component, ce.Operation)
			}
		})
	}
}

func TestWindowClear(t *testing.T) {
	w, err := New[string](3)
	require.NoError(t, err)

	w.Insert("a")
	w.Insert("b")
	w.Insert("c")
	w.Insert("d") // wrapped

	w.Clear()

	if w.Count() != 0 {
		t.Errorf("expected count 0 after clear, got %d", w.Count())
	}
	if w.IsFull() {
		t.Error("window should not be full after clear")
	}
	if !w.IsEmpty() {
		t.Error("window should be empty after clear")
	}

	// Insertion order restarts from scratch after a clear.
	w.Insert("x")
	v, err := w.At(0)
	require.NoError(t, err)
	if v != "x" {
		t.Errorf("At(0) = %q after clear and insert, expected \"x\"", v)
	}
	if w.IsFull() {
		t.Error("window should not be full after one insert into capacity 3")
	}
}

func TestWindowClearZeroesSlots(t *testing.T) {
	type payload struct{ data *[]byte }

	w, err := New[payload](2)
	require.NoError(t, err)

	blob := make([]byte, 16)
	w.Insert(payload{data: &blob})
	w.Clear()

	// Slots must not pin the old references.
	for i := range w.items {
		if w.items[i].data != nil {
			t.Errorf("slot %d still references cleared payload", i)
		}
	}
}

func TestWindowCapacityOne(t *testing.T) {
	w, err := New[int](1)
	require.NoError(t, err)

	if _, ok := w.Insert(10); ok {
		t.Error("first insert should not evict")
	}
	if !w.IsFull() {
		t.Error("capacity 1 window should be full after one insert")
	}

	evicted, ok := w.Insert(20)
	if !ok || evicted != 10 {
		t.Errorf("expected eviction of 10, got %d (ok=%v)", evicted, ok)
	}

	v, err := w.At(0)
	require.NoError(t, err)
	if v != 20 {
		t.Errorf("At(0) = %d, expected 20", v)
	}
}

func TestWindowEvictionCallback(t *testing.T) {
	var evictedItems []int

	w, err := New[int](2,
		WithEvictionCallback(func(item int) {
			evictedItems = append(evictedItems, item)
		}),
	)
	require.NoError(t, err)

	w.Insert(1)
	w.Insert(2)
	w.Insert(3) // evicts 1
	w.Insert(4) // evicts 2

	if len(evictedItems) != 2 {
		t.Fatalf("expected 2 evicted items, got %d", len(evictedItems))
	}
	if evictedItems[0] != 1 || evictedItems[1] != 2 {
		t.Errorf("expected evicted items [1, 2], got %v", evictedItems)
	}

	// Clear is disposal, not eviction: the callback must not fire.
	w.Clear()
	if len(evictedItems) != 2 {
		t.Errorf("clear should not fire eviction callback, got %v", evictedItems)
	}
}

func TestWindowGenericTypes(t *testing.T) {
	stringWindow, err := New[string](3)
	require.NoError(t, err)

	stringWindow.Insert("hello")
	stringWindow.Insert("world")

	v, err := stringWindow.At(0)
	require.NoError(t, err)
	if v != "hello" {
		t.Errorf("string window At(0) = %q, expected \"hello\"", v)
	}

	type sample struct {
		ID    int
		Value float64
	}

	structWindow, err := New[sample](2)
	require.NoError(t, err)

	structWindow.Insert(sample{ID: 1, Value: 1.5})
	structWindow.Insert(sample{ID: 2, Value: 2.5})
	structWindow.Insert(sample{ID: 3, Value: 3.5})

	oldest, err := structWindow.At(0)
	require.NoError(t, err)
	if oldest.ID != 2 || oldest.Value != 2.5 {
		t.Errorf("struct window At(0) = %+v, expected {2 2.5}", oldest)
	}
}

func TestWindowOldestNewest(t *testing.T) {
	w, err := New[int](3)
	require.NoError(t, err)

	if _, ok := w.Oldest(); ok {
		t.Error("Oldest on empty window should report false")
	}
	if _, ok := w.Newest(); ok {
		t.Error("Newest on empty window should report false")
	}

	w.Insert(1)
	w.Insert(2)

	oldest, ok := w.Oldest()
	if !ok || oldest != 1 {
		t.Errorf("Oldest = %d (ok=%v), expected 1", oldest, ok)
	}
	newest, ok := w.Newest()
	if !ok || newest != 2 {
		t.Errorf("Newest = %d (ok=%v), expected 2", newest, ok)
	}

	// After wrapping, oldest and newest shift together.
	w.Insert(3)
	w.Insert(4)

	oldest, _ = w.Oldest()
	newest, _ = w.Newest()
	if oldest != 2 || newest != 4 {
		t.Errorf("after wrap Oldest=%d Newest=%d, expected 2 and 4", oldest, newest)
	}
}

func TestWindowSlice(t *testing.T) {
	w, err := New[int](4)
	require.NoError(t, err)

	if w.Slice() != nil {
		t.Error("Slice of empty window should be nil")
	}

	w.Insert(1)
	w.Insert(2)
	require.Equal(t, []int{1, 2}, w.Slice())

	for i := 3; i <= 6; i++ {
		w.Insert(i)
	}
	require.Equal(t, []int{3, 4, 5, 6}, w.Slice())
}

func TestWindowSliceIsSnapshot(t *testing.T) {
	w, err := New[int](3)
	require.NoError(t, err)

	w.Insert(1)
	w.Insert(2)

	snapshot := w.Slice()
	snapshot[0] = 999

	v, err := w.At(0)
	require.NoError(t, err)
	if v != 1 {
		t.Errorf("window mutated via snapshot: At(0) = %d, expected 1", v)
	}
}

func TestWindowMarshalJSON(t *testing.T) {
	w, err := New[int](4)
	require.NoError(t, err)

	data, err := json.Marshal(w)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data), "empty window should encode as empty array")

	for i := 1; i <= 6; i++ {
		w.Insert(i)
	}

	data, err = json.Marshal(w)
	require.NoError(t, err)
	require.JSONEq(t, `[3,4,5,6]`, string(data), "encoding should preserve insertion order")
}

func TestWindowStatistics(t *testing.T) {
	w, err := New[int](2)
	require.NoError(t, err)

	stats := w.Stats()
	require.NotNil(t, stats, "statistics should always be collected")

	w.Insert(1)
	w.Insert(2)
	w.Insert(3) // evicts 1

	if stats.Inserts() != 3 {
		t.Errorf("expected 3 inserts, got %d", stats.Inserts())
	}
	if stats.Evictions() != 1 {
		t.Errorf("expected 1 eviction, got %d", stats.Evictions())
	}
	if stats.CurrentSize() != 2 {
		t.Errorf("expected current size 2, got %d", stats.CurrentSize())
	}
	if stats.MaxSize() != 2 {
		t.Errorf("expected max size 2, got %d", stats.MaxSize())
	}

	_, _ = w.At(0)
	if stats.Reads() != 1 {
		t.Errorf("expected 1 read, got %d", stats.Reads())
	}

	_, _ = w.Oldest()
	if stats.Peeks() != 1 {
		t.Errorf("expected 1 peek, got %d", stats.Peeks())
	}

	w.Clear()
	if stats.Clears() != 1 {
		t.Errorf("expected 1 clear, got %d", stats.Clears())
	}
	if stats.CurrentSize() != 0 {
		t.Errorf("expected current size 0 after clear, got %d", stats.CurrentSize())
	}

	if rate := stats.EvictionRate(); rate != 1.0/3.0 {
		t.Errorf("expected eviction rate 1/3, got %f", rate)
	}

	summary := stats.Summary()
	if summary.Inserts != 3 || summary.Evictions != 1 || summary.Clears != 1 {
		t.Errorf("summary mismatch: %+v", summary)
	}

	stats.Reset()
	if stats.Inserts() != 0 || stats.MaxSize() != 0 {
		t.Error("reset should zero all statistics")
	}
}

func TestWindowRepeatedFillCycles(t *testing.T) {
	w, err := New[int](3)
	require.NoError(t, err)

	// Fullness must disambiguate correctly across clear/fill cycles.
	for cycle := 0; cycle < 3; cycle++ {
		for i := 0; i < 3; i++ {
			if w.IsFull() {
				t.Fatalf("cycle %d: full before %d inserts", cycle, i+1)
			}
			w.Insert(cycle*10 + i)
		}
		if !w.IsFull() {
			t.Fatalf("cycle %d: not full after capacity inserts", cycle)
		}
		w.Clear()
		if w.Count() != 0 || w.IsFull() {
			t.Fatalf("cycle %d: clear did not reset state", cycle)
		}
	}
}
