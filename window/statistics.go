package window

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks window activity. Counters use atomics so a metrics
// scrape from another goroutine can read them safely even though the
// window itself is single-owner.
type Statistics struct {
	inserts   int64
	evictions int64
	clears    int64
	reads     int64
	peeks     int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Insert records an insertion.
func (s *Statistics) Insert() {
	atomic.AddInt64(&s.inserts, 1)
}

// Evict records an eviction caused by inserting into a full window.
func (s *Statistics) Evict() {
	atomic.AddInt64(&s.evictions, 1)
}

// Clear records a clear operation.
func (s *Statistics) Clear() {
	atomic.AddInt64(&s.clears, 1)
}

// Read records an indexed read.
func (s *Statistics) Read() {
	atomic.AddInt64(&s.reads, 1)
}

// Peek records an Oldest/Newest peek.
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// UpdateSize updates the current resident element count.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Inserts returns the total number of insertions.
func (s *Statistics) Inserts() int64 {
	return atomic.LoadInt64(&s.inserts)
}

// Evictions returns the total number of evicted elements.
func (s *Statistics) Evictions() int64 {
	return atomic.LoadInt64(&s.evictions)
}

// Clears returns the total number of clear operations.
func (s *Statistics) Clears() int64 {
	return atomic.LoadInt64(&s.clears)
}

// Reads returns the total number of indexed reads.
func (s *Statistics) Reads() int64 {
	return atomic.LoadInt64(&s.reads)
}

// Peeks returns the total number of peek operations.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// CurrentSize returns the current number of resident elements.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the largest resident element count observed.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// Throughput returns the average number of insertions per second.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Inserts()) / elapsed.Seconds()
}

// EvictionRate returns the fraction of insertions that displaced an
// element (0.0 to 1.0).
func (s *Statistics) EvictionRate() float64 {
	inserts := s.Inserts()
	if inserts == 0 {
		return 0.0
	}

	return float64(s.Evictions()) / float64(inserts)
}

// Utilization returns the current fill level as a fraction of capacity
// (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}

	return float64(s.CurrentSize()) / float64(capacity)
}

// Uptime returns how long the window has existed.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.inserts, 0)
	atomic.StoreInt64(&s.evictions, 0)
	atomic.StoreInt64(&s.clears, 0)
	atomic.StoreInt64(&s.reads, 0)
	atomic.StoreInt64(&s.peeks, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.mu.Unlock()
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Inserts      int64         `json:"inserts"`
	Evictions    int64         `json:"evictions"`
	Clears       int64         `json:"clears"`
	Reads        int64         `json:"reads"`
	Peeks        int64         `json:"peeks"`
	CurrentSize  int64         `json:"current_size"`
	MaxSize      int64         `json:"max_size"`
	Throughput   float64       `json:"throughput"`
	EvictionRate float64       `json:"eviction_rate"`
	Uptime       time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Inserts:      s.Inserts(),
		Evictions:    s.Evictions(),
		Clears:       s.Clears(),
		Reads:        s.Reads(),
		Peeks:        s.Peeks(),
		CurrentSize:  s.CurrentSize(),
		MaxSize:      s.MaxSize(),
		Throughput:   s.Throughput(),
		EvictionRate: s.EvictionRate(),
		Uptime:       s.Uptime(),
	}
}
