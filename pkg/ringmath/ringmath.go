// Package ringmath provides overflow-safe modular index arithmetic for
// circular buffers.
//
// All functions compute exact modular results for every representable uint
// input, including operand combinations whose plain sum would wrap around
// the native integer width. This lets ring buffer code address slots with
// `(base + offset) mod capacity` semantics without reaching for a wider
// accumulator type.
//
// Capacity Semantics:
//   - Capacity must be at least 1. Passing 0 panics with a divide-by-zero,
//     mirroring the contract violation it represents.
//
// Usage Examples:
//
//	slot := ringmath.Add(cursor, offset, capacity) // logical -> physical
//	cursor = ringmath.Next(cursor, capacity)       // advance write cursor
package ringmath

// Add returns (base + offset) mod capacity.
//
// The result is mathematically exact for all uint inputs. Both operands are
// reduced mod capacity first, after which the sum can overflow only by
// wrapping past capacity once; that case is detected by comparing offset
// against the headroom remaining above base, so no intermediate value ever
// exceeds the uint range.
func Add(base, offset, capacity uint) uint {
	base %= capacity
	offset %= capacity
	if offset >= capacity-base {
		// Sum wraps past capacity exactly once.
		return offset - (capacity - base)
	}
	return base + offset
}

// Next returns (i + 1) mod capacity. Equivalent to Add(i, 1, capacity) but
// cheaper for the common cursor-advance case.
func Next(i, capacity uint) uint {
	i %= capacity
	if i == capacity-1 {
		return 0
	}
	return i + 1
}
