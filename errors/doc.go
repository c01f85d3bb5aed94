// Package errors provides standardized error handling patterns for the
// sliding window library.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input or contract
// violation, non-retryable), and Fatal (unrecoverable, stop processing).
//
// A pure in-memory data structure has a narrow failure surface: every error
// is synchronous and local to the call that triggered it. Almost everything
// classifies as Invalid - a caller asked for something the contract forbids,
// such as constructing a window with zero capacity or reading a logical
// index beyond the resident element count. The Transient and Fatal classes
// exist for the observability layer, where Prometheus registration can fail
// in ways the caller may want to distinguish.
//
// The classification system integrates with Go's standard error handling
// patterns, supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if capacity < 1 {
//	    return nil, errors.WrapInvalid(errors.ErrInvalidCapacity,
//	        "Window", "New", "capacity validation")
//	}
//
// Check classification when handling failures:
//
//	if errors.IsInvalid(err) {
//	    // programming error - fix the caller, do not retry
//	}
//
// Inspect full context via errors.As:
//
//	var ce *errors.ClassifiedError
//	if stderrors.As(err, &ce) {
//	    fmt.Println(ce.Component, ce.Operation, ce.Class)
//	}
//
// # Error Wrapping
//
// The Wrap helpers produce messages following the pattern
// "component.method: action failed: <cause>", preserving the original error
// for errors.Is checks against the package's sentinel values.
package errors
