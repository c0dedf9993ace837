// Package errors provides structured error types for the cdc-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). All errors are construction-time: per-tick simulation never
// fails, because fixed-width arithmetic wraps by definition and unmet
// requests are simply ignored for that tick.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConfig, errors.KindInvalidWidth).
//		Component("fifo").
//		Detail("pointer width %d below minimum %d", 2, 3).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidWidth(errors.PhaseConfig, "counter", 70, 2, 66)
//	err := errors.NotPowerOfTwo(errors.PhaseConfig, "fifo", 12)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
