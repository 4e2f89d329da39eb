// Package errs provides standardized error types shared across the application.
// It implements a consistent pattern for error creation, formatting, and unwrapping.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// The types cover the recurring failure modes of the order lifecycle engine:
// missing records, invalid values, out-of-range values, and missing required
// values. Domain-specific errors (invalid transitions, settlement failures)
// live next to the aggregates that raise them.
package errs
