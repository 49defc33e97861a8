// Package errs provides standardized error types used across the service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type carrying error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Callers classify failures with errors.Is against the sentinels, which keeps
// error handling free of string matching on error text.
package errs
