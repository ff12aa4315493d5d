// Package errs provides standardized error types for the shop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValueIsInvalid) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for error-chain support
//
// This keeps error classification uniform across the domain model, the
// persistence adapters, and the retrieval layer.
package errs
