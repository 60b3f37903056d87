// Package errs provides standardized error types for the flower order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an order, member or catalog entry cannot be found
//   - ValueIsInvalidError: For when a value breaks a business rule
//   - ValueIsRequiredError / ValueIsOutOfRangeError: Other validation failures
//   - VersionIsInvalidError: For concurrent modification of a stored row
//   - StorageError: For file storage failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, Is() method matching the cause
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
