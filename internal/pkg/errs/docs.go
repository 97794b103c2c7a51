// Package errs provides standardized error types for the shipping-order
// administration backend. It implements a consistent pattern for error
// creation, formatting, and unwrapping that is used throughout the application.
//
// The package defines one sentinel plus one struct type per error class:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     invalid-input failures carrying the offending parameter name
//   - ObjectNotFoundError: operations targeting a nonexistent record
//   - ObjectAlreadyExistsError: uniqueness-constraint conflicts
//   - ObjectHasDependentsError: deletes blocked by referencing records
//   - ForbiddenError: operations rejected by role policy
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectAlreadyExists)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() for formatting and Unwrap() returning the sentinel, so callers
//     classify errors with errors.Is against the sentinels
//
// The HTTP adapter maps sentinels onto status codes; nothing outside this
// package inspects error strings.
package errs
