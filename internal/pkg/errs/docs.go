// Package errs provides standardized error types shared across the order,
// billing, and parking subsystems. It implements a consistent pattern for
// error creation, formatting, and unwrapping.
//
// The package defines error types for the common failure scenarios:
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - ValueIsInvalidError: a supplied value failed validation
//   - ValueIsRequiredError: a required value was missing
//   - ValueIsOutOfRangeError: a value fell outside its allowed bounds
//   - VersionIsInvalidError: a revision value was malformed
//   - ConcurrencyConflictError: an optimistic write lost its revision race
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct carrying the error details
//   - Constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Callers branch on the sentinel, never on the message text:
//
//	foundOrder, err := repo.Get(ctx, id)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404 path
//	}
package errs
