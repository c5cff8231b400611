// Package errs provides the error taxonomy of the commerce core. It implements
// a consistent pattern for error creation, formatting, and unwrapping that is
// used throughout the application.
//
// The package distinguishes the recoverable domain failures the caller is
// expected to handle:
//   - ValidationError: a field fails a declared constraint at the entity boundary
//   - InvalidStateTransitionError: a status change from a terminal-guarded state
//   - ConflictError: a uniqueness constraint violated at commit time
//   - ConcurrentModificationError: an optimistic version mismatch at commit time
//   - ObjectNotFoundError: an entity lookup misses
//
// plus precondition-style errors for programmer mistakes (ValueIsRequiredError,
// ValueIsInvalidError, ValueIsOutOfRangeError).
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// All errors are raised synchronously at the point of violation and propagate
// to the immediate caller; nothing in this codebase swallows them or retries
// internally.
package errs
