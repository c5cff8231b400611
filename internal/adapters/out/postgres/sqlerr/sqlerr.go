// Package sqlerr translates low-level PostgreSQL errors into the domain
// error taxonomy. Repositories funnel every write error through here so
// callers see ConflictError instead of driver internals.
package sqlerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"commerce/internal/pkg/errs"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// Translate maps a write error to the domain taxonomy. A unique-constraint
// violation becomes a ConflictError naming the violated constraint; anything
// else passes through unchanged. The value parameter, when known, names the
// offending input for the error message.
func Translate(err error, value string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewConflictErrorWithCause(pgErr.ConstraintName, value, err)
	}

	return err
}

// IsUniqueViolation reports whether the error is a unique constraint failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
