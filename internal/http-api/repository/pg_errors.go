package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// foreignKeyViolation returns the violated constraint name when err is a
// PostgreSQL foreign-key violation.
func foreignKeyViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
