// Package postgres implements the store interfaces on PostgreSQL via sqlx.
package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/itlaf/fotostudio/internal/store"
)

// Postgres error codes for constraint failures.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// mapErr converts driver-level errors to store sentinels. A foreign key
// violation means the referenced row does not exist, so it maps to not found.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return store.ErrDuplicate
		case foreignKeyViolation:
			return store.ErrNotFound
		}
	}
	return err
}
