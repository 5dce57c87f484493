package repository

import (
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/skala-ium/events/internal/errdefs"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err)
}

func handleError(err error) error {
	if isUniqueViolation(err) {
		return errdefs.ErrAlreadyExists
	}
	if isNotFound(err) {
		return errdefs.ErrNotFound
	}
	return fmt.Errorf("repository error: %w", err)
}

// handleConflict is used for INSERT ... ON CONFLICT DO NOTHING RETURNING,
// where an empty result means the row already existed.
func handleConflict(err error) error {
	if isNotFound(err) || isUniqueViolation(err) {
		return errdefs.ErrAlreadyExists
	}
	return fmt.Errorf("repository error: %w", err)
}
