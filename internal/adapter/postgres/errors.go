package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/heart-approvals/internal/domain"
)

// pgCodeErrors maps PostgreSQL error codes onto domain and context errors.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists,  // unique_violation
	"23503": domain.ErrNotFound,       // foreign_key_violation
	"23514": domain.ErrValidation,     // check_violation
	"55P03": context.DeadlineExceeded, // lock_not_available (lock_timeout)
	"57014": context.DeadlineExceeded, // query_canceled (statement_timeout)
}

// MapError wraps err with the entity and id it concerns, translating
// pgx.ErrNoRows and known PostgreSQL codes so callers can use errors.Is.
// The original error stays in the chain.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if kind, ok := pgCodeErrors[pgErr.Code]; ok {
			return fmt.Errorf("%s %s: %w: %w", entity, id, kind, err)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
