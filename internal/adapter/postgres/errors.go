package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

// SQLSTATE codes with a domain meaning.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// MapError translates a pgx error into a domain error, prefixed with the
// entity and ref (an id or a rendered composite key). Context cancellation
// and unrecognised errors are wrapped unchanged.
func MapError(err error, entity string, ref any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %v: %w", entity, ref, classify(err))
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return domain.ErrAlreadyExists
	case codeForeignKeyViolation:
		// A dangling reference, e.g. favoriting a facility that was removed.
		return domain.ErrNotFound
	case codeNotNullViolation:
		return domain.NewValidationError(violatedField(pgErr), "required")
	case codeCheckViolation:
		return domain.NewValidationError(violatedField(pgErr), "out of range")
	}
	return err
}

func violatedField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return pgErr.TableName
}
