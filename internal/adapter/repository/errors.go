package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/johnquangdev/meeting-action-tracker/internal/domain/repositories"
)

// pgForeignKeyViolation is the SQLSTATE for foreign_key_violation
const pgForeignKeyViolation = "23503"

// translateError maps driver specific errors onto repository errors
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", repositories.ErrForeignKeyViolation, pgErr.ConstraintName)
	}
	return err
}
