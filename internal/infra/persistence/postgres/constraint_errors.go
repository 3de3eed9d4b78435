package postgres

import (
	"strings"

	domainerrors "market/internal/domain/errors"
	"market/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
	sqlStateCheckViolation      = "23514"
)

// translateWriteError maps a driver error onto the domain taxonomy. Unique
// violations become conflictErr; everything else is a server error.
func translateWriteError(err error, conflictErr *domainerrors.BaseError, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return conflictErr.WithDetails(details)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrReferenceInUse.WithDetails(details)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func hasSQLState(err error, code string) bool {
	pgErr, ok := errors.AsType[*pgconn.PgError](err)

	return ok && pgErr.Code == code
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || hasSQLState(err, sqlStateUniqueViolation) {
		return true
	}

	// sqlite reports constraint failures only as text
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) || hasSQLState(err, sqlStateForeignKeyViolation) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	if hasSQLState(err, sqlStateNotNullViolation) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "not null constraint failed")
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || hasSQLState(err, sqlStateCheckViolation)
}
