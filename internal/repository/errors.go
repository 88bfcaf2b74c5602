package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicateKey is returned when an insert collides with a unique index
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrMissingReference is returned when an insert points at a row that does not exist
	ErrMissingReference = errors.New("referenced row does not exist")
)

// translateError maps constraint violations to repository errors, leaving everything else untouched
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return errors.Join(ErrDuplicateKey, err)
	case pgerrcode.ForeignKeyViolation:
		return errors.Join(ErrMissingReference, err)
	default:
		return err
	}
}
