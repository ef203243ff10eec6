package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicatePayment is returned when a second payment is inserted
	// for a booking that already has one. The payments.booking_id unique
	// index is the authoritative guard against concurrent captures.
	ErrDuplicatePayment = errors.New("payment already exists for this booking")

	// ErrDuplicatePNR is returned when a generated locator collides with
	// an existing booking. Callers regenerate and retry.
	ErrDuplicatePNR = errors.New("pnr already taken")

	// ErrDuplicateUser is returned on an email or username conflict.
	ErrDuplicateUser = errors.New("user already exists")
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func uniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}
