package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a row referenced by id no longer exists.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateSlot is returned when inserting an availability slot that
	// collides with an existing (mentor, day, start, end) row.
	ErrDuplicateSlot = errors.New("availability slot already exists")

	// ErrSlotTaken is returned when the booking unique index rejects an
	// insert: another mentee already holds that mentor/date/time.
	ErrSlotTaken = errors.New("slot already booked")
)

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
