package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Somuah2708/Akora-sub008/internal/model"
	"github.com/Somuah2708/Akora-sub008/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	base.Repository
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{Repository: base.NewRepository(pool)}
}

// Insert creates a session booking in a single round trip. The unique
// index on (mentor_id, session_date, start, end) is what guarantees
// at-most-one-winner when two mentees race for the same slot, so there
// is no check-then-insert here.
func (r *BookingRepository) Insert(ctx context.Context, booking *model.SessionBooking) error {
	query := `
		INSERT INTO session_bookings (request_id, mentor_id, mentee_id, session_date, start_hour, start_minute, end_hour, end_minute, meeting_link, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		booking.RequestID,
		booking.MentorID,
		booking.MenteeID,
		booking.SessionDate,
		booking.Start.Hour,
		booking.Start.Minute,
		booking.End.Hour,
		booking.End.Minute,
		booking.MeetingLink,
		booking.Notes,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

// GetByID gets a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*model.SessionBooking, error) {
	query := `
		SELECT id, request_id, mentor_id, mentee_id, session_date, start_hour, start_minute, end_hour, end_minute, meeting_link, notes, created_at
		FROM session_bookings
		WHERE id = $1
	`

	booking := &model.SessionBooking{}
	err := r.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.RequestID,
		&booking.MentorID,
		&booking.MenteeID,
		&booking.SessionDate,
		&booking.Start.Hour,
		&booking.Start.Minute,
		&booking.End.Hour,
		&booking.End.Minute,
		&booking.MeetingLink,
		&booking.Notes,
		&booking.CreatedAt,
	)

	if base.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	return booking, nil
}

// ListByMentorOnDate gets a mentor's bookings for one calendar date,
// which is everything the resolver needs to mark slots booked.
func (r *BookingRepository) ListByMentorOnDate(ctx context.Context, mentorID int64, date time.Time) ([]*model.SessionBooking, error) {
	query := `
		SELECT id, request_id, mentor_id, mentee_id, session_date, start_hour, start_minute, end_hour, end_minute, meeting_link, notes, created_at
		FROM session_bookings
		WHERE mentor_id = $1 AND session_date = $2
		ORDER BY start_hour, start_minute
	`

	rows, err := r.Query(ctx, query, mentorID, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings by mentor on date: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByMentee gets all of a mentee's bookings, newest session first.
func (r *BookingRepository) ListByMentee(ctx context.Context, menteeID int64) ([]*model.SessionBooking, error) {
	query := `
		SELECT id, request_id, mentor_id, mentee_id, session_date, start_hour, start_minute, end_hour, end_minute, meeting_link, notes, created_at
		FROM session_bookings
		WHERE mentee_id = $1
		ORDER BY session_date DESC, start_hour, start_minute
	`

	rows, err := r.Query(ctx, query, menteeID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by mentee: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]*model.SessionBooking, error) {
	var bookings []*model.SessionBooking
	for rows.Next() {
		booking := &model.SessionBooking{}
		err := rows.Scan(
			&booking.ID,
			&booking.RequestID,
			&booking.MentorID,
			&booking.MenteeID,
			&booking.SessionDate,
			&booking.Start.Hour,
			&booking.Start.Minute,
			&booking.End.Hour,
			&booking.End.Minute,
			&booking.MeetingLink,
			&booking.Notes,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}
