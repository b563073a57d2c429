package repository

import (
	"context"
	"fmt"

	"github.com/Somuah2708/Akora-sub008/internal/model"
	"github.com/Somuah2708/Akora-sub008/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AvailabilityRepository manages recurring availability slots.
type AvailabilityRepository struct {
	base.Repository
}

func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{Repository: base.NewRepository(pool)}
}

// Insert creates a new availability slot. The slot's time window is
// immutable afterwards: edits go through Delete plus a fresh Insert.
func (r *AvailabilityRepository) Insert(ctx context.Context, slot *model.AvailabilitySlot) error {
	query := `
		INSERT INTO availability_slots (mentor_id, day_of_week, start_hour, start_minute, end_hour, end_minute, is_recurring, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.QueryRow(
		ctx, query,
		slot.MentorID,
		slot.DayOfWeek,
		slot.Start.Hour,
		slot.Start.Minute,
		slot.End.Hour,
		slot.End.Minute,
		slot.IsRecurring,
		slot.IsAvailable,
	).Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("insert availability slot: %w", err)
	}

	return nil
}

// GetByID gets a slot by ID.
func (r *AvailabilityRepository) GetByID(ctx context.Context, id int64) (*model.AvailabilitySlot, error) {
	query := `
		SELECT id, mentor_id, day_of_week, start_hour, start_minute, end_hour, end_minute, is_recurring, is_available, created_at, updated_at
		FROM availability_slots
		WHERE id = $1
	`

	slot := &model.AvailabilitySlot{}
	err := r.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.MentorID,
		&slot.DayOfWeek,
		&slot.Start.Hour,
		&slot.Start.Minute,
		&slot.End.Hour,
		&slot.End.Minute,
		&slot.IsRecurring,
		&slot.IsAvailable,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)

	if base.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get availability slot by id: %w", err)
	}

	return slot, nil
}

// ListByMentor gets a mentor's whole recurring pattern, hidden slots
// included, ordered by weekday and start time.
func (r *AvailabilityRepository) ListByMentor(ctx context.Context, mentorID int64) ([]*model.AvailabilitySlot, error) {
	query := `
		SELECT id, mentor_id, day_of_week, start_hour, start_minute, end_hour, end_minute, is_recurring, is_available, created_at, updated_at
		FROM availability_slots
		WHERE mentor_id = $1 AND is_recurring = true
		ORDER BY day_of_week, start_hour, start_minute, end_hour, end_minute
	`

	rows, err := r.Query(ctx, query, mentorID)
	if err != nil {
		return nil, fmt.Errorf("list availability slots by mentor: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// ListActiveByMentorAndDay gets the slots the resolver projects onto a
// date: recurring, currently available, matching weekday.
func (r *AvailabilityRepository) ListActiveByMentorAndDay(ctx context.Context, mentorID int64, dayOfWeek int) ([]*model.AvailabilitySlot, error) {
	query := `
		SELECT id, mentor_id, day_of_week, start_hour, start_minute, end_hour, end_minute, is_recurring, is_available, created_at, updated_at
		FROM availability_slots
		WHERE mentor_id = $1 AND day_of_week = $2 AND is_recurring = true AND is_available = true
		ORDER BY start_hour, start_minute, end_hour, end_minute
	`

	rows, err := r.Query(ctx, query, mentorID, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("list active availability slots: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// UpdateAvailability flips the is_available toggle. Idempotent.
func (r *AvailabilityRepository) UpdateAvailability(ctx context.Context, id int64, available bool) (*model.AvailabilitySlot, error) {
	query := `
		UPDATE availability_slots
		SET is_available = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, mentor_id, day_of_week, start_hour, start_minute, end_hour, end_minute, is_recurring, is_available, created_at, updated_at
	`

	slot := &model.AvailabilitySlot{}
	err := r.QueryRow(ctx, query, id, available).Scan(
		&slot.ID,
		&slot.MentorID,
		&slot.DayOfWeek,
		&slot.Start.Hour,
		&slot.Start.Minute,
		&slot.End.Hour,
		&slot.End.Minute,
		&slot.IsRecurring,
		&slot.IsAvailable,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)

	if base.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update slot availability: %w", err)
	}

	return slot, nil
}

// Delete removes a slot outright. Bookings made from it are untouched.
func (r *AvailabilityRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM availability_slots WHERE id = $1`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete availability slot: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanSlots(rows pgx.Rows) ([]*model.AvailabilitySlot, error) {
	var slots []*model.AvailabilitySlot
	for rows.Next() {
		slot := &model.AvailabilitySlot{}
		err := rows.Scan(
			&slot.ID,
			&slot.MentorID,
			&slot.DayOfWeek,
			&slot.Start.Hour,
			&slot.Start.Minute,
			&slot.End.Hour,
			&slot.End.Minute,
			&slot.IsRecurring,
			&slot.IsAvailable,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan availability slot: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate availability slots: %w", err)
	}

	return slots, nil
}
