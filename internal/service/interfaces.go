package service

import (
	"context"
	"time"

	"github.com/Somuah2708/Akora-sub008/internal/model"
)

// AvailabilityStore contains the slot-table interactions the services
// need. Implemented by repository.AvailabilityRepository; tests provide
// in-memory fakes.
type AvailabilityStore interface {
	Insert(ctx context.Context, slot *model.AvailabilitySlot) error
	GetByID(ctx context.Context, id int64) (*model.AvailabilitySlot, error)
	ListByMentor(ctx context.Context, mentorID int64) ([]*model.AvailabilitySlot, error)
	ListActiveByMentorAndDay(ctx context.Context, mentorID int64, dayOfWeek int) ([]*model.AvailabilitySlot, error)
	UpdateAvailability(ctx context.Context, id int64, available bool) (*model.AvailabilitySlot, error)
	Delete(ctx context.Context, id int64) error
}

// BookingStore contains the booking-table interactions.
type BookingStore interface {
	Insert(ctx context.Context, booking *model.SessionBooking) error
	GetByID(ctx context.Context, id int64) (*model.SessionBooking, error)
	ListByMentorOnDate(ctx context.Context, mentorID int64, date time.Time) ([]*model.SessionBooking, error)
	// ListByMentee returns the mentee's bookings newest session first,
	// ascending by start time within a date.
	ListByMentee(ctx context.Context, menteeID int64) ([]*model.SessionBooking, error)
}
