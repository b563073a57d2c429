package service

import (
	"context"
	"errors"
	"time"

	"github.com/Somuah2708/Akora-sub008/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService commits a mentee's slot choice as a durable session
// booking with at-most-one-winner semantics.
type BookingService struct {
	bookings BookingStore
	logger   *zap.Logger
}

func NewBookingService(bookings BookingStore, logger *zap.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		logger:   logger,
	}
}

// BookingParams carries everything the commit needs. Mentor and mentee
// identity are explicit parameters; there is no ambient user context.
type BookingParams struct {
	RequestID   uuid.UUID
	MentorID    int64
	MenteeID    int64
	Date        time.Time
	Start       model.TimeOfDay
	End         model.TimeOfDay
	MeetingLink string
	Notes       string
}

// Book creates the booking with a single atomic insert. When two mentees
// race for the same mentor/date/window, the store's uniqueness guarantee
// lets exactly one through; the rest get ErrSlotAlreadyBooked so the
// caller can re-resolve and offer fresh options. Exactly one row is
// written on success, zero on any failure.
func (s *BookingService) Book(ctx context.Context, params BookingParams) (*model.SessionBooking, error) {
	if !params.Start.Valid() || !params.End.Valid() || !params.Start.Before(params.End) {
		return nil, ErrInvalidTimeRange
	}

	booking := &model.SessionBooking{
		RequestID:   params.RequestID,
		MentorID:    params.MentorID,
		MenteeID:    params.MenteeID,
		SessionDate: dateOnly(params.Date),
		Start:       params.Start,
		End:         params.End,
		MeetingLink: params.MeetingLink,
		Notes:       params.Notes,
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		if errors.Is(err, ErrSlotAlreadyBooked) {
			// Routine conflict, but it stays visible in logs.
			s.logger.Info("Booking conflict",
				zap.Int64("mentor_id", params.MentorID),
				zap.Int64("mentee_id", params.MenteeID),
				zap.String("date", booking.SessionDate.Format("2006-01-02")),
				zap.String("start", params.Start.String()),
			)
		}
		return nil, err
	}

	s.logger.Info("Session booked",
		zap.Int64("booking_id", booking.ID),
		zap.String("request_id", params.RequestID.String()),
		zap.Int64("mentor_id", params.MentorID),
		zap.Int64("mentee_id", params.MenteeID),
		zap.String("date", booking.SessionDate.Format("2006-01-02")),
		zap.String("start", params.Start.String()),
		zap.String("end", params.End.String()),
	)

	return booking, nil
}

// ListMenteeBookings gets a mentee's booking history.
func (s *BookingService) ListMenteeBookings(ctx context.Context, menteeID int64) ([]*model.SessionBooking, error) {
	return s.bookings.ListByMentee(ctx, menteeID)
}
