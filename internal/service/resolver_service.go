package service

import (
	"context"
	"sort"
	"time"

	"github.com/Somuah2708/Akora-sub008/internal/model"
	"go.uber.org/zap"
)

// ResolverService projects a mentor's recurring weekly pattern onto one
// concrete calendar date and marks which windows are already booked.
type ResolverService struct {
	slots    AvailabilityStore
	bookings BookingStore
	logger   *zap.Logger
}

func NewResolverService(slots AvailabilityStore, bookings BookingStore, logger *zap.Logger) *ResolverService {
	return &ResolverService{
		slots:    slots,
		bookings: bookings,
		logger:   logger,
	}
}

// Resolve returns the bookable windows for mentorID on date, ordered by
// start time. A mentor with nothing on that weekday yields an empty
// list, not an error. Read-only: store state is never mutated here.
func (s *ResolverService) Resolve(ctx context.Context, mentorID int64, date time.Time) ([]*model.ResolvedSlot, error) {
	day := dateOnly(date)
	weekday := int(day.Weekday())

	slots, err := s.slots.ListActiveByMentorAndDay(ctx, mentorID, weekday)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListByMentorOnDate(ctx, mentorID, day)
	if err != nil {
		return nil, err
	}

	resolved := make([]*model.ResolvedSlot, 0, len(slots))
	for _, slot := range slots {
		resolved = append(resolved, &model.ResolvedSlot{
			SlotID:    slot.ID,
			DayOfWeek: slot.DayOfWeek,
			Start:     slot.Start,
			End:       slot.End,
			IsBooked:  isBooked(slot, bookings),
		})
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		if !resolved[i].Start.Equal(resolved[j].Start) {
			return resolved[i].Start.Before(resolved[j].Start)
		}
		return resolved[i].End.Before(resolved[j].End)
	})

	s.logger.Debug("Resolved availability",
		zap.Int64("mentor_id", mentorID),
		zap.String("date", day.Format("2006-01-02")),
		zap.Int("slots", len(resolved)),
	)

	return resolved, nil
}

// isBooked reports whether any booking on the target date covers the
// slot's exact window.
func isBooked(slot *model.AvailabilitySlot, bookings []*model.SessionBooking) bool {
	for _, b := range bookings {
		if b.Start.Equal(slot.Start) && b.End.Equal(slot.End) {
			return true
		}
	}
	return false
}

// dateOnly strips the time-of-day part so session_date comparisons are
// done on whole calendar days.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
