package service

import (
	"context"
	"fmt"

	"github.com/Somuah2708/Akora-sub008/internal/model"
	"go.uber.org/zap"
)

// AvailabilityService is the mentor-facing editor for the recurring
// weekly pattern. It owns slot validation only; booking logic lives in
// BookingService.
type AvailabilityService struct {
	slots  AvailabilityStore
	logger *zap.Logger
}

func NewAvailabilityService(slots AvailabilityStore, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		slots:  slots,
		logger: logger,
	}
}

// AddSlot adds one recurring weekly slot. Duplicates of an existing
// (day, start, end) for the same mentor are rejected with
// ErrDuplicateSlot rather than treated as a no-op, so the mentor sees
// that the slot was already there.
func (s *AvailabilityService) AddSlot(ctx context.Context, mentorID int64, dayOfWeek int, start, end model.TimeOfDay) (*model.AvailabilitySlot, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, fmt.Errorf("day of week %d out of range", dayOfWeek)
	}
	if !start.Valid() || !end.Valid() || !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}

	slot := &model.AvailabilitySlot{
		MentorID:    mentorID,
		DayOfWeek:   dayOfWeek,
		Start:       start,
		End:         end,
		IsRecurring: true,
		IsAvailable: true,
	}

	if err := s.slots.Insert(ctx, slot); err != nil {
		return nil, err
	}

	s.logger.Info("Availability slot added",
		zap.Int64("slot_id", slot.ID),
		zap.Int64("mentor_id", mentorID),
		zap.Int("day_of_week", dayOfWeek),
		zap.String("start", start.String()),
		zap.String("end", end.String()),
	)

	return slot, nil
}

// SetAvailable flips the slot's visibility toggle. Idempotent, and never
// cascades to existing bookings: a slot hidden after a booking was made
// does not cancel that booking.
func (s *AvailabilityService) SetAvailable(ctx context.Context, slotID int64, available bool) (*model.AvailabilitySlot, error) {
	slot, err := s.slots.UpdateAvailability(ctx, slotID, available)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Availability slot toggled",
		zap.Int64("slot_id", slotID),
		zap.Bool("is_available", available),
	)

	return slot, nil
}

// RemoveSlot hard-deletes a slot. Bookings already made from it remain
// valid historical records.
func (s *AvailabilityService) RemoveSlot(ctx context.Context, slotID int64) error {
	if err := s.slots.Delete(ctx, slotID); err != nil {
		return err
	}

	s.logger.Info("Availability slot removed", zap.Int64("slot_id", slotID))
	return nil
}

// GetSlot gets one slot by id.
func (s *AvailabilityService) GetSlot(ctx context.Context, slotID int64) (*model.AvailabilitySlot, error) {
	return s.slots.GetByID(ctx, slotID)
}

// ListSlots gets a mentor's whole pattern, hidden slots included.
func (s *AvailabilityService) ListSlots(ctx context.Context, mentorID int64) ([]*model.AvailabilitySlot, error) {
	return s.slots.ListByMentor(ctx, mentorID)
}
