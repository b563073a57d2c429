package service

import (
	"context"
	"testing"

	"github.com/Somuah2708/Akora-sub008/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAvailabilityService() (*AvailabilityService, *fakeAvailabilityStore) {
	store := newFakeAvailabilityStore()
	return NewAvailabilityService(store, zap.NewNop()), store
}

func TestAddSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("valid slot is stored recurring and available", func(t *testing.T) {
		svc, _ := newAvailabilityService()

		slot, err := svc.AddSlot(ctx, 1, 2, mustTime("09:00"), mustTime("10:00"))
		require.NoError(t, err)
		require.NotNil(t, slot)

		assert.NotZero(t, slot.ID)
		assert.Equal(t, int64(1), slot.MentorID)
		assert.Equal(t, 2, slot.DayOfWeek)
		assert.True(t, slot.IsRecurring)
		assert.True(t, slot.IsAvailable)
	})

	t.Run("start must be strictly before end", func(t *testing.T) {
		svc, store := newAvailabilityService()

		_, err := svc.AddSlot(ctx, 1, 2, mustTime("10:00"), mustTime("09:00"))
		assert.ErrorIs(t, err, ErrInvalidTimeRange)

		_, err = svc.AddSlot(ctx, 1, 2, mustTime("09:00"), mustTime("09:00"))
		assert.ErrorIs(t, err, ErrInvalidTimeRange, "zero-length window")

		slots, err := store.ListByMentor(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, slots, "rejected slots must not be stored")
	})

	t.Run("out-of-range times are rejected", func(t *testing.T) {
		svc, _ := newAvailabilityService()

		_, err := svc.AddSlot(ctx, 1, 2, model.TimeOfDay{Hour: 24, Minute: 0}, mustTime("10:00"))
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("day of week out of range is rejected", func(t *testing.T) {
		svc, _ := newAvailabilityService()

		_, err := svc.AddSlot(ctx, 1, 7, mustTime("09:00"), mustTime("10:00"))
		assert.Error(t, err)

		_, err = svc.AddSlot(ctx, 1, -1, mustTime("09:00"), mustTime("10:00"))
		assert.Error(t, err)
	})

	t.Run("exact duplicate is rejected", func(t *testing.T) {
		svc, _ := newAvailabilityService()

		_, err := svc.AddSlot(ctx, 1, 2, mustTime("09:00"), mustTime("10:00"))
		require.NoError(t, err)

		_, err = svc.AddSlot(ctx, 1, 2, mustTime("09:00"), mustTime("10:00"))
		assert.ErrorIs(t, err, ErrDuplicateSlot)

		slots, err := svc.ListSlots(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, slots, 1)
	})

	t.Run("same window on another day or for another mentor is fine", func(t *testing.T) {
		svc, _ := newAvailabilityService()

		_, err := svc.AddSlot(ctx, 1, 2, mustTime("09:00"), mustTime("10:00"))
		require.NoError(t, err)

		_, err = svc.AddSlot(ctx, 1, 3, mustTime("09:00"), mustTime("10:00"))
		assert.NoError(t, err)

		_, err = svc.AddSlot(ctx, 2, 2, mustTime("09:00"), mustTime("10:00"))
		assert.NoError(t, err)
	})
}

func TestSetAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle is applied and idempotent", func(t *testing.T) {
		svc, _ := newAvailabilityService()

		slot, err := svc.AddSlot(ctx, 1, 2, mustTime("09:00"), mustTime("10:00"))
		require.NoError(t, err)

		hidden, err := svc.SetAvailable(ctx, slot.ID, false)
		require.NoError(t, err)
		assert.False(t, hidden.IsAvailable)

		// Repeating the same toggle changes nothing.
		hidden, err = svc.SetAvailable(ctx, slot.ID, false)
		require.NoError(t, err)
		assert.False(t, hidden.IsAvailable)

		shown, err := svc.SetAvailable(ctx, slot.ID, true)
		require.NoError(t, err)
		assert.True(t, shown.IsAvailable)
	})

	t.Run("unknown slot yields NotFound", func(t *testing.T) {
		svc, _ := newAvailabilityService()

		_, err := svc.SetAvailable(ctx, 999, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRemoveSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("removed slot is gone from listings", func(t *testing.T) {
		svc, _ := newAvailabilityService()

		slot, err := svc.AddSlot(ctx, 1, 2, mustTime("09:00"), mustTime("10:00"))
		require.NoError(t, err)
		_, err = svc.AddSlot(ctx, 1, 2, mustTime("10:00"), mustTime("11:00"))
		require.NoError(t, err)

		require.NoError(t, svc.RemoveSlot(ctx, slot.ID))

		slots, err := svc.ListSlots(ctx, 1)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, mustTime("10:00"), slots[0].Start)
	})

	t.Run("double delete yields NotFound", func(t *testing.T) {
		svc, _ := newAvailabilityService()

		slot, err := svc.AddSlot(ctx, 1, 2, mustTime("09:00"), mustTime("10:00"))
		require.NoError(t, err)

		require.NoError(t, svc.RemoveSlot(ctx, slot.ID))
		assert.ErrorIs(t, svc.RemoveSlot(ctx, slot.ID), ErrNotFound)
	})
}

func TestListSlotsIncludesHidden(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAvailabilityService()

	first, err := svc.AddSlot(ctx, 1, 2, mustTime("09:00"), mustTime("10:00"))
	require.NoError(t, err)
	_, err = svc.AddSlot(ctx, 1, 2, mustTime("10:00"), mustTime("11:00"))
	require.NoError(t, err)

	_, err = svc.SetAvailable(ctx, first.ID, false)
	require.NoError(t, err)

	slots, err := svc.ListSlots(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, slots, 2, "the editor view keeps hidden slots visible")
}
