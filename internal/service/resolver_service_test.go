package service

import (
	"context"
	"testing"
	"time"

	"github.com/Somuah2708/Akora-sub008/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// 2026-09-08 is a Tuesday.
var tuesday = time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

func newResolverFixture() (*ResolverService, *fakeAvailabilityStore, *fakeBookingStore) {
	slots := newFakeAvailabilityStore()
	bookings := newFakeBookingStore()
	return NewResolverService(slots, bookings, zap.NewNop()), slots, bookings
}

func addSlot(t *testing.T, store *fakeAvailabilityStore, mentorID int64, day int, start, end string) *model.AvailabilitySlot {
	t.Helper()
	slot := &model.AvailabilitySlot{
		MentorID:    mentorID,
		DayOfWeek:   day,
		Start:       mustTime(start),
		End:         mustTime(end),
		IsRecurring: true,
		IsAvailable: true,
	}
	require.NoError(t, store.Insert(context.Background(), slot))
	return slot
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("only the target weekday's slots appear", func(t *testing.T) {
		svc, slots, _ := newResolverFixture()

		tue := addSlot(t, slots, 1, 2, "09:00", "10:00")
		addSlot(t, slots, 1, 3, "09:00", "10:00") // Wednesday, must not leak in

		resolved, err := svc.Resolve(ctx, 1, tuesday)
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, tue.ID, resolved[0].SlotID)
		assert.Equal(t, 2, resolved[0].DayOfWeek)
	})

	t.Run("hidden slots are excluded", func(t *testing.T) {
		svc, slots, _ := newResolverFixture()

		visible := addSlot(t, slots, 1, 2, "09:00", "10:00")
		hidden := addSlot(t, slots, 1, 2, "11:00", "12:00")
		_, err := slots.UpdateAvailability(ctx, hidden.ID, false)
		require.NoError(t, err)

		resolved, err := svc.Resolve(ctx, 1, tuesday)
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, visible.ID, resolved[0].SlotID)
	})

	t.Run("another mentor's slots are excluded", func(t *testing.T) {
		svc, slots, _ := newResolverFixture()

		addSlot(t, slots, 1, 2, "09:00", "10:00")
		addSlot(t, slots, 2, 2, "09:00", "10:00")

		resolved, err := svc.Resolve(ctx, 1, tuesday)
		require.NoError(t, err)
		assert.Len(t, resolved, 1)
	})

	t.Run("booked windows are marked, only on exact match", func(t *testing.T) {
		svc, slots, bookings := newResolverFixture()

		addSlot(t, slots, 1, 2, "09:00", "10:00")
		addSlot(t, slots, 1, 2, "10:00", "11:00")

		require.NoError(t, bookings.Insert(ctx, &model.SessionBooking{
			RequestID:   uuid.New(),
			MentorID:    1,
			MenteeID:    42,
			SessionDate: tuesday,
			Start:       mustTime("09:00"),
			End:         mustTime("10:00"),
		}))

		resolved, err := svc.Resolve(ctx, 1, tuesday)
		require.NoError(t, err)
		require.Len(t, resolved, 2)
		assert.True(t, resolved[0].IsBooked, "09:00 window was booked")
		assert.False(t, resolved[1].IsBooked, "10:00 window is still free")
	})

	t.Run("booking on another date does not mark the slot", func(t *testing.T) {
		svc, slots, bookings := newResolverFixture()

		addSlot(t, slots, 1, 2, "09:00", "10:00")

		nextTuesday := tuesday.AddDate(0, 0, 7)
		require.NoError(t, bookings.Insert(ctx, &model.SessionBooking{
			RequestID:   uuid.New(),
			MentorID:    1,
			MenteeID:    42,
			SessionDate: nextTuesday,
			Start:       mustTime("09:00"),
			End:         mustTime("10:00"),
		}))

		resolved, err := svc.Resolve(ctx, 1, tuesday)
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.False(t, resolved[0].IsBooked)
	})

	t.Run("result is ordered by start time", func(t *testing.T) {
		svc, slots, _ := newResolverFixture()

		addSlot(t, slots, 1, 2, "14:00", "15:00")
		addSlot(t, slots, 1, 2, "09:00", "10:00")
		addSlot(t, slots, 1, 2, "11:30", "12:30")

		resolved, err := svc.Resolve(ctx, 1, tuesday)
		require.NoError(t, err)
		require.Len(t, resolved, 3)
		assert.Equal(t, mustTime("09:00"), resolved[0].Start)
		assert.Equal(t, mustTime("11:30"), resolved[1].Start)
		assert.Equal(t, mustTime("14:00"), resolved[2].Start)
	})

	t.Run("no slots on that weekday yields an empty list", func(t *testing.T) {
		svc, slots, _ := newResolverFixture()

		addSlot(t, slots, 1, 5, "09:00", "10:00") // Friday only

		resolved, err := svc.Resolve(ctx, 1, tuesday)
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})

	t.Run("time-of-day on the date argument is ignored", func(t *testing.T) {
		svc, slots, bookings := newResolverFixture()

		addSlot(t, slots, 1, 2, "09:00", "10:00")
		require.NoError(t, bookings.Insert(ctx, &model.SessionBooking{
			RequestID:   uuid.New(),
			MentorID:    1,
			MenteeID:    42,
			SessionDate: tuesday,
			Start:       mustTime("09:00"),
			End:         mustTime("10:00"),
		}))

		lateInTheDay := tuesday.Add(18*time.Hour + 45*time.Minute)
		resolved, err := svc.Resolve(ctx, 1, lateInTheDay)
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.True(t, resolved[0].IsBooked)
	})
}
