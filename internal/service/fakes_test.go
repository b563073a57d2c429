package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Somuah2708/Akora-sub008/internal/model"
	"github.com/Somuah2708/Akora-sub008/internal/repository"
)

// fakeAvailabilityStore is an in-memory AvailabilityStore that enforces
// the same uniqueness rules as the real table.
type fakeAvailabilityStore struct {
	mu     sync.Mutex
	nextID int64
	slots  map[int64]*model.AvailabilitySlot
}

func newFakeAvailabilityStore() *fakeAvailabilityStore {
	return &fakeAvailabilityStore{slots: make(map[int64]*model.AvailabilitySlot)}
}

func (f *fakeAvailabilityStore) Insert(_ context.Context, slot *model.AvailabilitySlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.slots {
		if existing.MentorID == slot.MentorID &&
			existing.DayOfWeek == slot.DayOfWeek &&
			existing.Start.Equal(slot.Start) &&
			existing.End.Equal(slot.End) {
			return repository.ErrDuplicateSlot
		}
	}

	f.nextID++
	slot.ID = f.nextID
	slot.CreatedAt = time.Now()
	slot.UpdatedAt = slot.CreatedAt
	stored := *slot
	f.slots[slot.ID] = &stored
	return nil
}

func (f *fakeAvailabilityStore) GetByID(_ context.Context, id int64) (*model.AvailabilitySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slot, ok := f.slots[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *slot
	return &out, nil
}

func (f *fakeAvailabilityStore) ListByMentor(_ context.Context, mentorID int64) ([]*model.AvailabilitySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*model.AvailabilitySlot
	for _, slot := range f.slots {
		if slot.MentorID == mentorID && slot.IsRecurring {
			copied := *slot
			out = append(out, &copied)
		}
	}
	sortSlots(out)
	return out, nil
}

func (f *fakeAvailabilityStore) ListActiveByMentorAndDay(_ context.Context, mentorID int64, dayOfWeek int) ([]*model.AvailabilitySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*model.AvailabilitySlot
	for _, slot := range f.slots {
		if slot.MentorID == mentorID && slot.DayOfWeek == dayOfWeek && slot.IsRecurring && slot.IsAvailable {
			copied := *slot
			out = append(out, &copied)
		}
	}
	sortSlots(out)
	return out, nil
}

func (f *fakeAvailabilityStore) UpdateAvailability(_ context.Context, id int64, available bool) (*model.AvailabilitySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slot, ok := f.slots[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	slot.IsAvailable = available
	slot.UpdatedAt = time.Now()
	out := *slot
	return &out, nil
}

func (f *fakeAvailabilityStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.slots[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.slots, id)
	return nil
}

func sortSlots(slots []*model.AvailabilitySlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].DayOfWeek != slots[j].DayOfWeek {
			return slots[i].DayOfWeek < slots[j].DayOfWeek
		}
		if !slots[i].Start.Equal(slots[j].Start) {
			return slots[i].Start.Before(slots[j].Start)
		}
		return slots[i].End.Before(slots[j].End)
	})
}

// fakeBookingStore is an in-memory BookingStore. Insert holds the mutex
// for the whole uniqueness check plus write, mirroring the atomicity of
// the real unique index.
type fakeBookingStore struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[int64]*model.SessionBooking
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[int64]*model.SessionBooking)}
}

func (f *fakeBookingStore) Insert(_ context.Context, booking *model.SessionBooking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.bookings {
		if existing.MentorID == booking.MentorID &&
			existing.SessionDate.Equal(booking.SessionDate) &&
			existing.Start.Equal(booking.Start) &&
			existing.End.Equal(booking.End) {
			return repository.ErrSlotTaken
		}
	}

	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = time.Now()
	stored := *booking
	f.bookings[booking.ID] = &stored
	return nil
}

func (f *fakeBookingStore) GetByID(_ context.Context, id int64) (*model.SessionBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *booking
	return &out, nil
}

func (f *fakeBookingStore) ListByMentorOnDate(_ context.Context, mentorID int64, date time.Time) ([]*model.SessionBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*model.SessionBooking
	for _, booking := range f.bookings {
		if booking.MentorID == mentorID && booking.SessionDate.Equal(date) {
			copied := *booking
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) ListByMentee(_ context.Context, menteeID int64) ([]*model.SessionBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*model.SessionBooking
	for _, booking := range f.bookings {
		if booking.MenteeID == menteeID {
			copied := *booking
			out = append(out, &copied)
		}
	}
	// Newest session first, matching the real store's ordering.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SessionDate.Equal(out[j].SessionDate) {
			return out[i].SessionDate.After(out[j].SessionDate)
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

func (f *fakeBookingStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func mustTime(t string) model.TimeOfDay {
	parsed, err := model.ParseTimeOfDay(t)
	if err != nil {
		panic(err)
	}
	return parsed
}
