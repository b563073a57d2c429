package service

import (
	"errors"

	"github.com/Somuah2708/Akora-sub008/internal/repository"
)

// ErrInvalidTimeRange rejects slots and bookings where the start does not
// precede the end. Caught locally, never reaches the store.
var ErrInvalidTimeRange = errors.New("start time must be before end time")

// Store-level conflicts surface through the same sentinels the
// repositories return, so callers check one set of errors with errors.Is.
var (
	ErrDuplicateSlot     = repository.ErrDuplicateSlot
	ErrSlotAlreadyBooked = repository.ErrSlotTaken
	ErrNotFound          = repository.ErrNotFound
)
