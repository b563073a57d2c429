package model

import "time"

// AvailabilitySlot is one entry of a mentor's recurring weekly pattern.
// The time window is immutable after creation: changing a window means
// deleting the slot and adding a new one.
type AvailabilitySlot struct {
	ID          int64     `json:"id"`
	MentorID    int64     `json:"mentor_id"`
	DayOfWeek   int       `json:"day_of_week"` // 0 = Sunday, 6 = Saturday
	Start       TimeOfDay `json:"start_time"`
	End         TimeOfDay `json:"end_time"`
	IsRecurring bool      `json:"is_recurring"`
	IsAvailable bool      `json:"is_available"` // hidden from resolution when false
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
