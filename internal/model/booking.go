package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionBooking is a confirmed reservation of one resolved slot by one
// mentee. Created exactly once per successful booking attempt and never
// updated afterwards by this service.
type SessionBooking struct {
	ID          int64     `json:"id"`
	RequestID   uuid.UUID `json:"request_id"` // originating mentorship-request context, passed through
	MentorID    int64     `json:"mentor_id"`
	MenteeID    int64     `json:"mentee_id"`
	SessionDate time.Time `json:"session_date"` // date only, midnight UTC
	Start       TimeOfDay `json:"start_time"`
	End         TimeOfDay `json:"end_time"`
	MeetingLink string    `json:"meeting_link,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
