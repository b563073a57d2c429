package state

// UserState is the user's current position in a multi-step dialog.
type UserState string

const (
	StateNone UserState = ""

	// Mentor adding a recurring slot: weekday picked via callback, then
	// the time range is typed as text.
	StateAddSlotTime UserState = "add_slot_time"

	// Mentee booking detail capture, after a slot was picked.
	StateBookingLink  UserState = "booking_link"
	StateBookingNotes UserState = "booking_notes"
)

// Data keys used by the dialogs above.
const (
	KeySlotDay     = "slot_day"
	KeyMentorID    = "mentor_id"
	KeyDate        = "date"
	KeyStart       = "start"
	KeyEnd         = "end"
	KeyMeetingLink = "meeting_link"
)

// UserData holds a user's dialog position plus its scratch values.
// Conversation state only: no booking or availability state lives here.
type UserData struct {
	State UserState
	Data  map[string]string
}
