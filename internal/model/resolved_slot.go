package model

// ResolvedSlot is a recurring slot projected onto one concrete calendar
// date, annotated with booked status. Derived, never persisted.
type ResolvedSlot struct {
	SlotID    int64     `json:"slot_id"`
	DayOfWeek int       `json:"day_of_week"`
	Start     TimeOfDay `json:"start_time"`
	End       TimeOfDay `json:"end_time"`
	IsBooked  bool      `json:"is_booked"`
}
