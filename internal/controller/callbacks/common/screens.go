package common

import (
	"fmt"
	"time"

	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common/formatting"
	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common/keyboard"
	"github.com/Somuah2708/Akora-sub008/internal/model"
	"github.com/go-telegram/bot/models"
)

// Callback data prefixes shared between command handlers and callback
// handlers, so both sides can rebuild the same screens.
const (
	PickMentorPrefix = "pick_mentor:" // pick_mentor:mentor_id
	PickDatePrefix   = "book_date:"   // book_date:mentor_id:2006-01-02
	PickSlotPrefix   = "book_slot:"   // book_slot:mentor_id:2006-01-02:0900:1000
	SlotTaken        = "slot_taken"   // tap on a booked slot, answer-only

	ToggleSlotPrefix = "toggle_slot:" // toggle_slot:slot_id:0|1 (target state)
	DeleteSlotPrefix = "delete_slot:" // delete_slot:slot_id
	ConfirmDelPrefix = "confirm_del:" // confirm_del:slot_id
	AddSlotDayPrefix = "addslot_day:" // addslot_day:weekday
	AddAnotherSlot   = "addslot_again"
	BackToMentors    = "back_to_mentors"
	CancelDialog     = "cancel_dialog"
)

// BuildSlotListScreen renders the resolved slots for one mentor and
// date. Free windows become booking buttons; taken ones stay visible but
// only answer with an alert. Used on first render and again after a
// booking conflict forces a re-resolve.
func BuildSlotListScreen(mentor *model.User, date time.Time, slots []*model.ResolvedSlot) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"🗓 %s\n%s's availability:",
		formatting.FormatDateWithWeekday(date),
		mentor.FirstName,
	)

	if len(slots) == 0 {
		text += "\n\nNo slots on this day. Pick another date."
	}

	kb := keyboard.NewBuilder()
	dateKey := date.Format("2006-01-02")

	for _, slot := range slots {
		if slot.IsBooked {
			kb.Row(keyboard.Button(
				fmt.Sprintf("🔒 %s (taken)", formatting.FormatTimeRange(slot.Start, slot.End)),
				SlotTaken,
			))
			continue
		}

		kb.Row(keyboard.Button(
			fmt.Sprintf("🕐 %s", formatting.FormatTimeRange(slot.Start, slot.End)),
			fmt.Sprintf("%s%d:%s:%02d%02d:%02d%02d",
				PickSlotPrefix, mentor.ID, dateKey,
				slot.Start.Hour, slot.Start.Minute,
				slot.End.Hour, slot.End.Minute),
		))
	}

	kb.Row(keyboard.BackButton("Other dates", fmt.Sprintf("%s%d", PickMentorPrefix, mentor.ID)))

	return text, kb.Build()
}

// BuildDatePickScreen renders the next seven days for a mentor as
// booking dates.
func BuildDatePickScreen(mentor *model.User, from time.Time) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("📅 Pick a date for a session with %s:", mentor.FirstName)

	kb := keyboard.NewBuilder()
	for i := 0; i < 7; i++ {
		day := from.AddDate(0, 0, i)
		kb.Row(keyboard.Button(
			formatting.FormatDateWithWeekday(day),
			fmt.Sprintf("%s%d:%s", PickDatePrefix, mentor.ID, day.Format("2006-01-02")),
		))
	}

	kb.Row(keyboard.BackButton("Back to mentors", BackToMentors))

	return text, kb.Build()
}

// BuildMentorListScreen renders the mentor pick list.
func BuildMentorListScreen(mentors []*model.User) (string, *models.InlineKeyboardMarkup) {
	if len(mentors) == 0 {
		return "😔 No mentors have published availability yet.", nil
	}

	kb := keyboard.NewBuilder()
	for _, mentor := range mentors {
		label := mentor.FirstName
		if mentor.LastName != "" {
			label += " " + mentor.LastName
		}
		kb.Row(keyboard.Button("🎓 "+label, fmt.Sprintf("%s%d", PickMentorPrefix, mentor.ID)))
	}

	return "🎓 Pick a mentor:", kb.Build()
}

// BuildMyAvailabilityScreen renders a mentor's recurring pattern with
// toggle and delete controls per slot.
func BuildMyAvailabilityScreen(slots []*model.AvailabilitySlot) (string, *models.InlineKeyboardMarkup) {
	if len(slots) == 0 {
		return "Your weekly availability is empty.\nUse /addslot to publish a slot.", nil
	}

	text := "🗓 Your weekly availability:\n"

	kb := keyboard.NewBuilder()
	for _, slot := range slots {
		// The target state rides in the callback data, so a tap applies
		// exactly what the button showed even if the screen is stale.
		status := "✅"
		toggleLabel := "Hide"
		target := 0
		if !slot.IsAvailable {
			status = "🚫"
			toggleLabel = "Show"
			target = 1
		}

		text += fmt.Sprintf("\n%s %s %s",
			status,
			formatting.WeekdayShortName(slot.DayOfWeek),
			formatting.FormatTimeRange(slot.Start, slot.End),
		)

		kb.Row(
			keyboard.Button(
				fmt.Sprintf("%s %s %s", toggleLabel,
					formatting.WeekdayShortName(slot.DayOfWeek),
					formatting.FormatTimeRange(slot.Start, slot.End)),
				fmt.Sprintf("%s%d:%d", ToggleSlotPrefix, slot.ID, target),
			),
			keyboard.Button("🗑", fmt.Sprintf("%s%d", DeleteSlotPrefix, slot.ID)),
		)
	}

	return text, kb.Build()
}

// BuildWeekdayPickScreen renders the weekday keyboard for /addslot.
func BuildWeekdayPickScreen() (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder()
	for day := 0; day <= 6; day++ {
		kb.Row(keyboard.Button(
			formatting.WeekdayName(day),
			fmt.Sprintf("%s%d", AddSlotDayPrefix, day),
		))
	}

	kb.Row(keyboard.CancelButton(CancelDialog))

	return "➕ Pick a weekday for the new recurring slot:", kb.Build()
}
