package handlers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common"
	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common/formatting"
	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common/keyboard"
	"github.com/Somuah2708/Akora-sub008/internal/controller/state"
	"github.com/Somuah2708/Akora-sub008/internal/model"
	"github.com/Somuah2708/Akora-sub008/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var timeRangePattern = regexp.MustCompile(`^\s*(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})\s*$`)

// HandleTextMessage routes free-form text to whichever dialog the user
// is in. Users outside a dialog get a hint instead.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID

	switch h.stateManager.GetState(telegramID) {
	case state.StateAddSlotTime:
		h.handleAddSlotTime(ctx, b, update)
	case state.StateBookingLink:
		h.handleBookingLink(ctx, b, update)
	case state.StateBookingNotes:
		h.handleBookingNotes(ctx, b, update)
	default:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "Use /book to book a session or /help for all commands.",
		})
	}
}

// handleAddSlotTime finishes the /addslot dialog: the weekday is in the
// dialog state, the message text carries the "HH:MM-HH:MM" window.
func (h *Handlers) handleAddSlotTime(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	user, err := h.requireUser(ctx, b, update)
	if err != nil {
		return
	}

	dayValue, ok := h.stateManager.GetData(telegramID, state.KeySlotDay)
	if !ok {
		h.stateManager.ClearState(telegramID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "The dialog expired. Start again with /addslot.",
		})
		return
	}
	day, _ := strconv.Atoi(dayValue)

	match := timeRangePattern.FindStringSubmatch(update.Message.Text)
	if match == nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Please send the slot as HH:MM-HH:MM, for example 09:00-10:00.",
		})
		return
	}

	startTime, err := model.ParseTimeOfDay(match[1])
	if err == nil {
		var endTime model.TimeOfDay
		endTime, err = model.ParseTimeOfDay(match[2])
		if err == nil {
			h.finishAddSlot(ctx, b, chatID, telegramID, user.ID, day, startTime, endTime)
			return
		}
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "That is not a valid time. Use the 24-hour clock, e.g. 14:30-15:30.",
	})
}

func (h *Handlers) finishAddSlot(ctx context.Context, b *bot.Bot, chatID any, telegramID, mentorID int64, day int, startTime, endTime model.TimeOfDay) {
	slot, err := h.availabilityService.AddSlot(ctx, mentorID, day, startTime, endTime)

	switch {
	case errors.Is(err, service.ErrInvalidTimeRange):
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ The start time must be before the end time. Try again:",
		})
		return
	case errors.Is(err, service.ErrDuplicateSlot):
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text: fmt.Sprintf("⚠️ You already have %s %s in your pattern.",
				formatting.WeekdayName(day), formatting.FormatTimeRange(startTime, endTime)),
		})
		return
	case err != nil:
		h.logger.Error("Failed to add slot", zap.Error(err), zap.Int64("mentor_id", mentorID))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Could not save the slot. Please try again.",
		})
		return
	}

	h.stateManager.ClearState(telegramID)

	againKeyboard := keyboard.NewBuilder().
		Row(keyboard.Button("➕ Add another", common.AddAnotherSlot)).
		Build()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf("✅ Added: every %s, %s.\n\nMentees can book it from now on.",
			formatting.WeekdayName(slot.DayOfWeek),
			formatting.FormatTimeRange(slot.Start, slot.End)),
		ReplyMarkup: againKeyboard,
	})
}

// handleBookingLink captures the optional meeting link. "skip" or "-"
// leaves it empty.
func (h *Handlers) handleBookingLink(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID

	link := strings.TrimSpace(update.Message.Text)
	if strings.EqualFold(link, "skip") || link == "-" {
		link = ""
	}

	h.stateManager.SetData(telegramID, state.KeyMeetingLink, link)
	h.stateManager.SetState(telegramID, state.StateBookingNotes)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   "📝 Any notes for your mentor? Send them now, or \"skip\".",
	})
}

// handleBookingNotes captures the optional notes and commits the
// booking.
func (h *Handlers) handleBookingNotes(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	user, err := h.requireUser(ctx, b, update)
	if err != nil {
		return
	}

	notes := strings.TrimSpace(update.Message.Text)
	if strings.EqualFold(notes, "skip") || notes == "-" {
		notes = ""
	}

	mentorValue, ok1 := h.stateManager.GetData(telegramID, state.KeyMentorID)
	dateValue, ok2 := h.stateManager.GetData(telegramID, state.KeyDate)
	startValue, ok3 := h.stateManager.GetData(telegramID, state.KeyStart)
	endValue, ok4 := h.stateManager.GetData(telegramID, state.KeyEnd)
	link, _ := h.stateManager.GetData(telegramID, state.KeyMeetingLink)

	if !ok1 || !ok2 || !ok3 || !ok4 {
		h.stateManager.ClearState(telegramID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "The dialog expired. Start again with /book.",
		})
		return
	}

	draft, err := parseBookingDraft(mentorValue, dateValue, startValue, endValue)
	if err != nil {
		h.stateManager.ClearState(telegramID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "The dialog expired. Start again with /book.",
		})
		return
	}

	h.stateManager.ClearState(telegramID)

	booking, err := h.bookingService.Book(ctx, service.BookingParams{
		RequestID:   uuid.New(),
		MentorID:    draft.mentorID,
		MenteeID:    user.ID,
		Date:        draft.date,
		Start:       draft.start,
		End:         draft.end,
		MeetingLink: link,
		Notes:       notes,
	})

	if errors.Is(err, service.ErrSlotAlreadyBooked) {
		// Someone else won the race. Routine and self-correcting: show
		// the freshly resolved list instead of a raw error.
		h.sendRefreshedSlots(ctx, b, chatID, draft.mentorID, draft.date)
		return
	}
	if err != nil {
		h.logger.Error("Failed to book session",
			zap.Error(err),
			zap.Int64("mentor_id", draft.mentorID),
			zap.Int64("mentee_id", user.ID),
		)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Could not book the session. Please try again.",
		})
		return
	}

	text := fmt.Sprintf(
		"✅ Session booked!\n\n"+
			"📅 %s\n"+
			"🕐 %s\n"+
			"📝 Booking #%d\n\n"+
			"See all your sessions with /mybookings",
		formatting.FormatDateWithWeekday(booking.SessionDate),
		formatting.FormatTimeRange(booking.Start, booking.End),
		booking.ID,
	)

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})

	// Tell the mentor about the new session.
	if mentor, err := h.userService.GetByID(ctx, draft.mentorID); err == nil && mentor != nil {
		notification := fmt.Sprintf(
			"📬 New session booked\n\n"+
				"👤 Mentee: %s\n"+
				"📅 %s\n"+
				"🕐 %s",
			user.FirstName,
			formatting.FormatDateWithWeekday(booking.SessionDate),
			formatting.FormatTimeRange(booking.Start, booking.End),
		)
		if notes != "" {
			notification += "\n📝 " + notes
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: mentor.TelegramID,
			Text:   notification,
		})
	}
}

// bookingDraft is the revalidated dialog state the commit needs.
type bookingDraft struct {
	mentorID int64
	date     time.Time
	start    model.TimeOfDay
	end      model.TimeOfDay
}

// parseBookingDraft re-parses the values stashed during the slot pick.
// Any value that fails to parse makes the whole draft unusable; the
// caller treats that as an expired dialog, never as mentor id 0.
func parseBookingDraft(mentorValue, dateValue, startValue, endValue string) (*bookingDraft, error) {
	mentorID, err := strconv.ParseInt(mentorValue, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse mentor id %q: %w", mentorValue, err)
	}

	date, err := time.Parse("2006-01-02", dateValue)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", dateValue, err)
	}

	start, err := model.ParseTimeOfDay(startValue)
	if err != nil {
		return nil, err
	}
	end, err := model.ParseTimeOfDay(endValue)
	if err != nil {
		return nil, err
	}

	return &bookingDraft{mentorID: mentorID, date: date, start: start, end: end}, nil
}

// sendRefreshedSlots re-resolves the mentor's day and renders the fresh
// list with a notice that the chosen time was taken.
func (h *Handlers) sendRefreshedSlots(ctx context.Context, b *bot.Bot, chatID any, mentorID int64, date time.Time) {
	mentor, err := h.userService.GetByID(ctx, mentorID)
	if err != nil || mentor == nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⏱ That time was just taken. Use /book to pick another slot.",
		})
		return
	}

	slots, err := h.resolverService.Resolve(ctx, mentorID, date)
	if err != nil {
		h.logger.Error("Failed to re-resolve after conflict", zap.Error(err), zap.Int64("mentor_id", mentorID))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⏱ That time was just taken. Use /book to pick another slot.",
		})
		return
	}

	text, keyboard := common.BuildSlotListScreen(mentor, date, slots)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "⏱ That time was just taken by someone else.\n\n" + text,
		ReplyMarkup: keyboard,
	})
}
