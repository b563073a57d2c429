package handlers

import (
	"context"
	"fmt"

	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart handles /start: registers the user and shows the menu.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	from := update.Message.From

	user, err := h.userService.RegisterUser(ctx, from.ID, from.Username, from.FirstName, from.LastName)
	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Registration failed. Please try again later.")
		return
	}

	welcomeText := fmt.Sprintf(
		"👋 Hi, %s!\n\n"+
			"This is the Akora mentorship bot - book sessions with alumni mentors.\n\n"+
			"Commands:\n"+
			"/book - Book a mentorship session\n"+
			"/mybookings - My booked sessions\n"+
			"/help - Help\n\n"+
			"For mentors:\n"+
			"/becomementor - Publish yourself as a mentor\n"+
			"/myavailability - My weekly availability\n"+
			"/addslot - Add a recurring slot",
		user.FirstName,
	)

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcomeText)
}

// HandleHelp handles /help.
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Commands:\n\n" +
		"/book - Pick a mentor, date and time slot\n" +
		"/mybookings - Your booked sessions\n" +
		"/cancel - Abort the current dialog\n\n" +
		"For mentors:\n" +
		"/becomementor - Publish yourself as a mentor\n" +
		"/myavailability - View, hide or delete your weekly slots\n" +
		"/addslot - Add a recurring weekly slot\n\n" +
		"Slots repeat every week until you delete them. Hiding a slot " +
		"keeps existing sessions intact."

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleCancel handles /cancel: clears any dialog state.
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.stateManager.ClearState(update.Message.From.ID)
	h.sendMessage(ctx, b, update.Message.Chat.ID, "Dialog cancelled.")
}

// HandleBecomeMentor handles /becomementor.
func (h *Handlers) HandleBecomeMentor(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user, err := h.requireUser(ctx, b, update)
	if err != nil {
		return
	}

	if user.IsMentor {
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"You are already a mentor. Use /addslot to publish availability.")
		return
	}

	if err := h.userService.BecomeMentor(ctx, user.ID); err != nil {
		h.logger.Error("Failed to set mentor flag", zap.Error(err), zap.Int64("user_id", user.ID))
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Something went wrong. Please try again later.")
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"🎓 You are now listed as a mentor!\n\n"+
			"Use /addslot to publish your weekly availability.")
}

// HandleMyAvailability handles /myavailability: the editor entry point.
func (h *Handlers) HandleMyAvailability(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user, err := h.requireMentor(ctx, b, update)
	if err != nil {
		return
	}

	slots, err := h.availabilityService.ListSlots(ctx, user.ID)
	if err != nil {
		h.logger.Error("Failed to list slots", zap.Error(err), zap.Int64("mentor_id", user.ID))
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Could not load your availability. Please try again.")
		return
	}

	text, keyboard := common.BuildMyAvailabilityScreen(slots)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
}

// HandleAddSlot handles /addslot: starts the weekday -> time dialog.
func (h *Handlers) HandleAddSlot(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if _, err := h.requireMentor(ctx, b, update); err != nil {
		return
	}

	text, keyboard := common.BuildWeekdayPickScreen()
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
}

// HandleBook handles /book: the requester entry point.
func (h *Handlers) HandleBook(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if _, err := h.requireUser(ctx, b, update); err != nil {
		return
	}

	mentors, err := h.userService.ListMentors(ctx)
	if err != nil {
		h.logger.Error("Failed to list mentors", zap.Error(err))
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Could not load mentors. Please try again.")
		return
	}

	text, keyboard := common.BuildMentorListScreen(mentors)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
}

// HandleMyBookings handles /mybookings.
func (h *Handlers) HandleMyBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user, err := h.requireUser(ctx, b, update)
	if err != nil {
		return
	}

	bookings, err := h.bookingService.ListMenteeBookings(ctx, user.ID)
	if err != nil {
		h.logger.Error("Failed to list bookings", zap.Error(err), zap.Int64("mentee_id", user.ID))
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Could not load your sessions. Please try again.")
		return
	}

	if len(bookings) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"You have no booked sessions yet. Use /book to find a mentor.")
		return
	}

	text := "📅 Your sessions:\n"
	for _, booking := range bookings {
		mentorName := fmt.Sprintf("mentor #%d", booking.MentorID)
		if mentor, err := h.userService.GetByID(ctx, booking.MentorID); err == nil && mentor != nil {
			mentorName = mentor.FirstName
		}
		text += "\n" + formatBookingLine(booking, mentorName)
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, text)
}
