package handlers

import (
	"context"
	"fmt"

	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common/formatting"
	"github.com/Somuah2708/Akora-sub008/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// sendMessage sends a plain text message and logs a failed delivery.
func (h *Handlers) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// requireUser loads the registered user behind the message, prompting
// for /start when unknown.
func (h *Handlers) requireUser(ctx context.Context, b *bot.Bot, update *models.Update) (*model.User, error) {
	user, err := h.userService.GetByTelegramID(ctx, update.Message.From.ID)
	if err != nil {
		h.logger.Error("Failed to load user", zap.Error(err), zap.Int64("telegram_id", update.Message.From.ID))
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Something went wrong. Please try again later.")
		return nil, err
	}
	if user == nil {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "Please run /start first.")
		return nil, fmt.Errorf("user not registered")
	}
	return user, nil
}

// requireMentor is requireUser plus the mentor check.
func (h *Handlers) requireMentor(ctx context.Context, b *bot.Bot, update *models.Update) (*model.User, error) {
	user, err := h.requireUser(ctx, b, update)
	if err != nil {
		return nil, err
	}
	if !user.IsMentor {
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"This command is for mentors. Use /becomementor first.")
		return nil, fmt.Errorf("user %d is not a mentor", user.ID)
	}
	return user, nil
}

// formatBookingLine renders one /mybookings entry.
func formatBookingLine(booking *model.SessionBooking, mentorName string) string {
	line := fmt.Sprintf("• %s %s with %s",
		formatting.FormatDate(booking.SessionDate),
		formatting.FormatTimeRange(booking.Start, booking.End),
		mentorName,
	)
	if booking.MeetingLink != "" {
		line += "\n  🔗 " + booking.MeetingLink
	}
	return line
}
