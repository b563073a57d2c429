package callbacks

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common"
	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common/formatting"
	"github.com/Somuah2708/Akora-sub008/internal/controller/state"
	"github.com/Somuah2708/Akora-sub008/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Mentee-facing callbacks: mentor pick -> date pick -> slot resolution
// -> slot pick. Detail capture and the commit itself continue as a text
// dialog in the handlers package.

func (h *Handler) handleBackToMentors(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	mentors, err := h.userService.ListMentors(ctx)
	if err != nil {
		h.logger.Error("Failed to list mentors", zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Could not load mentors")
		return
	}

	text, keyboard := common.BuildMentorListScreen(mentors)
	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}

func (h *Handler) handlePickMentor(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	mentorID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid data")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	mentor, err := h.userService.GetByID(ctx, mentorID)
	if err != nil || mentor == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Mentor not found")
		return
	}

	text, keyboard := common.BuildDatePickScreen(mentor, time.Now())
	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handlePickDate resolves the mentor's recurring pattern against the
// chosen date and shows the result.
func (h *Handler) handlePickDate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	parts := common.SplitCallback(callback.Data, common.PickDatePrefix)
	if len(parts) != 2 {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid data")
		return
	}

	mentorID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid data")
		return
	}

	date, err := time.Parse("2006-01-02", parts[1])
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid date")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	mentor, err := h.userService.GetByID(ctx, mentorID)
	if err != nil || mentor == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Mentor not found")
		return
	}

	slots, err := h.resolverService.Resolve(ctx, mentorID, date)
	if err != nil {
		h.logger.Error("Failed to resolve availability",
			zap.Error(err),
			zap.Int64("mentor_id", mentorID),
			zap.String("date", parts[1]),
		)
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Could not load availability. Try again.")
		return
	}

	text, keyboard := common.BuildSlotListScreen(mentor, date, slots)
	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// parseCompactTime parses the "0930" form used inside callback data,
// where a ":" would collide with the field separator.
func parseCompactTime(s string) (model.TimeOfDay, error) {
	if len(s) != 4 {
		return model.TimeOfDay{}, fmt.Errorf("invalid compact time %q", s)
	}
	return model.ParseTimeOfDay(s[:2] + ":" + s[2:])
}

// handlePickSlot stashes the chosen window in the dialog state and asks
// for the optional meeting link. The actual commit happens after the
// notes step, in the text-message dialog.
func (h *Handler) handlePickSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	parts := common.SplitCallback(callback.Data, common.PickSlotPrefix)
	if len(parts) != 4 {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid data")
		return
	}

	if _, err := strconv.ParseInt(parts[0], 10, 64); err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid data")
		return
	}

	startTime, err1 := parseCompactTime(parts[2])
	endTime, err2 := parseCompactTime(parts[3])
	if err1 != nil || err2 != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid data")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	telegramID := callback.From.ID
	h.stateManager.SetData(telegramID, state.KeyMentorID, parts[0])
	h.stateManager.SetData(telegramID, state.KeyDate, parts[1])
	h.stateManager.SetData(telegramID, state.KeyStart, startTime.String())
	h.stateManager.SetData(telegramID, state.KeyEnd, endTime.String())
	h.stateManager.SetState(telegramID, state.StateBookingLink)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text: fmt.Sprintf(
			"🕐 %s it is.\n\n🔗 Send a meeting link (Zoom, Meet, ...) or \"skip\".",
			formatting.FormatTimeRange(startTime, endTime)),
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}
