package callbacks

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common"
	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common/formatting"
	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common/keyboard"
	"github.com/Somuah2708/Akora-sub008/internal/controller/state"
	"github.com/Somuah2708/Akora-sub008/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Mentor-facing callbacks: the availability editor controls.

// handleToggleSlot sets is_available on one slot and re-renders the
// pattern. The target state comes from the callback data the screen was
// rendered with, so a double tap is idempotent. Existing bookings are
// never touched by a toggle.
func (h *Handler) handleToggleSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	slotID, available, err := common.ParseToggleCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid data")
		return
	}

	slot, err := h.availabilityService.SetAvailable(ctx, slotID, available)
	if errors.Is(err, service.ErrNotFound) {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ This slot no longer exists")
		return
	}
	if err != nil {
		h.logger.Error("Failed to toggle slot", zap.Error(err), zap.Int64("slot_id", slotID))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Could not update the slot")
		return
	}

	notice := "Slot is visible to mentees again"
	if !slot.IsAvailable {
		notice = "Slot hidden. Existing sessions stay untouched"
	}
	common.AnswerCallback(ctx, b, callback.ID, notice)

	h.refreshAvailabilityScreen(ctx, b, callback, slot.MentorID)
}

// handleDeleteSlot asks for confirmation before the hard delete.
func (h *Handler) handleDeleteSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	slotID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid data")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	slot, err := h.availabilityService.GetSlot(ctx, slotID)
	if errors.Is(err, service.ErrNotFound) || slot == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ This slot no longer exists")
		return
	}
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Could not load the slot")
		return
	}

	confirmKeyboard := keyboard.NewBuilder().
		Row(keyboard.ConfirmCancelRow(
			"🗑 Yes, delete", fmt.Sprintf("%s%d", common.ConfirmDelPrefix, slotID),
			"⬅️ Keep it", common.CancelDialog,
		)...).
		Build()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text: fmt.Sprintf(
			"Delete %s %s from your weekly pattern?\n\n"+
				"Sessions already booked in this window stay untouched.",
			formatting.WeekdayName(slot.DayOfWeek),
			formatting.FormatTimeRange(slot.Start, slot.End)),
		ReplyMarkup: confirmKeyboard,
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handleConfirmDelete performs the hard delete.
func (h *Handler) handleConfirmDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	slotID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid data")
		return
	}

	slot, err := h.availabilityService.GetSlot(ctx, slotID)
	if err != nil || slot == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ This slot no longer exists")
		return
	}

	if err := h.availabilityService.RemoveSlot(ctx, slotID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ This slot no longer exists")
			return
		}
		h.logger.Error("Failed to delete slot", zap.Error(err), zap.Int64("slot_id", slotID))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Could not delete the slot")
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "Slot deleted")
	h.refreshAvailabilityScreen(ctx, b, callback, slot.MentorID)
}

// handleAddSlotDay records the picked weekday and asks for the window.
func (h *Handler) handleAddSlotDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	parts := common.SplitCallback(callback.Data, common.AddSlotDayPrefix)
	if len(parts) != 1 {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid data")
		return
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 0 || day > 6 {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid weekday")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	telegramID := callback.From.ID
	h.stateManager.SetData(telegramID, state.KeySlotDay, strconv.Itoa(day))
	h.stateManager.SetState(telegramID, state.StateAddSlotTime)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text: fmt.Sprintf(
			"📅 Every %s.\n\n🕐 Now send the time window as HH:MM-HH:MM, e.g. 09:00-10:00.",
			formatting.WeekdayName(day)),
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handleAddAnother restarts the /addslot dialog from the success screen.
func (h *Handler) handleAddAnother(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	text, keyboard := common.BuildWeekdayPickScreen()
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// refreshAvailabilityScreen re-renders the mentor's pattern after a
// confirmed store mutation. The screen is rebuilt from store state, not
// patched locally, so a failed mutation can never leave a stale screen.
func (h *Handler) refreshAvailabilityScreen(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, mentorID int64) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		return
	}

	slots, err := h.availabilityService.ListSlots(ctx, mentorID)
	if err != nil {
		h.logger.Error("Failed to refresh availability screen", zap.Error(err), zap.Int64("mentor_id", mentorID))
		return
	}

	text, keyboard := common.BuildMyAvailabilityScreen(slots)
	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
}
