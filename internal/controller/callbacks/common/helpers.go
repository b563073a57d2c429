package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// AnswerCallback answers a callback query without an alert.
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert answers a callback query with a popup alert.
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback extracts the accessible message, if any.
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ParseIDFromCallback parses "prefix:123" style callback data.
func ParseIDFromCallback(data string) (int64, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid callback data format")
	}
	return strconv.ParseInt(parts[1], 10, 64)
}

// SplitCallback strips the "prefix:" and returns the remaining
// colon-separated fields.
func SplitCallback(data, prefix string) []string {
	return strings.Split(strings.TrimPrefix(data, prefix), ":")
}

// ParseToggleCallback parses "toggle_slot:slot_id:target" callback data
// into the slot id and the target visibility.
func ParseToggleCallback(data string) (int64, bool, error) {
	parts := SplitCallback(data, ToggleSlotPrefix)
	if len(parts) != 2 {
		return 0, false, fmt.Errorf("invalid callback data format")
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid slot id %q", parts[0])
	}

	switch parts[1] {
	case "0":
		return id, false, nil
	case "1":
		return id, true, nil
	default:
		return 0, false, fmt.Errorf("invalid toggle target %q", parts[1])
	}
}
