package keyboard

import "github.com/go-telegram/bot/models"

// BackButton makes a "back" button pointing at callbackData.
func BackButton(text, callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ "+text, callbackData)
}

// CancelButton makes a dialog-cancel button.
func CancelButton(callbackData string) models.InlineKeyboardButton {
	return Button("❌ Cancel", callbackData)
}

// ConfirmCancelRow makes a confirm/decline pair on one row.
func ConfirmCancelRow(confirmText, confirmCallback, cancelText, cancelCallback string) []models.InlineKeyboardButton {
	return []models.InlineKeyboardButton{
		Button(confirmText, confirmCallback),
		Button(cancelText, cancelCallback),
	}
}
