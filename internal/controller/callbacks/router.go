package callbacks

import (
	"context"
	"strings"

	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks/common"
	"github.com/Somuah2708/Akora-sub008/internal/controller/state"
	"github.com/Somuah2708/Akora-sub008/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler routes inline-keyboard callbacks to the mentor (editor) and
// mentee (requester) flows.
type Handler struct {
	userService         *service.UserService
	availabilityService *service.AvailabilityService
	resolverService     *service.ResolverService
	stateManager        *state.Manager
	logger              *zap.Logger
}

func NewHandler(
	userService *service.UserService,
	availabilityService *service.AvailabilityService,
	resolverService *service.ResolverService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		userService:         userService,
		availabilityService: availabilityService,
		resolverService:     resolverService,
		stateManager:        stateManager,
		logger:              logger,
	}
}

// HandleCallbackQuery dispatches on the callback data prefix.
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	data := callback.Data
	h.logger.Debug("Callback received",
		zap.String("data", data),
		zap.Int64("telegram_id", callback.From.ID),
	)

	switch {
	// Mentee flow
	case data == common.BackToMentors:
		h.handleBackToMentors(ctx, b, callback)
	case strings.HasPrefix(data, common.PickMentorPrefix):
		h.handlePickMentor(ctx, b, callback)
	case strings.HasPrefix(data, common.PickDatePrefix):
		h.handlePickDate(ctx, b, callback)
	case strings.HasPrefix(data, common.PickSlotPrefix):
		h.handlePickSlot(ctx, b, callback)
	case data == common.SlotTaken:
		common.AnswerCallbackAlert(ctx, b, callback.ID, "⏱ This time is already taken. Pick another slot.")

	// Mentor flow
	case strings.HasPrefix(data, common.ToggleSlotPrefix):
		h.handleToggleSlot(ctx, b, callback)
	case strings.HasPrefix(data, common.DeleteSlotPrefix):
		h.handleDeleteSlot(ctx, b, callback)
	case strings.HasPrefix(data, common.ConfirmDelPrefix):
		h.handleConfirmDelete(ctx, b, callback)
	case strings.HasPrefix(data, common.AddSlotDayPrefix):
		h.handleAddSlotDay(ctx, b, callback)
	case data == common.AddAnotherSlot:
		h.handleAddAnother(ctx, b, callback)

	case data == common.CancelDialog:
		h.stateManager.ClearState(callback.From.ID)
		common.AnswerCallback(ctx, b, callback.ID, "Cancelled")

	default:
		h.logger.Warn("Unknown callback", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}
