package controller

import (
	"context"

	"github.com/Somuah2708/Akora-sub008/internal/controller/callbacks"
	"github.com/Somuah2708/Akora-sub008/internal/controller/handlers"
	"github.com/Somuah2708/Akora-sub008/internal/controller/state"
	"github.com/Somuah2708/Akora-sub008/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	availabilityService *service.AvailabilityService,
	resolverService *service.ResolverService,
	bookingService *service.BookingService,
	logger *zap.Logger,
) *BotController {
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(
		userService,
		availabilityService,
		resolverService,
		bookingService,
		stateManager,
		logger,
	)

	callbackHandler := callbacks.NewHandler(
		userService,
		availabilityService,
		resolverService,
		stateManager,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers registers the command and callback handlers.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/book", bot.MatchTypeExact, c.handlers.HandleBook)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mybookings", bot.MatchTypeExact, c.handlers.HandleMyBookings)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Mentor commands
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/becomementor", bot.MatchTypeExact, c.handlers.HandleBecomeMentor)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/myavailability", bot.MatchTypeExact, c.handlers.HandleMyAvailability)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/addslot", bot.MatchTypeExact, c.handlers.HandleAddSlot)

	// Free text feeds the dialog state machine
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Inline keyboard taps
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands publishes the command menu.
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "book", Description: "📅 Book a mentorship session"},
		{Command: "mybookings", Description: "🗓 My booked sessions"},
		{Command: "becomementor", Description: "🎓 Publish yourself as a mentor"},
		{Command: "myavailability", Description: "📝 My weekly availability (mentor)"},
		{Command: "addslot", Description: "➕ Add a recurring slot (mentor)"},
		{Command: "help", Description: "❓ Help"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start runs the long-polling loop until ctx is cancelled.
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot")
	c.bot.Start(ctx)
	return nil
}
