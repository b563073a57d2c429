package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Somuah2708/Akora-sub008/internal/app"
	"github.com/Somuah2708/Akora-sub008/internal/config"
	"github.com/Somuah2708/Akora-sub008/internal/controller"
	"github.com/Somuah2708/Akora-sub008/internal/repository"
	"github.com/Somuah2708/Akora-sub008/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting mentorship bot", zap.String("environment", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to reach database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Repositories
	userRepo := repository.NewUserRepository(pool)
	availabilityRepo := repository.NewAvailabilityRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	// Services
	userService := service.NewUserService(userRepo, logger)
	availabilityService := service.NewAvailabilityService(availabilityRepo, logger)
	resolverService := service.NewResolverService(availabilityRepo, bookingRepo, logger)
	bookingService := service.NewBookingService(bookingRepo, logger)

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		botInstance,
		userService,
		availabilityService,
		resolverService,
		bookingService,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot shut down")
}
