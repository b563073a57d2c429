package service

import (
	"context"
	"fmt"

	"github.com/Somuah2708/Akora-sub008/internal/model"
	"github.com/Somuah2708/Akora-sub008/internal/repository"
	"go.uber.org/zap"
)

// UserService maps Telegram accounts onto the mentor/mentee ids the core
// services take as explicit parameters.
type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RegisterUser creates the user on first contact and returns the
// existing record afterwards.
func (s *UserService) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*model.User, error) {
	existing, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	user := &model.User{
		TelegramID: telegramID,
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("New user registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("telegram_id", telegramID),
		zap.String("username", username),
	)

	return user, nil
}

// GetByTelegramID gets a user by Telegram ID. Returns nil when unknown.
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.userRepo.GetByTelegramID(ctx, telegramID)
}

// GetByID gets a user by internal ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// BecomeMentor marks the user as a mentor so mentees can find them.
func (s *UserService) BecomeMentor(ctx context.Context, userID int64) error {
	if err := s.userRepo.SetMentor(ctx, userID, true); err != nil {
		return err
	}

	s.logger.Info("User became mentor", zap.Int64("user_id", userID))
	return nil
}

// ListMentors gets every user who publishes availability.
func (s *UserService) ListMentors(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.ListMentors(ctx)
}
