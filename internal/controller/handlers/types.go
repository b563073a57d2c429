package handlers

import (
	"github.com/Somuah2708/Akora-sub008/internal/controller/state"
	"github.com/Somuah2708/Akora-sub008/internal/service"
	"go.uber.org/zap"
)

// Handlers holds every dependency the command handlers need.
type Handlers struct {
	userService         *service.UserService
	availabilityService *service.AvailabilityService
	resolverService     *service.ResolverService
	bookingService      *service.BookingService
	stateManager        *state.Manager
	logger              *zap.Logger
}

func NewHandlers(
	userService *service.UserService,
	availabilityService *service.AvailabilityService,
	resolverService *service.ResolverService,
	bookingService *service.BookingService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:         userService,
		availabilityService: availabilityService,
		resolverService:     resolverService,
		bookingService:      bookingService,
		stateManager:        stateManager,
		logger:              logger,
	}
}
