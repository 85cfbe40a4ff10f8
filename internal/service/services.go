package service

import (
	"github.com/brucethesloth/TradingAgents/internal/config"
	"github.com/brucethesloth/TradingAgents/internal/logger"
	"github.com/brucethesloth/TradingAgents/internal/store"
)

type Services struct {
	AuthService         AuthService
	RegistrationService RegistrationService
	ProfileService      ProfileService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, cfg, logger),
		RegistrationService: NewRegistrationService(storages.UserRepository, cfg, logger),
		ProfileService:      NewProfileService(storages.UserRepository, cfg, logger),
	}
}
