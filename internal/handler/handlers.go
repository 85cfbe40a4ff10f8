package handler

import (
	"github.com/brucethesloth/TradingAgents/internal/handler/http"
	"github.com/brucethesloth/TradingAgents/internal/logger"
	"github.com/brucethesloth/TradingAgents/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
