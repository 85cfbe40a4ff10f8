package server

import (
	"context"
	"net/http"

	"github.com/brucethesloth/TradingAgents/internal/config"
	"github.com/brucethesloth/TradingAgents/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(routes http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      http.TimeoutHandler(routes, cfg.RequestTimeout, http.StatusText(http.StatusServiceUnavailable)),
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: 2 * cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
