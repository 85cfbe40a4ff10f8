package http

import (
	"fmt"
	"net/http"

	"github.com/brucethesloth/TradingAgents/internal/logger"
	"github.com/brucethesloth/TradingAgents/internal/utils"
	"github.com/brucethesloth/TradingAgents/models"
)

// me handles GET /users/me: it returns the account of the authenticated
// caller, resolved by the auth middleware from the bearer token subject.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.NewUserResponse(currentUser), http.StatusOK)
}

// protected handles GET /protected, a sample route demonstrating bearer-token
// guarding.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, map[string]string{
		"message": fmt.Sprintf("Hello %s, this is a protected route!", currentUser.Username),
	}, http.StatusOK)
}

// root handles GET /.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "Trading Agents API with OAuth2"}, http.StatusOK)
}

// health handles GET /health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "healthy"}, http.StatusOK)
}
