package http

import (
	"errors"
	"net/http"

	"github.com/brucethesloth/TradingAgents/internal/service"
	"github.com/brucethesloth/TradingAgents/internal/store"
	"github.com/brucethesloth/TradingAgents/internal/utils"
)

// errorResponse is the JSON error envelope returned by every failed request,
// mirroring the {"detail": "..."} shape the web UI consumes.
type errorResponse struct {
	Detail string `json:"detail"`
}

// writeError writes the JSON error envelope with the given status code.
func writeError(w http.ResponseWriter, detail string, statusCode int) {
	utils.WriteJSON(w, errorResponse{Detail: detail}, statusCode)
}

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrAuthenticationFailed: http.StatusUnauthorized,
	service.ErrTokenExpired:         http.StatusUnauthorized,
	service.ErrTokenInvalid:         http.StatusUnauthorized,

	store.ErrUsernameTaken:    http.StatusBadRequest,
	store.ErrEmailTaken:       http.StatusBadRequest,
	store.ErrUserNotFound:     http.StatusNotFound,
	store.ErrStoreUnavailable: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
