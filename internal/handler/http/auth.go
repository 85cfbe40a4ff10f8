package http

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/brucethesloth/TradingAgents/internal/logger"
	"github.com/brucethesloth/TradingAgents/internal/service"
	"github.com/brucethesloth/TradingAgents/internal/store"
	"github.com/brucethesloth/TradingAgents/internal/utils"
	"github.com/brucethesloth/TradingAgents/models"
)

// login handles POST /token: it authenticates the submitted credentials and
// returns a bearer token bound to the account's username.
//
// Credentials are accepted either as a urlencoded form (username/password
// fields, the OAuth2 password flow shape) or as a JSON body.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(r)
	if err != nil {
		log.Err(err).Msg("invalid login request body")
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Authenticate(ctx, creds.Username, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid credentials provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrAuthenticationFailed):
			log.Debug().Msg("authentication failed")
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, service.ErrAuthenticationFailed.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}

// signup handles POST /users/signup: it registers a new account and returns
// its external representation with HTTP 201.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.RegistrationService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid signup data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Debug().Msg("username already registered")
			writeError(w, store.ErrUsernameTaken.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailTaken):
			log.Debug().Msg("email already registered")
			writeError(w, store.ErrEmailTaken.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, models.NewUserResponse(registeredUser), http.StatusCreated)
}

// decodeCredentials extracts the username/password pair from a login
// request, accepting either JSON or urlencoded form bodies.
func decodeCredentials(r *http.Request) (models.LoginRequest, error) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if contentType == "application/json" {
		var creds models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return models.LoginRequest{}, err
		}
		return creds, nil
	}

	if err := r.ParseForm(); err != nil {
		return models.LoginRequest{}, err
	}

	return models.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, nil
}
