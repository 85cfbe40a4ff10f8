package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/brucethesloth/TradingAgents/internal/config"
	"github.com/brucethesloth/TradingAgents/internal/logger"
	"github.com/brucethesloth/TradingAgents/internal/store"
	"github.com/brucethesloth/TradingAgents/internal/utils"
	"github.com/brucethesloth/TradingAgents/models"
)

// registrationService is the concrete implementation of RegistrationService.
// It orchestrates uniqueness checks, password hashing and persistence for
// new accounts.
type registrationService struct {
	userRepository store.UserRepository

	// bcryptCost is the work factor passed to the credential hasher.
	// Zero selects the bcrypt library default.
	bcryptCost int

	logger *logger.Logger
}

// NewRegistrationService constructs a RegistrationService wired to the given
// UserRepository. The returned service is safe for concurrent use; all state
// is read-only after construction.
func NewRegistrationService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) RegistrationService {
	return &registrationService{
		userRepository: userRepository,
		bcryptCost:     cfg.BCryptCost,
		logger:         logger,
	}
}

// Register creates a new account.
//
// The sequence is fixed: reject empty username/password, check the username
// for duplicates, then the email (when provided), hash the password, and
// insert with the disabled flag cleared. The username check deliberately
// runs first so that a request colliding on both fields reports
// store.ErrUsernameTaken deterministically.
//
// The duplicate pre-checks only exist for friendly error messages. Two
// concurrent registrations can both pass them; the database unique
// constraints are the authoritative guard, and a constraint violation at
// insert time comes back as the same ErrUsernameTaken/ErrEmailTaken the
// pre-checks produce.
//
// The returned account carries the server-assigned ID and never the
// plaintext password.
func (s *registrationService) Register(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := s.userRepository.FindUserByUsername(ctx, req.Username); err == nil {
		log.Debug().Str("username", req.Username).Msg("signup rejected: username already registered")
		return models.User{}, store.ErrUsernameTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("username", req.Username).Msg("username uniqueness check failed")
		return models.User{}, fmt.Errorf("username uniqueness check failed: %w", err)
	}

	if req.Email != nil {
		if _, err := s.userRepository.FindUserByEmail(ctx, *req.Email); err == nil {
			log.Debug().Str("username", req.Username).Msg("signup rejected: email already registered")
			return models.User{}, store.ErrEmailTaken
		} else if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("username", req.Username).Msg("email uniqueness check failed")
			return models.User{}, fmt.Errorf("email uniqueness check failed: %w", err)
		}
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := s.userRepository.CreateUser(ctx, models.User{
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: hashedPassword,
		Disabled:       false,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}
