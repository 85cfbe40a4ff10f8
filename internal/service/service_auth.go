package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brucethesloth/TradingAgents/internal/config"
	"github.com/brucethesloth/TradingAgents/internal/logger"
	"github.com/brucethesloth/TradingAgents/internal/store"
	"github.com/brucethesloth/TradingAgents/internal/utils"
	"github.com/brucethesloth/TradingAgents/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification and JWT token lifecycle using a
// UserRepository for persistence and bcrypt for password comparison.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Authenticate verifies the supplied credentials against the stored account.
//
// The sequence is: one repository lookup by username, a disabled-flag check,
// then exactly one bcrypt comparison. There are no retries and no writes.
//
// Returns the account record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrAuthenticationFailed for unknown username, disabled account, or
//     wrong password — one signal for all three, so the response never
//     reveals whether the username exists.
//   - The wrapped storage error when the lookup itself fails (for example
//     store.ErrStoreUnavailable); an unreachable database must surface as a
//     retriable condition, not as bad credentials.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Msg("empty credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", username).Msg("authentication failed: unknown username")
			return models.User{}, ErrAuthenticationFailed
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if foundUser.Disabled {
		log.Debug().Int64("id", foundUser.ID).Msg("authentication failed: account disabled")
		return models.User{}, ErrAuthenticationFailed
	}

	if !utils.VerifyPassword(password, foundUser.HashedPassword) {
		log.Debug().Int64("id", foundUser.ID).Msg("authentication failed: wrong password")
		return models.User{}, ErrAuthenticationFailed
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the username as "sub", and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. A correctly signed token past its expiry yields
// ErrTokenExpired; every other failure (bad signature, malformed string,
// wrong issuer) is normalised to ErrTokenInvalid so that callers do not need
// to inspect low-level JWT errors.
//
// Returns the decoded token model on success.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}

		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}
