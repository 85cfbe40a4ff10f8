package service

import (
	"context"

	"github.com/brucethesloth/TradingAgents/models"
)

// AuthService verifies credentials and manages the bearer-token lifecycle.
type AuthService interface {
	// Authenticate checks the supplied credentials against the stored
	// account. Unknown username, disabled account and wrong password all
	// fail with the same ErrAuthenticationFailed so callers cannot probe
	// which usernames exist.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// CreateToken issues a signed bearer token for the given account.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw token string and returns its claims.
	// Fails with ErrTokenExpired for a correctly signed but stale token
	// and ErrTokenInvalid for anything else.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RegistrationService creates new accounts with safely stored credentials.
type RegistrationService interface {
	// Register validates the signup request, hashes the password and
	// persists the account with the disabled flag cleared. The username
	// duplicate check always runs before the email one, so when both
	// collide the username error wins.
	Register(ctx context.Context, req models.SignupRequest) (models.User, error)
}

// ProfileService exposes account lookup and the enumerated mutation
// operations on existing accounts.
type ProfileService interface {
	// WhoAmI resolves a token subject back to the full account record.
	WhoAmI(ctx context.Context, username string) (models.User, error)

	// UpdateProfile changes the mutable profile fields of an account.
	// Nil arguments leave the corresponding field untouched.
	UpdateProfile(ctx context.Context, id int64, fullName *string, disabled *bool) (models.User, error)

	// ChangePassword re-hashes the given plaintext and stores the new digest.
	ChangePassword(ctx context.Context, id int64, password string) error

	// DeleteUser permanently removes an account.
	DeleteUser(ctx context.Context, id int64) error
}
