package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/brucethesloth/TradingAgents/models"
)

// UserRepository is the persistence abstraction for accounts. The database
// is the single owner of account rows; implementations return transient
// copies fetched per call.
//
// Uniqueness of username and email is ultimately enforced by the store's
// unique constraints; CreateUser translates those violations into
// [ErrUsernameTaken] / [ErrEmailTaken] so callers never see raw driver errors.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier] for the PostgreSQL implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
