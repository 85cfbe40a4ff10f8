package service

import (
	"context"
	"fmt"

	"github.com/brucethesloth/TradingAgents/internal/config"
	"github.com/brucethesloth/TradingAgents/internal/logger"
	"github.com/brucethesloth/TradingAgents/internal/store"
	"github.com/brucethesloth/TradingAgents/internal/utils"
	"github.com/brucethesloth/TradingAgents/models"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	userRepository store.UserRepository
	bcryptCost     int
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService wired to the given
// UserRepository.
func NewProfileService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		bcryptCost:     cfg.BCryptCost,
		logger:         logger,
	}
}

// WhoAmI resolves a token subject (username) back to the full account
// record. Returns store.ErrUserNotFound when the account has been deleted
// since the token was issued.
func (s *profileService) WhoAmI(ctx context.Context, username string) (models.User, error) {
	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return foundUser, nil
}

// UpdateProfile changes the mutable profile fields of the account with the
// given id. Each argument updates its field only when non-nil; identity
// fields (id, username, email) cannot be changed through this operation.
func (s *profileService) UpdateProfile(ctx context.Context, id int64, fullName *string, disabled *bool) (models.User, error) {
	log := logger.FromContext(ctx)

	updatedUser, err := s.userRepository.UpdateProfile(ctx, models.ProfileUpdate{
		ID:       id,
		FullName: fullName,
		Disabled: disabled,
	})
	if err != nil {
		log.Err(err).Int64("id", id).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updatedUser, nil
}

// ChangePassword hashes the given plaintext and replaces the stored digest
// for the account with the given id. The plaintext never reaches the
// repository or the logs.
func (s *profileService) ChangePassword(ctx context.Context, id int64, password string) error {
	log := logger.FromContext(ctx)

	if password == "" {
		return ErrInvalidDataProvided
	}

	hashedPassword, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if _, err := s.userRepository.UpdateProfile(ctx, models.ProfileUpdate{
		ID:             id,
		HashedPassword: &hashedPassword,
	}); err != nil {
		log.Err(err).Int64("id", id).Msg("password change failed")
		return fmt.Errorf("password change failed: %w", err)
	}

	return nil
}

// DeleteUser permanently removes the account with the given id.
func (s *profileService) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
