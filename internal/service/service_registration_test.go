package service

import (
	"context"
	"testing"

	"github.com/brucethesloth/TradingAgents/internal/logger"
	"github.com/brucethesloth/TradingAgents/internal/mock"
	"github.com/brucethesloth/TradingAgents/internal/store"
	"github.com/brucethesloth/TradingAgents/internal/utils"
	"github.com/brucethesloth/TradingAgents/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRegistrationSvc(t *testing.T, ctrl *gomock.Controller) (*registrationService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewRegistrationService(mockRepo, testAuthConfig, logger.Nop()).(*registrationService)
	return svc, mockRepo
}

func emailPtr(s string) *string { return &s }

func TestRegistrationService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	req := models.SignupRequest{
		Username: "johndoe",
		Email:    emailPtr("johndoe@example.com"),
		FullName: emailPtr("John Doe"),
		Password: "secret",
	}

	gomock.InOrder(
		mockRepo.EXPECT().
			FindUserByUsername(ctx, "johndoe").
			Return(models.User{}, store.ErrUserNotFound),
		mockRepo.EXPECT().
			FindUserByEmail(ctx, "johndoe@example.com").
			Return(models.User{}, store.ErrUserNotFound),
		mockRepo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "johndoe", u.Username)
				assert.False(t, u.Disabled, "new accounts must start enabled")
				assert.NotEqual(t, "secret", u.HashedPassword, "plaintext must never reach the store")
				assert.True(t, utils.VerifyPassword("secret", u.HashedPassword))
				u.ID = 1
				return u, nil
			}),
	)

	created, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "johndoe", created.Username)
}

func TestRegistrationService_Register_WithoutEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	req := models.SignupRequest{Username: "johndoe", Password: "secret"}

	// no email on the request, so no email uniqueness check
	gomock.InOrder(
		mockRepo.EXPECT().
			FindUserByUsername(ctx, "johndoe").
			Return(models.User{}, store.ErrUserNotFound),
		mockRepo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
				assert.Nil(t, u.Email)
				u.ID = 2
				return u, nil
			}),
	)

	created, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
}

func TestRegistrationService_Register_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.SignupRequest{Username: "", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(ctx, models.SignupRequest{Username: "johndoe", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegistrationService_Register_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "johndoe").
		Return(models.User{ID: 1, Username: "johndoe"}, nil)

	_, err := svc.Register(ctx, models.SignupRequest{Username: "johndoe", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestRegistrationService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	req := models.SignupRequest{
		Username: "newuser",
		Email:    emailPtr("taken@example.com"),
		Password: "secret",
	}

	gomock.InOrder(
		mockRepo.EXPECT().
			FindUserByUsername(ctx, "newuser").
			Return(models.User{}, store.ErrUserNotFound),
		mockRepo.EXPECT().
			FindUserByEmail(ctx, "taken@example.com").
			Return(models.User{ID: 1, Username: "someoneelse"}, nil),
	)

	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestRegistrationService_Register_BothCollide_UsernameWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	req := models.SignupRequest{
		Username: "johndoe",
		Email:    emailPtr("taken@example.com"),
		Password: "secret",
	}

	// username check runs first and short-circuits; the email is never checked
	mockRepo.EXPECT().
		FindUserByUsername(ctx, "johndoe").
		Return(models.User{ID: 1, Username: "johndoe"}, nil)

	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestRegistrationService_Register_ConstraintRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	req := models.SignupRequest{Username: "johndoe", Password: "secret"}

	// pre-check passes, but a concurrent insert wins the race and the
	// unique constraint fires at insert time
	gomock.InOrder(
		mockRepo.EXPECT().
			FindUserByUsername(ctx, "johndoe").
			Return(models.User{}, store.ErrUserNotFound),
		mockRepo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			Return(models.User{}, store.ErrUsernameTaken),
	)

	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestRegistrationService_Register_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "johndoe").
		Return(models.User{}, store.ErrStoreUnavailable)

	_, err := svc.Register(ctx, models.SignupRequest{Username: "johndoe", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}
