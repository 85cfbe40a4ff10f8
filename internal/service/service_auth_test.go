package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brucethesloth/TradingAgents/internal/config"
	"github.com/brucethesloth/TradingAgents/internal/logger"
	"github.com/brucethesloth/TradingAgents/internal/mock"
	"github.com/brucethesloth/TradingAgents/internal/store"
	"github.com/brucethesloth/TradingAgents/internal/utils"
	"github.com/brucethesloth/TradingAgents/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAuthConfig = config.Auth{
	TokenSignKey:  "test-sign-key-that-is-32-bytes-long!",
	TokenIssuer:   "trading-agents-api",
	TokenDuration: 30 * time.Minute,
	BCryptCost:    bcrypt.MinCost,
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockRepo, testAuthConfig, logger.Nop()).(*authService)
	return svc, mockRepo
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	digest, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return digest
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		ID:             1,
		Username:       "johndoe",
		HashedPassword: mustHash(t, "secret"),
	}

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "johndoe").
		Return(stored, nil)

	got, err := svc.Authenticate(ctx, "johndoe", "secret")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, stored.Username, got.Username)
}

func TestAuthService_Authenticate_UnknownUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Authenticate(ctx, "ghost", "secret")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_Authenticate_DisabledAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		ID:             1,
		Username:       "johndoe",
		HashedPassword: mustHash(t, "secret"),
		Disabled:       true,
	}

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "johndoe").
		Return(stored, nil)

	// correct password, still indistinguishable from bad credentials
	_, err := svc.Authenticate(ctx, "johndoe", "secret")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		ID:             1,
		Username:       "johndoe",
		HashedPassword: mustHash(t, "secret"),
	}

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "johndoe").
		Return(stored, nil)

	_, err := svc.Authenticate(ctx, "johndoe", "not-the-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_Authenticate_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Authenticate(ctx, "johndoe", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Authenticate_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "johndoe").
		Return(models.User{}, store.ErrStoreUnavailable)

	// an unreachable database must not be reported as bad credentials
	_, err := svc.Authenticate(ctx, "johndoe", "secret")
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_CreateToken_ParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	issued, err := svc.CreateToken(ctx, models.User{Username: "johndoe"})
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)

	parsed, err := svc.ParseToken(ctx, issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", parsed.Subject)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	svc.tokenDuration = -time.Minute
	ctx := context.Background()

	issued, err := svc.CreateToken(ctx, models.User{Username: "johndoe"})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	issued, err := svc.CreateToken(ctx, models.User{Username: "johndoe"})
	require.NoError(t, err)

	other := *svc
	other.tokenSignKey = "a-completely-different-32-byte-key!!"

	_, err = other.ParseToken(ctx, issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestAuthService_CreateToken_MissingSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	svc.tokenSignKey = ""
	ctx := context.Background()

	_, err := svc.CreateToken(ctx, models.User{Username: "johndoe"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_Authenticate_NoTimingShortcut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// lookup succeeds exactly once; no second query on password mismatch
	stored := models.User{
		ID:             7,
		Username:       "johndoe",
		HashedPassword: mustHash(t, "secret"),
	}
	mockRepo.EXPECT().
		FindUserByUsername(ctx, "johndoe").
		Return(stored, nil).
		Times(1)

	_, err := svc.Authenticate(ctx, "johndoe", "wrong")
	assert.Error(t, err)

	require.True(t, errors.Is(err, ErrAuthenticationFailed))
}
