package service

import (
	"context"
	"errors"
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

func newTestProfileSvc(t *testing.T, ctrl *gomock.Controller) (*profileService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewProfileService(mockRepo, testAuthConfig, logger.Nop()).(*profileService)
	return svc, mockRepo
}

func TestProfileService_WhoAmI_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{ID: 1, Username: "johndoe"}

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "johndoe").
		Return(stored, nil)

	got, err := svc.WhoAmI(ctx, "johndoe")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestProfileService_WhoAmI_DeletedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.WhoAmI(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestProfileService_WhoAmI_EmptyUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestProfileSvc(t, ctrl)

	_, err := svc.WhoAmI(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	fullName := "Johnny Doe"
	disabled := true

	mockRepo.EXPECT().
		UpdateProfile(ctx, models.ProfileUpdate{ID: 1, FullName: &fullName, Disabled: &disabled}).
		Return(models.User{ID: 1, Username: "johndoe", FullName: &fullName, Disabled: true}, nil)

	updated, err := svc.UpdateProfile(ctx, 1, &fullName, &disabled)
	require.NoError(t, err)
	assert.True(t, updated.Disabled)
	require.NotNil(t, updated.FullName)
	assert.Equal(t, fullName, *updated.FullName)
}

func TestProfileService_UpdateProfile_NoFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		UpdateProfile(ctx, models.ProfileUpdate{ID: 1}).
		Return(models.User{}, store.ErrNoFieldsToUpdate)

	_, err := svc.UpdateProfile(ctx, 1, nil, nil)
	assert.ErrorIs(t, err, store.ErrNoFieldsToUpdate)
}

func TestProfileService_ChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		UpdateProfile(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, update models.ProfileUpdate) (models.User, error) {
			assert.Equal(t, int64(1), update.ID)
			assert.Nil(t, update.FullName)
			assert.Nil(t, update.Disabled)
			require.NotNil(t, update.HashedPassword)
			assert.NotEqual(t, "new-password", *update.HashedPassword)
			assert.True(t, utils.VerifyPassword("new-password", *update.HashedPassword))
			return models.User{ID: 1}, nil
		})

	err := svc.ChangePassword(ctx, 1, "new-password")
	require.NoError(t, err)
}

func TestProfileService_ChangePassword_EmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestProfileSvc(t, ctrl)

	err := svc.ChangePassword(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProfileService_DeleteUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		DeleteUser(ctx, int64(1)).
		Return(nil)

	require.NoError(t, svc.DeleteUser(ctx, 1))
}

func TestProfileService_DeleteUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		DeleteUser(ctx, int64(99)).
		Return(store.ErrUserNotFound)

	err := svc.DeleteUser(ctx, 99)
	require.True(t, errors.Is(err, store.ErrUserNotFound))
}
