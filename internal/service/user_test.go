package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByUsername(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(12345)
	phone := "+91 98765-43210"
	input := domain.CreateUserInput{
		Username:       "testuser",
		Phone:          &phone,
		TelegramChatID: &chatID,
	}

	user, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, &chatID, user.TelegramChatID)
	require.NotNil(t, user.Phone)
	assert.Equal(t, "+919876543210", *user.Phone)
	assert.True(t, user.HasPhone())
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_WithoutPhone(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByUsername(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "nophone"})

	require.NoError(t, err)
	assert.Nil(t, user.Phone)
	assert.False(t, user.HasPhone())
}

func TestUserService_Create_InvalidPhone(t *testing.T) {
	svc := NewUserService(nil)

	phone := "12ab"
	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "x", Phone: &phone})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_UpdatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		stored  string
		wantErr error
	}{
		{name: "normalized", phone: " 98765 43210 ", stored: "9876543210"},
		{name: "with plus", phone: "+919876543210", stored: "+919876543210"},
		{name: "empty", phone: "   ", wantErr: domain.ErrPhoneRequired},
		{name: "too short", phone: "12345", wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockUserRepo(t)
			svc := NewUserService(repo)

			if tt.wantErr == nil {
				repo.EXPECT().UpdatePhone(mock.Anything, "u1", tt.stored).Return(nil)
			}

			err := svc.UpdatePhone(context.Background(), "u1", tt.phone)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserService_UpdatePhone_UserNotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().UpdatePhone(mock.Anything, "missing", "9876543210").Return(domain.ErrUserNotFound)

	err := svc.UpdatePhone(context.Background(), "missing", "9876543210")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Create_EmptyUsername(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: ""})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().GetByUsername(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "user"})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByUsername(mock.Anything, "taken").Return(&domain.User{ID: "u1", Username: "taken"}, nil)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "taken"})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Create_UsernameTakenConcurrently(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByUsername(mock.Anything, "taken").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "taken"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_Create_LookupError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().GetByUsername(mock.Anything, "user").Return(nil, repoErr)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "user"})

	assert.ErrorIs(t, err, repoErr)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_GetByID_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	expected := &domain.User{ID: "u1", Username: "alice"}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(expected, nil)

	user, err := svc.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	users := []*domain.User{{ID: "u1"}, {ID: "u2"}}
	repo.EXPECT().List(mock.Anything).Return(users, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestUserService_List_Error(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background())

	require.Error(t, err)
}
