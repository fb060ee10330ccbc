package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
	repomocks "compliance-cms/internal/repository/mocks"
	"compliance-cms/pkg/auth"
	authmocks "compliance-cms/pkg/auth/mocks"
)

func TestAuthService_Login(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "admin@example.com",
		Password: hashed,
		Type:     models.UserTypeAdmin,
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockJWT := authmocks.NewMockTokenManager(ctrl)

		mockRepo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(user, nil)
		mockJWT.EXPECT().GenerateToken(user.ID.Hex(), "admin@example.com").Return("signed.token", nil)

		svc := NewAuthService(mockRepo, mockJWT, zap.NewNop())
		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "  Admin@Example.com ",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.Equal(t, "signed.token", resp.AccessToken)
	})

	t.Run("wrong password issues no token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockJWT := authmocks.NewMockTokenManager(ctrl)

		mockRepo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(user, nil)
		mockJWT.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Times(0)

		svc := NewAuthService(mockRepo, mockJWT, zap.NewNop())
		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "admin@example.com",
			Password: "wrong",
		})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
		assert.Equal(t, "Invalid credentials", err.Error())
	})

	t.Run("unknown email looks like a wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockUserRepository(ctrl)

		mockRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, apperrors.ErrUserNotFound)

		svc := NewAuthService(mockRepo, authmocks.NewMockTokenManager(ctrl), zap.NewNop())
		_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@example.com", Password: "x"})

		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})

	t.Run("store failure is not reported as bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		storeErr := errors.New("connection refused")

		mockRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, storeErr)

		svc := NewAuthService(mockRepo, authmocks.NewMockTokenManager(ctrl), zap.NewNop())
		_, err := svc.ValidateUser(context.Background(), "admin@example.com", "x")

		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
