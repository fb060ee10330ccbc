package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/middleware"
	"compliance-cms/internal/models"
	"compliance-cms/internal/service/mocks"
)

func TestNewAuthHandler(t *testing.T) {
	mockService := &mocks.MockAuthService{}
	handler := NewAuthHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful login",
			body: models.LoginRequest{Email: "admin@example.com", Password: "secret123"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
					return &models.LoginResponse{AccessToken: "signed.token"}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"value":{"access_token":"signed.token"},"error":false}`,
		},
		{
			name: "invalid credentials",
			body: models.LoginRequest{Email: "admin@example.com", Password: "wrong"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
					return nil, apperrors.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"value":{},"error":true,"messages":["Invalid credentials"]}`,
		},
		{
			name:           "missing password",
			body:           map[string]string{"email": "admin@example.com"},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"value":{},"error":true,"messages":["password is required"]}`,
		},
		{
			name:           "malformed json",
			body:           `{"email":`,
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"value":{},"error":true,"messages":["invalid request body"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			handler := NewAuthHandler(mockService)
			router := newTestRouter()
			router.POST("/auth/login", handler.Login)

			w := serve(router, jsonRequest(t, http.MethodPost, "/auth/login", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	handler := NewAuthHandler(&mocks.MockAuthService{})

	router := newTestRouter()
	router.GET("/auth/profile", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, "507f1f77bcf86cd799439011")
		c.Set(middleware.EmailKey, "admin@example.com")
		c.Next()
	}, handler.Profile)

	w := serve(router, jsonRequest(t, http.MethodGet, "/auth/profile", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"value":{"userId":"507f1f77bcf86cd799439011","email":"admin@example.com"},"error":false}`, w.Body.String())
}
