package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
	"compliance-cms/internal/service/mocks"
)

func TestNewUserHandler(t *testing.T) {
	mockService := &mocks.MockUserService{}
	handler := NewUserHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestUserHandler_GetUser(t *testing.T) {
	userID := primitive.NewObjectID()
	now := time.Now()

	tests := []struct {
		name           string
		userID         string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, []byte)
	}{
		{
			name:   "successful get user",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.GetUserFunc = func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
					return &models.User{
						ID:        id,
						Email:     "test@example.com",
						Password:  "$2a$10$hash",
						Type:      models.UserTypeAdmin,
						CreatedAt: now,
						UpdatedAt: now,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "test@example.com")
				assert.NotContains(t, string(body), "password")
				assert.NotContains(t, string(body), "$2a$10$hash")
			},
		},
		{
			name:   "user not found",
			userID: primitive.NewObjectID().Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.GetUserFunc = func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			userID:         "not-an-id",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"value":{},"error":true,"messages":["invalid id format"]}`, string(body))
			},
		},
		{
			name:   "internal server error",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.GetUserFunc = func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, body []byte) {
				assert.NotContains(t, string(body), "database error")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)
			router := newTestRouter()
			router.GET("/users/:id", handler.GetUser)

			w := serve(router, jsonRequest(t, http.MethodGet, "/users/"+tt.userID, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w.Body.Bytes())
			}
		})
	}
}

func TestUserHandler_CreateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
	}{
		{
			name: "created",
			body: models.CreateUserRequest{Email: "new@example.com", Password: "secret123"},
			mockSetup: func(m *mocks.MockUserService) {
				m.CreateUserFunc = func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return &models.User{ID: primitive.NewObjectID(), Email: req.Email, Type: models.UserTypeAdmin}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: models.CreateUserRequest{Email: "new@example.com", Password: "secret123"},
			mockSetup: func(m *mocks.MockUserService) {
				m.CreateUserFunc = func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unknown type",
			body:           map[string]string{"email": "new@example.com", "password": "secret123", "type": "root"},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           map[string]string{"email": "new@example.com", "password": "abc"},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			router := newTestRouter()
			router.POST("/users", NewUserHandler(mockService).CreateUser)

			w := serve(router, jsonRequest(t, http.MethodPost, "/users", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUserHandler_GetAllUsers(t *testing.T) {
	mockService := &mocks.MockUserService{
		GetAllUsersFunc: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{Email: "a@example.com"}, {Email: "b@example.com"}}, nil
		},
	}

	router := newTestRouter()
	router.GET("/users", NewUserHandler(mockService).GetAllUsers)

	w := serve(router, jsonRequest(t, http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var users []models.User
	decodeValue(t, w, &users)
	assert.Len(t, users, 2)
}

func TestUserHandler_UpdateUser(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("passes only supplied fields", func(t *testing.T) {
		mockService := &mocks.MockUserService{
			UpdateUserFunc: func(ctx context.Context, got primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
				assert.Equal(t, id, got)
				assert.Nil(t, req.Email)
				require.NotNil(t, req.Type)
				return &models.User{ID: got, Type: *req.Type}, nil
			},
		}

		router := newTestRouter()
		router.PATCH("/users/:id", NewUserHandler(mockService).UpdateUser)

		w := serve(router, jsonRequest(t, http.MethodPatch, "/users/"+id.Hex(), `{"type":"superadmin"}`))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("email taken", func(t *testing.T) {
		mockService := &mocks.MockUserService{
			UpdateUserFunc: func(ctx context.Context, _ primitive.ObjectID, _ *models.UpdateUserRequest) (*models.User, error) {
				return nil, apperrors.ErrUserAlreadyExists
			},
		}

		router := newTestRouter()
		router.PATCH("/users/:id", NewUserHandler(mockService).UpdateUser)

		w := serve(router, jsonRequest(t, http.MethodPatch, "/users/"+id.Hex(), `{"email":"taken@example.com"}`))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	id := primitive.NewObjectID()
	var deleted primitive.ObjectID
	mockService := &mocks.MockUserService{
		DeleteUserFunc: func(ctx context.Context, got primitive.ObjectID) error {
			deleted = got
			return nil
		},
	}

	router := newTestRouter()
	router.DELETE("/users/:id", NewUserHandler(mockService).DeleteUser)

	w := serve(router, jsonRequest(t, http.MethodDelete, "/users/"+id.Hex(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, deleted)
}
