package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
	"compliance-cms/internal/repository"
	"compliance-cms/pkg/auth"
)

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager auth.TokenManager
	log        *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtManager auth.TokenManager, log *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		log:        log,
	}
}

// ValidateUser checks the credentials. An unknown email and a wrong password
// fail the same way.
func (s *AuthService) ValidateUser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates a user and returns an access token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.ValidateUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, err
	}

	s.log.Info("user logged in", zap.String("userId", user.ID.Hex()))

	return &models.LoginResponse{AccessToken: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
