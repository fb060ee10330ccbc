package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"compliance-cms/internal/cache"
	"compliance-cms/internal/models"
	"compliance-cms/internal/repository"
	"compliance-cms/pkg/auth"
)

// UserService handles business logic for user operations.
type UserService struct {
	repo  repository.UserRepository
	cache cache.Cache
	log   *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, cache cache.Cache, log *zap.Logger) *UserService {
	return &UserService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// CreateUser hashes the password and stores the user. Type defaults to admin.
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	userType := req.Type
	if userType == "" {
		userType = models.UserTypeAdmin
	}

	user := &models.User{
		Email:    normalizeEmail(req.Email),
		Password: hashedPassword,
		Type:     userType,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by ID (with caching).
func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	cacheKey := cache.UserCacheKey(id.Hex())

	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err != nil {
		s.log.Warn("user cache read failed", zap.String("key", cacheKey), zap.Error(err))
	}
	if err == nil && found {
		return &user, nil
	}

	dbUser, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, dbUser, cache.UserCacheTTL); err != nil {
		s.log.Warn("user cache write failed", zap.String("key", cacheKey), zap.Error(err))
	}

	return dbUser, nil
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// UpdateUser applies the supplied fields. A new password is hashed first.
func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	update := *req
	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		update.Email = &email
	}
	if update.Password != nil {
		hashed, err := auth.HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		update.Password = &hashed
	}

	user, err := s.repo.Update(ctx, id, &update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return user, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *UserService) invalidate(ctx context.Context, id primitive.ObjectID) {
	if err := s.cache.Delete(ctx, cache.UserCacheKey(id.Hex())); err != nil {
		s.log.Warn("user cache invalidation failed", zap.String("userId", id.Hex()), zap.Error(err))
	}
}
