package services

import (
	"context"
	"strings"

	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository"
)

// UserService handles user profile business logic
type UserService interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	EnsureUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id, name, email string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting user: id=%s", id)

	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		if !errors.IsNotFound(err) {
			log.Error("failed to get user: %v", err)
		}
		return nil, storageError("user lookup", "user", id, err)
	}
	return user, nil
}

func (s *userService) EnsureUser(ctx context.Context, id string) (*models.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.NewValidationError("userId", "cannot be empty")
	}

	user, err := s.userRepo.Ensure(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to ensure user: %v", err)
		return nil, errors.NewStorageError("user upsert", err)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id, name, email string) (*models.User, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating user: id=%s", id)

	user, err := s.userRepo.Update(ctx, models.User{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	})
	if err != nil {
		if !errors.IsNotFound(err) {
			log.Error("failed to update user: %v", err)
		}
		return nil, storageError("user update", "user", id, err)
	}
	return user, nil
}
