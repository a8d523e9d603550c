package service

import (
	"context"
	"errors"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/model"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	List(ctx context.Context) ([]*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserService handles user business logic
type UserService struct {
	userRepo UserRepository
}

// UserServiceConfig holds configuration for the user service
type UserServiceConfig struct {
	UserRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(cfg UserServiceConfig) *UserService {
	return &UserService{
		userRepo: cfg.UserRepo,
	}
}

// List retrieves every user
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

// Get retrieves a user by ID
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create stores a new user. The request must already be validated.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	user := req.ToUser()
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Favorites are not cascaded; a user who still has
// favorites cannot be deleted.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrConstraint) {
			return ErrUserHasFavorites
		}
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
