package repository

import (
	"context"
	"errors"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// List retrieves every user
func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	users := []*model.User{}
	if err := r.db.Select(ctx, &users, `SELECT id, email, password, is_active FROM users`); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.Get(ctx, &user, `SELECT id, email, password, is_active FROM users WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and sets its ID
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	id, err := r.db.Insert(ctx,
		`INSERT INTO users (email, password, is_active) VALUES (?, ?, ?) RETURNING id`,
		user.Email, user.Password, user.IsActive,
	)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// Delete deletes a user. Returns false if no row matched.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.db.Execute(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
