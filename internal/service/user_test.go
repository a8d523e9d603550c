package service

import (
	"context"
	"errors"
	"testing"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockUserRepo struct {
	listFunc    func(ctx context.Context) ([]*model.User, error)
	getByIDFunc func(ctx context.Context, id int64) (*model.User, error)
	createFunc  func(ctx context.Context, user *model.User) error
	deleteFunc  func(ctx context.Context, id int64) (bool, error)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*model.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*model.User{}, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return true, nil
}

func existingUser(ctx context.Context, id int64) (*model.User, error) {
	return &model.User{ID: id, Email: "obi-wan@jedi.org", IsActive: true}, nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func int64Ptr(i int64) *int64 { return &i }

// ============================================================================
// Get Tests
// ============================================================================

func TestUserService_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewUserService(UserServiceConfig{UserRepo: &mockUserRepo{}})

	_, err := svc.Get(context.Background(), 1)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Get_RepoError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("disk on fire")
	svc := NewUserService(UserServiceConfig{UserRepo: &mockUserRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.User, error) { return nil, repoErr },
	}})

	_, err := svc.Get(context.Background(), 1)
	if !errors.Is(err, repoErr) {
		t.Errorf("expected repo error to propagate, got %v", err)
	}
}

// ============================================================================
// Create Tests
// ============================================================================

func TestUserService_Create(t *testing.T) {
	t.Parallel()

	var stored *model.User
	svc := NewUserService(UserServiceConfig{UserRepo: &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			user.ID = 7
			stored = user
			return nil
		},
	}})

	user, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Email:    strPtr("a@b.com"),
		Password: strPtr("x"),
		IsActive: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 || stored != user {
		t.Errorf("expected stored user with ID 7, got %+v", user)
	}
	if user.Password != "x" {
		t.Errorf("expected password stored as given, got %q", user.Password)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := NewUserService(UserServiceConfig{UserRepo: &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			return database.ErrDuplicate
		},
	}})

	_, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Email:    strPtr("a@b.com"),
		Password: strPtr("x"),
		IsActive: boolPtr(false),
	})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

// ============================================================================
// Delete Tests
// ============================================================================

func TestUserService_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		repo    *mockUserRepo
		wantErr error
	}{
		{
			name:    "missing user",
			repo:    &mockUserRepo{},
			wantErr: ErrUserNotFound,
		},
		{
			name:    "deleted",
			repo:    &mockUserRepo{getByIDFunc: existingUser},
			wantErr: nil,
		},
		{
			name: "user with favorites",
			repo: &mockUserRepo{
				getByIDFunc: existingUser,
				deleteFunc: func(ctx context.Context, id int64) (bool, error) {
					return false, database.ErrConstraint
				},
			},
			wantErr: ErrUserHasFavorites,
		},
		{
			name: "vanished between lookup and delete",
			repo: &mockUserRepo{
				getByIDFunc: existingUser,
				deleteFunc: func(ctx context.Context, id int64) (bool, error) {
					return false, nil
				},
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewUserService(UserServiceConfig{UserRepo: tt.repo})
			err := svc.Delete(context.Background(), 1)

			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
