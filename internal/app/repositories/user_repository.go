package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/kvstore"
	"github.com/oguzkose/resourcehub/internal/pkg/apperrors"
)

// UserRepository handles storage operations for users
type UserRepository struct {
	store kvstore.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(store kvstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

// GetAll retrieves all users
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	return loadCollection[*models.User](ctx, r.store, KeyUsers)
}

// FindByID retrieves a user by id, returning (nil, nil) when absent
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

// FindByEmail retrieves a user by email (case-insensitive), returning
// (nil, nil) when absent
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, nil
}

// Add assigns a generated id and timestamps to the draft, appends it to the
// collection and persists the snapshot.
func (r *UserRepository) Add(ctx context.Context, draft *models.User) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := *draft
	user.ID = GenerateID()
	user.CreatedAt = now
	user.LastLogin = now

	users = append(users, &user)
	if err := saveCollection(ctx, r.store, KeyUsers, users); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserUpdate carries the fields a user update may touch; nil fields are left
// unchanged.
type UserUpdate struct {
	Name         *string
	Email        *string
	DepartmentID *string
	PasswordHash *string
	LastLogin    *time.Time
}

// Update merges the given fields into the stored user. An absent id reports
// ErrUserNotFound and nothing is written.
func (r *UserRepository) Update(ctx context.Context, id string, update UserUpdate) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		if user.ID != id {
			continue
		}
		if update.Name != nil {
			user.Name = *update.Name
		}
		if update.Email != nil {
			user.Email = *update.Email
		}
		if update.DepartmentID != nil {
			user.DepartmentID = *update.DepartmentID
		}
		if update.PasswordHash != nil {
			user.PasswordHash = *update.PasswordHash
		}
		if update.LastLogin != nil {
			user.LastLogin = *update.LastLogin
		}
		return saveCollection(ctx, r.store, KeyUsers, users)
	}

	return apperrors.ErrUserNotFound
}
