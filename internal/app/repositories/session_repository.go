package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/kvstore"
)

// SessionRepository persists the single current-user pointer under its own
// key. It is set on login and cleared on logout.
type SessionRepository struct {
	store kvstore.Store
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(store kvstore.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// SetCurrentUser persists the current-user pointer
func (r *SessionRepository) SetCurrentUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode current user: %w", err)
	}
	return r.store.Set(ctx, KeyCurrentUser, raw)
}

// GetCurrentUser returns the persisted current user, or (nil, nil) when no
// user is logged in or the stored value cannot be decoded.
func (r *SessionRepository) GetCurrentUser(ctx context.Context) (*models.User, error) {
	raw, err := r.store.Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read current user: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

// Clear removes the current-user pointer
func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, KeyCurrentUser)
}
