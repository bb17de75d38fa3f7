package resource

import (
	"context"
	"fmt"

	"storefront-client/internal/api"
	"storefront-client/internal/models"
	"storefront-client/internal/session"
	"storefront-client/internal/store"

	"go.uber.org/zap"
)

// AuthResource handles login, signup and logout, keeping the persisted
// session and the auth slice in step.
type AuthResource struct {
	client  *api.Client
	session *session.Store
	store   *store.Store
	logger  *zap.Logger
}

// Login authenticates, persists the session and records the credentials in
// the auth slice.
func (r *AuthResource) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := r.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := r.session.Set(resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	r.store.Auth.SetCredentials(resp.Token, resp.User)
	r.logger.Info("Logged in",
		zap.String("user_id", resp.User.ID),
		zap.String("role", string(resp.User.Role)))
	return &resp.User, nil
}

// Register creates an account and establishes the session like Login.
func (r *AuthResource) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	resp, err := r.client.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	if err := r.session.Set(resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	r.store.Auth.SetCredentials(resp.Token, resp.User)
	return &resp.User, nil
}

// Logout clears the persisted session and the auth slice.
func (r *AuthResource) Logout() error {
	if err := r.session.Clear(); err != nil {
		return err
	}
	r.store.Auth.Logout()
	return nil
}

// Profile fetches the authenticated user's profile.
func (r *AuthResource) Profile(ctx context.Context) (*models.User, error) {
	return r.client.Profile(ctx)
}
