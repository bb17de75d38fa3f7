package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"storefront-client/internal/models"
)

// Login authenticates and returns the token plus denormalized user record.
// Response shape: { token, user }, not enveloped.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	data, err := c.do(ctx, http.MethodPost, "/auth/login", bytes.NewReader(encoded), "application/json")
	if err != nil {
		return nil, err
	}
	var resp models.AuthResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}
	return &resp, nil
}

// Register creates an account and returns the same shape as Login.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	data, err := c.do(ctx, http.MethodPost, "/auth/register", bytes.NewReader(encoded), "application/json")
	if err != nil {
		return nil, err
	}
	var resp models.AuthResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}
	return &resp, nil
}

// Profile returns the authenticated user's profile. Response shape is
// { user: ... }, not the usual data envelope.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	data, err := c.do(ctx, http.MethodGet, "/auth/profile", nil, "")
	if err != nil {
		return nil, err
	}
	var resp struct {
		User models.User `json:"user"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &resp.User, nil
}

// UpdateProfile updates the authenticated user's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]string) (*models.User, error) {
	var user models.User
	if err := c.sendJSON(ctx, http.MethodPut, "/auth/profile", fields, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
