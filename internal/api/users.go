package api

import (
	"context"
	"fmt"
	"net/http"

	"storefront-client/internal/models"
)

// ListUsers fetches one page of the admin user listing.
func (c *Client) ListUsers(ctx context.Context, page int) (*models.UserPage, error) {
	var userPage models.UserPage
	if err := c.getJSON(ctx, fmt.Sprintf("/users?page=%d", page), &userPage); err != nil {
		return nil, err
	}
	return &userPage, nil
}

// ListRoles fetches the assignable roles.
func (c *Client) ListRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := c.getJSON(ctx, "/users/roles", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// UpdateUserRole assigns a role to a user.
func (c *Client) UpdateUserRole(ctx context.Context, userID string, role models.Role) (*models.User, error) {
	var user models.User
	body := map[string]models.Role{"role": role}
	if err := c.sendJSON(ctx, http.MethodPut, "/users/"+userID+"/role", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/users/"+userID, nil, nil)
}

// SellerStats fetches the authenticated seller's aggregates.
func (c *Client) SellerStats(ctx context.Context) (*models.SellerStats, error) {
	var stats models.SellerStats
	if err := c.getJSON(ctx, "/users/me/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
