package api

import (
	"context"
	"net/http"

	"storefront-client/internal/models"
)

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	var created models.Category
	if err := c.sendJSON(ctx, http.MethodPost, "/categories", category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, id string, category models.Category) (*models.Category, error) {
	var updated models.Category
	if err := c.sendJSON(ctx, http.MethodPut, "/categories/"+id, category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory removes a category. May resolve with an empty body.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/categories/"+id, nil, nil)
}
