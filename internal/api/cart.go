package api

import (
	"context"
	"net/http"

	"storefront-client/internal/models"
)

// GetCart fetches the authenticated user's cart. The server recomputes
// totals and discount; callers must treat this as the authoritative shape.
func (c *Client) GetCart(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := c.getJSON(ctx, "/cart", &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity,omitempty"`
}

// AddCartItem adds quantity of a product to the cart.
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) error {
	return c.sendJSON(ctx, http.MethodPost, "/cart", cartItemRequest{ProductID: productID, Quantity: quantity}, nil)
}

// UpdateCartItem sets the quantity of a cart line.
func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) error {
	return c.sendJSON(ctx, http.MethodPut, "/cart", cartItemRequest{ProductID: productID, Quantity: quantity}, nil)
}

// RemoveCartItem removes a cart line.
func (c *Client) RemoveCartItem(ctx context.Context, productID string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/cart", cartItemRequest{ProductID: productID}, nil)
}

// ClearCart empties the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodDelete, "/cart/clear", nil, nil)
}
