package api

import (
	"context"
	"net/http"

	"storefront-client/internal/models"
)

// ListUserOrders fetches the orders owned by one user.
func (c *Client) ListUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, "/orders/"+userID, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAllOrders fetches every order (admin view).
func (c *Client) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListSellerOrders fetches orders containing the seller's products.
func (c *Client) ListSellerOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, "/orders/seller", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListDeletedOrders fetches soft-deleted orders (admin view).
func (c *Client) ListDeletedOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, "/orders/deleted", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.getJSON(ctx, "/orders/"+orderID, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder checks out the current cart with optional coupon codes.
// Response shape: { data: { order: ... } }.
func (c *Client) CreateOrder(ctx context.Context, coupons []string) (*models.Order, error) {
	if coupons == nil {
		coupons = []string{}
	}
	var resp struct {
		Order models.Order `json:"order"`
	}
	body := map[string][]string{"coupons": coupons}
	if err := c.sendJSON(ctx, http.MethodPost, "/orders", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// UpdateOrderStatus is the single canonical binding for the status change
// operation: PATCH /orders/:id/status with { newStatus }.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, newStatus string) (*models.Order, error) {
	var order models.Order
	body := map[string]string{"newStatus": newStatus}
	if err := c.sendJSON(ctx, http.MethodPatch, "/orders/"+orderID+"/status", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// SoftDeleteOrder marks an order deleted without erasing it. The server may
// resolve with an empty body.
func (c *Client) SoftDeleteOrder(ctx context.Context, orderID string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/orders/"+orderID+"/soft", nil, nil)
}

// RestoreOrder brings a soft-deleted order back and returns the restored
// entity.
func (c *Client) RestoreOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.sendJSON(ctx, http.MethodPatch, "/orders/"+orderID+"/restore", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
