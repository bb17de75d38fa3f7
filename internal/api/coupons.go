package api

import (
	"context"
	"net/http"

	"storefront-client/internal/models"
)

// ListCoupons fetches all coupons visible to the caller.
func (c *Client) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := c.getJSON(ctx, "/coupons", &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// GetCoupon fetches one coupon by id.
func (c *Client) GetCoupon(ctx context.Context, id string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := c.getJSON(ctx, "/coupons/"+id, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

// CreateCoupon creates a discount rule.
func (c *Client) CreateCoupon(ctx context.Context, coupon models.Coupon) (*models.Coupon, error) {
	var created models.Coupon
	if err := c.sendJSON(ctx, http.MethodPost, "/coupons", coupon, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCoupon updates a discount rule.
func (c *Client) UpdateCoupon(ctx context.Context, id string, coupon models.Coupon) (*models.Coupon, error) {
	var updated models.Coupon
	if err := c.sendJSON(ctx, http.MethodPut, "/coupons/"+id, coupon, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCoupon removes a discount rule.
func (c *Client) DeleteCoupon(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/coupons/"+id, nil, nil)
}

// ValidateCoupon asks the server whether a code applies to the current cart.
func (c *Client) ValidateCoupon(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	body := map[string]string{"code": code}
	if err := c.sendJSON(ctx, http.MethodPost, "/coupons/validate", body, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}
