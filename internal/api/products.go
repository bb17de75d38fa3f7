package api

import (
	"context"
	"net/http"

	"storefront-client/internal/models"
)

// ListProducts fetches the full public catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.getJSON(ctx, "/products/"+id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListSellerProducts fetches the catalog entries owned by one seller.
func (c *Client) ListSellerProducts(ctx context.Context, sellerID string) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products/seller/"+sellerID, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductForm carries the multipart fields for product create/update.
// Images are optional byte blobs keyed by form part name.
type ProductForm struct {
	Fields map[string]string
	Images map[string][]byte
}

// CreateProduct creates a catalog entry (multipart, may carry image parts).
func (c *Client) CreateProduct(ctx context.Context, form ProductForm) (*models.Product, error) {
	var product models.Product
	if err := c.sendMultipart(ctx, http.MethodPost, "/products", form.Fields, form.Images, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct updates a catalog entry (multipart, may carry image parts).
func (c *Client) UpdateProduct(ctx context.Context, id string, form ProductForm) (*models.Product, error) {
	var product models.Product
	if err := c.sendMultipart(ctx, http.MethodPut, "/products/"+id, form.Fields, form.Images, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a catalog entry. The server may resolve with an
// empty body, so no payload is decoded.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}
