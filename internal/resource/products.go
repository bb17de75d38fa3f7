package resource

import (
	"context"
	"fmt"

	"storefront-client/internal/api"
	"storefront-client/internal/cache"
	"storefront-client/internal/models"
	"storefront-client/internal/store"
	"storefront-client/internal/util"

	"go.uber.org/zap"
)

// ProductsResource synchronizes the catalog with the products slice.
// Create/update return the full entity and merge directly; delete filters
// by id since the server may resolve with an empty body.
type ProductsResource struct {
	client *api.Client
	cache  *cache.Cache
	store  *store.Store
	seq    *seqTracker
	logger *zap.Logger
}

// Refresh fetches the public catalog and projects it into the slice.
func (r *ProductsResource) Refresh(ctx context.Context) error {
	seq := r.seq.begin(seqProducts)
	products, err := r.client.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	r.cache.Set(cache.ProductsKey, products)
	r.seq.apply(seqProducts, seq, func() {
		r.store.Products.SetItems(products)
	})
	return nil
}

// Get fetches one product into the detail view. Gated on the id.
func (r *ProductsResource) Get(ctx context.Context, productID string) (*models.Product, error) {
	if productID == "" {
		return nil, ErrNotReady
	}
	seq := r.seq.begin(seqProductDetail)
	product, err := r.client.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	r.seq.apply(seqProductDetail, seq, func() {
		r.store.Products.SetCurrent(*product)
	})
	return product, nil
}

// RefreshSeller fetches the catalog entries owned by sellerID. Gated.
func (r *ProductsResource) RefreshSeller(ctx context.Context, sellerID string) error {
	if sellerID == "" {
		return ErrNotReady
	}
	seq := r.seq.begin(seqSellerProducts)
	products, err := r.client.ListSellerProducts(ctx, sellerID)
	if err != nil {
		return fmt.Errorf("failed to load seller products: %w", err)
	}
	r.cache.Set(cache.SellerProductsKey(sellerID), products)
	r.seq.apply(seqSellerProducts, seq, func() {
		r.store.Products.SetSellerProducts(products)
	})
	return nil
}

// Create creates a catalog entry and merges it into both collections.
func (r *ProductsResource) Create(ctx context.Context, form api.ProductForm) (*models.Product, error) {
	itemsSeq := r.seq.begin(seqProducts)
	sellerSeq := r.seq.begin(seqSellerProducts)
	product, err := r.client.CreateProduct(ctx, form)
	if err != nil {
		util.MutationsTotal.WithLabelValues("products", "error").Inc()
		return nil, err
	}
	util.MutationsTotal.WithLabelValues("products", "ok").Inc()
	r.seq.applyAll(map[string]uint64{
		seqProducts:       itemsSeq,
		seqSellerProducts: sellerSeq,
	}, func() {
		r.store.Products.Add(*product)
	})
	r.cache.Invalidate(cache.ProductsKey)
	r.logger.Info("Product created", zap.String("product_id", product.ID))
	return product, nil
}

// Update updates a catalog entry and merges the result in place.
func (r *ProductsResource) Update(ctx context.Context, productID string, form api.ProductForm) (*models.Product, error) {
	if productID == "" {
		return nil, ErrNotReady
	}
	seqs := map[string]uint64{
		seqProducts:       r.seq.begin(seqProducts),
		seqSellerProducts: r.seq.begin(seqSellerProducts),
		seqProductDetail:  r.seq.begin(seqProductDetail),
	}
	product, err := r.client.UpdateProduct(ctx, productID, form)
	if err != nil {
		util.MutationsTotal.WithLabelValues("products", "error").Inc()
		return nil, err
	}
	util.MutationsTotal.WithLabelValues("products", "ok").Inc()
	r.seq.applyAll(seqs, func() {
		r.store.Products.Update(*product)
	})
	r.cache.Invalidate(cache.ProductsKey)
	return product, nil
}

// Delete removes a catalog entry and filters it out of the slice. Historical
// order items keep their frozen price and title regardless.
func (r *ProductsResource) Delete(ctx context.Context, productID string) error {
	if productID == "" {
		return ErrNotReady
	}
	seqs := map[string]uint64{
		seqProducts:       r.seq.begin(seqProducts),
		seqSellerProducts: r.seq.begin(seqSellerProducts),
		seqProductDetail:  r.seq.begin(seqProductDetail),
	}
	if err := r.client.DeleteProduct(ctx, productID); err != nil {
		util.MutationsTotal.WithLabelValues("products", "error").Inc()
		return err
	}
	util.MutationsTotal.WithLabelValues("products", "ok").Inc()
	r.seq.applyAll(seqs, func() {
		r.store.Products.Remove(productID)
	})
	r.cache.Invalidate(cache.ProductsKey)
	return nil
}
