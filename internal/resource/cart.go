package resource

import (
	"context"
	"fmt"

	"storefront-client/internal/api"
	"storefront-client/internal/cache"
	"storefront-client/internal/store"
	"storefront-client/internal/util"

	"go.uber.org/zap"
)

// CartResource synchronizes the server cart with the cart slice. Cart
// mutations never merge locally: the server recomputes discount and
// stock-validated quantities, so every successful write triggers a full
// refetch of the cart before projection.
type CartResource struct {
	client *api.Client
	cache  *cache.Cache
	store  *store.Store
	seq    *seqTracker
	logger *zap.Logger
}

// Refresh fetches the authoritative cart and projects it into the slice.
// Gated on the user id being known.
func (r *CartResource) Refresh(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNotReady
	}
	seq := r.seq.begin(seqCart)
	cart, err := r.client.GetCart(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	r.cache.Set(cache.CartKey(userID), *cart)
	r.seq.apply(seqCart, seq, func() {
		r.store.Cart.SetCart(*cart)
	})
	return nil
}

// AddItem adds a product to the cart, then refetches.
func (r *CartResource) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	if userID == "" {
		return ErrNotReady
	}
	if err := r.client.AddCartItem(ctx, productID, quantity); err != nil {
		util.MutationsTotal.WithLabelValues("cart", "error").Inc()
		r.logger.Warn("Add to cart failed", zap.String("product_id", productID), zap.Error(err))
		return err
	}
	util.MutationsTotal.WithLabelValues("cart", "ok").Inc()
	return r.Refresh(ctx, userID)
}

// UpdateQuantity sets a line quantity, then refetches.
func (r *CartResource) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if userID == "" {
		return ErrNotReady
	}
	if err := r.client.UpdateCartItem(ctx, productID, quantity); err != nil {
		util.MutationsTotal.WithLabelValues("cart", "error").Inc()
		return err
	}
	util.MutationsTotal.WithLabelValues("cart", "ok").Inc()
	return r.Refresh(ctx, userID)
}

// RemoveItem removes a line, then refetches.
func (r *CartResource) RemoveItem(ctx context.Context, userID, productID string) error {
	if userID == "" {
		return ErrNotReady
	}
	if err := r.client.RemoveCartItem(ctx, productID); err != nil {
		util.MutationsTotal.WithLabelValues("cart", "error").Inc()
		return err
	}
	util.MutationsTotal.WithLabelValues("cart", "ok").Inc()
	return r.Refresh(ctx, userID)
}

// Clear empties the cart. The result is fully known locally, so the slice
// is cleared directly instead of refetching.
func (r *CartResource) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNotReady
	}
	seq := r.seq.begin(seqCart)
	if err := r.client.ClearCart(ctx); err != nil {
		util.MutationsTotal.WithLabelValues("cart", "error").Inc()
		return err
	}
	util.MutationsTotal.WithLabelValues("cart", "ok").Inc()
	r.cache.Invalidate(cache.CartKey(userID))
	r.seq.apply(seqCart, seq, func() {
		r.store.Cart.Clear()
	})
	return nil
}
