package resource

import (
	"context"
	"time"

	"storefront-client/internal/api"
	"storefront-client/internal/cache"
	"storefront-client/internal/models"
	"storefront-client/internal/util"

	"go.uber.org/zap"
)

// CouponsResource serves the coupon listing through the remote-result cache
// with a fixed freshness window (coupons change rarely), and invalidates it
// after every write so the next read refetches.
type CouponsResource struct {
	client      *api.Client
	cache       *cache.Cache
	seq         *seqTracker
	staleWindow time.Duration
	logger      *zap.Logger
}

// List returns the coupon collection, from cache when still fresh.
func (r *CouponsResource) List(ctx context.Context) ([]models.Coupon, error) {
	if cached, ok := r.cache.Get(cache.CouponsKey, r.staleWindow); ok {
		return cached.([]models.Coupon), nil
	}
	seq := r.seq.begin(cache.CouponsKey)
	coupons, err := r.client.ListCoupons(ctx)
	if err != nil {
		return nil, err
	}
	r.seq.apply(cache.CouponsKey, seq, func() {
		r.cache.Set(cache.CouponsKey, coupons)
	})
	return coupons, nil
}

// Get fetches one coupon. Gated on the id.
func (r *CouponsResource) Get(ctx context.Context, id string) (*models.Coupon, error) {
	if id == "" {
		return nil, ErrNotReady
	}
	return r.client.GetCoupon(ctx, id)
}

// Create creates a coupon and invalidates the listing.
func (r *CouponsResource) Create(ctx context.Context, coupon models.Coupon) (*models.Coupon, error) {
	created, err := r.client.CreateCoupon(ctx, coupon)
	if err != nil {
		util.MutationsTotal.WithLabelValues("coupons", "error").Inc()
		return nil, err
	}
	util.MutationsTotal.WithLabelValues("coupons", "ok").Inc()
	r.cache.Invalidate(cache.CouponsKey)
	r.logger.Info("Coupon created", zap.String("code", created.Code))
	return created, nil
}

// Update updates a coupon and invalidates the listing.
func (r *CouponsResource) Update(ctx context.Context, id string, coupon models.Coupon) (*models.Coupon, error) {
	if id == "" {
		return nil, ErrNotReady
	}
	updated, err := r.client.UpdateCoupon(ctx, id, coupon)
	if err != nil {
		util.MutationsTotal.WithLabelValues("coupons", "error").Inc()
		return nil, err
	}
	util.MutationsTotal.WithLabelValues("coupons", "ok").Inc()
	r.cache.Invalidate(cache.CouponsKey)
	return updated, nil
}

// Delete removes a coupon and invalidates the listing.
func (r *CouponsResource) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotReady
	}
	if err := r.client.DeleteCoupon(ctx, id); err != nil {
		util.MutationsTotal.WithLabelValues("coupons", "error").Inc()
		return err
	}
	util.MutationsTotal.WithLabelValues("coupons", "ok").Inc()
	r.cache.Invalidate(cache.CouponsKey)
	return nil
}

// Validate asks the server whether a code applies to the current cart.
func (r *CouponsResource) Validate(ctx context.Context, code string) (*models.Coupon, error) {
	if code == "" {
		return nil, ErrNotReady
	}
	return r.client.ValidateCoupon(ctx, code)
}
