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

// UsersResource serves the paginated admin user listing and the seller
// stats through the remote-result cache with the fixed freshness window.
// Every write invalidates all cached pages.
type UsersResource struct {
	client      *api.Client
	cache       *cache.Cache
	seq         *seqTracker
	staleWindow time.Duration
	logger      *zap.Logger
}

// Page returns one page of the user listing, from cache when still fresh.
// Pages are cached independently so two pages never collide.
func (r *UsersResource) Page(ctx context.Context, page int) (*models.UserPage, error) {
	if page < 1 {
		page = 1
	}
	key := cache.UsersKey(page)
	if cached, ok := r.cache.Get(key, r.staleWindow); ok {
		userPage := cached.(models.UserPage)
		return &userPage, nil
	}
	seq := r.seq.begin(key)
	userPage, err := r.client.ListUsers(ctx, page)
	if err != nil {
		return nil, err
	}
	r.seq.apply(key, seq, func() {
		r.cache.Set(key, *userPage)
	})
	return userPage, nil
}

// Roles returns the assignable roles.
func (r *UsersResource) Roles(ctx context.Context) ([]models.Role, error) {
	return r.client.ListRoles(ctx)
}

// UpdateRole assigns a role and invalidates every cached page.
func (r *UsersResource) UpdateRole(ctx context.Context, userID string, role models.Role) (*models.User, error) {
	if userID == "" {
		return nil, ErrNotReady
	}
	user, err := r.client.UpdateUserRole(ctx, userID, role)
	if err != nil {
		util.MutationsTotal.WithLabelValues("users", "error").Inc()
		return nil, err
	}
	util.MutationsTotal.WithLabelValues("users", "ok").Inc()
	r.cache.InvalidatePrefix("users:")
	r.logger.Info("User role updated",
		zap.String("user_id", userID),
		zap.String("role", string(role)))
	return user, nil
}

// Delete removes a user and invalidates every cached page.
func (r *UsersResource) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNotReady
	}
	if err := r.client.DeleteUser(ctx, userID); err != nil {
		util.MutationsTotal.WithLabelValues("users", "error").Inc()
		return err
	}
	util.MutationsTotal.WithLabelValues("users", "ok").Inc()
	r.cache.InvalidatePrefix("users:")
	return nil
}

// SellerStats returns the seller aggregates, from cache when still fresh.
func (r *UsersResource) SellerStats(ctx context.Context) (*models.SellerStats, error) {
	if cached, ok := r.cache.Get(cache.SellerStatsKey, r.staleWindow); ok {
		stats := cached.(models.SellerStats)
		return &stats, nil
	}
	seq := r.seq.begin(cache.SellerStatsKey)
	stats, err := r.client.SellerStats(ctx)
	if err != nil {
		return nil, err
	}
	r.seq.apply(cache.SellerStatsKey, seq, func() {
		r.cache.Set(cache.SellerStatsKey, *stats)
	})
	return stats, nil
}
