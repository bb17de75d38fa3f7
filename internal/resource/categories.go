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

// CategoriesResource synchronizes the category list with its slice.
type CategoriesResource struct {
	client *api.Client
	cache  *cache.Cache
	store  *store.Store
	seq    *seqTracker
	logger *zap.Logger
}

// Refresh fetches all categories and projects them into the slice.
func (r *CategoriesResource) Refresh(ctx context.Context) error {
	seq := r.seq.begin(seqCategories)
	categories, err := r.client.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	r.cache.Set(cache.CategoriesKey, categories)
	r.seq.apply(seqCategories, seq, func() {
		r.store.Categories.SetItems(categories)
	})
	return nil
}

// Create creates a category and merges it into the slice.
func (r *CategoriesResource) Create(ctx context.Context, category models.Category) (*models.Category, error) {
	seq := r.seq.begin(seqCategories)
	created, err := r.client.CreateCategory(ctx, category)
	if err != nil {
		util.MutationsTotal.WithLabelValues("categories", "error").Inc()
		return nil, err
	}
	util.MutationsTotal.WithLabelValues("categories", "ok").Inc()
	r.seq.apply(seqCategories, seq, func() {
		r.store.Categories.Add(*created)
	})
	r.cache.Invalidate(cache.CategoriesKey)
	return created, nil
}

// Update updates a category and merges the result in place.
func (r *CategoriesResource) Update(ctx context.Context, id string, category models.Category) (*models.Category, error) {
	if id == "" {
		return nil, ErrNotReady
	}
	seq := r.seq.begin(seqCategories)
	updated, err := r.client.UpdateCategory(ctx, id, category)
	if err != nil {
		util.MutationsTotal.WithLabelValues("categories", "error").Inc()
		return nil, err
	}
	util.MutationsTotal.WithLabelValues("categories", "ok").Inc()
	r.seq.apply(seqCategories, seq, func() {
		r.store.Categories.Update(*updated)
	})
	r.cache.Invalidate(cache.CategoriesKey)
	return updated, nil
}

// Delete removes a category and filters it out of the slice by id, since
// the server may resolve with an empty body.
func (r *CategoriesResource) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotReady
	}
	seq := r.seq.begin(seqCategories)
	if err := r.client.DeleteCategory(ctx, id); err != nil {
		util.MutationsTotal.WithLabelValues("categories", "error").Inc()
		return err
	}
	util.MutationsTotal.WithLabelValues("categories", "ok").Inc()
	r.seq.apply(seqCategories, seq, func() {
		r.store.Categories.Remove(id)
	})
	r.cache.Invalidate(cache.CategoriesKey)
	r.logger.Debug("Category deleted", zap.String("category_id", id))
	return nil
}
