package store

import (
	"sync"

	"storefront-client/internal/models"
	"storefront-client/internal/util"
)

// CategoriesSlice holds the category list.
type CategoriesSlice struct {
	mu    sync.RWMutex
	items []models.Category
}

func NewCategoriesSlice() *CategoriesSlice {
	return &CategoriesSlice{}
}

// SetItems replaces the category list.
func (s *CategoriesSlice) SetItems(categories []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]models.Category, len(categories))
	copy(s.items, categories)
	util.StoreSyncTotal.WithLabelValues("categories").Inc()
}

// Add appends a created category.
func (s *CategoriesSlice) Add(category models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, category)
}

// Update replaces the matching category in place. No-op on unknown id.
func (s *CategoriesSlice) Update(updated models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = updated
			return
		}
	}
}

// Remove filters a deleted category out. Accepts an entity or a bare id
// since the owning call may resolve with an empty body.
func (s *CategoriesSlice) Remove(idOrEntity interface{}) {
	var id string
	switch v := idOrEntity.(type) {
	case string:
		id = v
	case models.Category:
		id = v.ID
	case *models.Category:
		if v != nil {
			id = v.ID
		}
	}
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.items[:0]
	for _, c := range s.items {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	s.items = filtered
}

// Items returns a copy of the category list.
func (s *CategoriesSlice) Items() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.items))
	copy(out, s.items)
	return out
}
