package store

import (
	"sync"

	"storefront-client/internal/models"
	"storefront-client/internal/util"
)

// ProductsSlice holds the public catalog, the current product detail and the
// seller-scoped catalog.
type ProductsSlice struct {
	mu             sync.RWMutex
	items          []models.Product
	currentProduct *models.Product
	sellerProducts []models.Product
}

func NewProductsSlice() *ProductsSlice {
	return &ProductsSlice{}
}

// SetItems replaces the public catalog.
func (s *ProductsSlice) SetItems(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = copyProducts(products)
	util.StoreSyncTotal.WithLabelValues("products").Inc()
}

// SetCurrent records the product detail view.
func (s *ProductsSlice) SetCurrent(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := product
	s.currentProduct = &p
}

// ClearCurrent drops the product detail view.
func (s *ProductsSlice) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentProduct = nil
}

// SetSellerProducts replaces the seller-scoped catalog.
func (s *ProductsSlice) SetSellerProducts(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sellerProducts = copyProducts(products)
	util.StoreSyncTotal.WithLabelValues("products").Inc()
}

// ClearSellerProducts drops the seller-scoped catalog.
func (s *ProductsSlice) ClearSellerProducts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sellerProducts = nil
}

// Add appends a created product to both the public and seller collections.
func (s *ProductsSlice) Add(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, product)
	s.sellerProducts = append(s.sellerProducts, product)
}

// Update replaces the matching product in every collection that holds it,
// including the detail view. No-op when the id is unknown everywhere.
func (s *ProductsSlice) Update(updated models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = updated
			break
		}
	}
	for i := range s.sellerProducts {
		if s.sellerProducts[i].ID == updated.ID {
			s.sellerProducts[i] = updated
			break
		}
	}
	if s.currentProduct != nil && s.currentProduct.ID == updated.ID {
		p := updated
		s.currentProduct = &p
	}
}

// Remove filters a deleted product out of every collection. The owning call
// may resolve with an empty body, so the argument is an entity or a bare id.
func (s *ProductsSlice) Remove(idOrEntity interface{}) {
	id := productID(idOrEntity)
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = filterProducts(s.items, id)
	s.sellerProducts = filterProducts(s.sellerProducts, id)
	if s.currentProduct != nil && s.currentProduct.ID == id {
		s.currentProduct = nil
	}
}

// Items returns a copy of the public catalog.
func (s *ProductsSlice) Items() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProducts(s.items)
}

// Current returns a copy of the detail view, or nil.
func (s *ProductsSlice) Current() *models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentProduct == nil {
		return nil
	}
	p := *s.currentProduct
	return &p
}

// SellerProducts returns a copy of the seller-scoped catalog.
func (s *ProductsSlice) SellerProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProducts(s.sellerProducts)
}

func copyProducts(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	copy(out, in)
	return out
}

func filterProducts(in []models.Product, id string) []models.Product {
	out := in[:0]
	for _, p := range in {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func productID(idOrEntity interface{}) string {
	switch v := idOrEntity.(type) {
	case string:
		return v
	case models.Product:
		return v.ID
	case *models.Product:
		if v != nil {
			return v.ID
		}
	}
	return ""
}
