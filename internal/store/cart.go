package store

import (
	"sync"

	"storefront-client/internal/models"
	"storefront-client/internal/util"
)

// CartSlice holds the last known good cart. The total is always recomputed
// as a fold over the current items after every structural change and never
// trusted as an independent field from any payload.
type CartSlice struct {
	mu       sync.RWMutex
	items    []models.CartItem
	total    float64
	discount float64
}

func NewCartSlice() *CartSlice {
	return &CartSlice{}
}

// SetCart replaces the whole cart from an authoritative fetch.
func (s *CartSlice) SetCart(cart models.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]models.CartItem, len(cart.Items))
	copy(s.items, cart.Items)
	s.discount = cart.Discount
	s.recompute()
	util.StoreSyncTotal.WithLabelValues("cart").Inc()
}

// AddItem appends a line, or bumps the quantity when the product is already
// in the cart.
func (s *CartSlice) AddItem(item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == item.Product.ID {
			s.items[i].Quantity += item.Quantity
			s.recompute()
			return
		}
	}
	s.items = append(s.items, item)
	s.recompute()
}

// RemoveItem drops the line for productID. No-op when absent.
func (s *CartSlice) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.recompute()
			return
		}
	}
}

// UpdateQuantity sets the quantity on the line for productID. No-op when
// absent.
func (s *CartSlice) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			s.recompute()
			return
		}
	}
}

// ApplyDiscount records the server-computed discount.
func (s *CartSlice) ApplyDiscount(discount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount = discount
}

// Clear empties the cart.
func (s *CartSlice) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.total = 0
	s.discount = 0
}

// Items returns a copy of the current lines.
func (s *CartSlice) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the current fold of price times quantity.
func (s *CartSlice) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Discount returns the last applied discount.
func (s *CartSlice) Discount() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.discount
}

// Snapshot returns a copy of the whole slice state.
func (s *CartSlice) Snapshot() models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return models.Cart{Items: items, Total: s.total, Discount: s.discount}
}

// recompute folds price*quantity over the current items. Callers hold mu.
func (s *CartSlice) recompute() {
	var total float64
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	s.total = total
}
