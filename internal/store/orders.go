package store

import (
	"sync"

	"storefront-client/internal/models"
	"storefront-client/internal/util"
)

// OrdersSlice holds the active, soft-deleted and seller-scoped order
// collections. Active and deleted collections stay disjoint: restore and
// soft-delete each move an order between them in a single update.
type OrdersSlice struct {
	mu            sync.RWMutex
	orders        []models.Order
	deletedOrders []models.Order
	sellerOrders  []models.Order
}

func NewOrdersSlice() *OrdersSlice {
	return &OrdersSlice{}
}

// SetOrders replaces the active collection.
func (s *OrdersSlice) SetOrders(orders []models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = copyOrders(orders)
	util.StoreSyncTotal.WithLabelValues("orders").Inc()
}

// SetDeletedOrders replaces the soft-deleted collection.
func (s *OrdersSlice) SetDeletedOrders(orders []models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletedOrders = copyOrders(orders)
	util.StoreSyncTotal.WithLabelValues("orders").Inc()
}

// SetSellerOrders replaces the seller-scoped collection.
func (s *OrdersSlice) SetSellerOrders(orders []models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sellerOrders = copyOrders(orders)
	util.StoreSyncTotal.WithLabelValues("orders").Inc()
}

// AddOrder appends a freshly created order to the active collection.
func (s *OrdersSlice) AddOrder(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
}

// RemoveOrder drops an order from the active collection once the server has
// confirmed the soft-delete. The owning call may resolve with an empty body,
// so the argument is either a full entity or a bare id.
func (s *OrdersSlice) RemoveOrder(idOrEntity interface{}) {
	id := orderID(idOrEntity)
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			filtered = append(filtered, o)
		}
	}
	s.orders = filtered
}

// UpdateOrder replaces the matching active order in place. No-op when the id
// is not in the collection; it must never insert.
func (s *OrdersSlice) UpdateOrder(updated models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == updated.ID {
			s.orders[i] = updated
			return
		}
	}
}

// UpdateSellerOrder replaces the matching seller-scoped order in place.
// Same no-op boundary as UpdateOrder.
func (s *OrdersSlice) UpdateSellerOrder(updated models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sellerOrders {
		if s.sellerOrders[i].ID == updated.ID {
			s.sellerOrders[i] = updated
			return
		}
	}
}

// RestoreOrder appends the restored order to the active collection and
// filters it out of the deleted collection in the same update, keeping the
// two disjoint.
func (s *OrdersSlice) RestoreOrder(restored models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, restored)
	filtered := s.deletedOrders[:0]
	for _, o := range s.deletedOrders {
		if o.ID != restored.ID {
			filtered = append(filtered, o)
		}
	}
	s.deletedOrders = filtered
}

// Orders returns a copy of the active collection.
func (s *OrdersSlice) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOrders(s.orders)
}

// DeletedOrders returns a copy of the soft-deleted collection.
func (s *OrdersSlice) DeletedOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOrders(s.deletedOrders)
}

// SellerOrders returns a copy of the seller-scoped collection.
func (s *OrdersSlice) SellerOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOrders(s.sellerOrders)
}

func copyOrders(in []models.Order) []models.Order {
	out := make([]models.Order, len(in))
	copy(out, in)
	return out
}

// orderID resolves the id from a bare string, an entity, or a pointer.
func orderID(idOrEntity interface{}) string {
	switch v := idOrEntity.(type) {
	case string:
		return v
	case models.Order:
		return v.ID
	case *models.Order:
		if v != nil {
			return v.ID
		}
	}
	return ""
}
