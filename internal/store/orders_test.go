package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-client/internal/models"
)

func order(id, status string) models.Order {
	return models.Order{ID: id, Status: status}
}

func orderIDs(orders []models.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestOrdersUpdateUnknownIDNeverInserts(t *testing.T) {
	s := NewOrdersSlice()
	s.SetOrders([]models.Order{order("o1", models.OrderStatusPending)})

	s.UpdateOrder(order("ghost", models.OrderStatusShipped))
	s.UpdateSellerOrder(order("ghost", models.OrderStatusShipped))

	assert.Equal(t, []string{"o1"}, orderIDs(s.Orders()))
	assert.Empty(t, s.SellerOrders())
}

func TestOrdersUpdateReplacesInPlace(t *testing.T) {
	s := NewOrdersSlice()
	s.SetOrders([]models.Order{
		order("o1", models.OrderStatusPending),
		order("o2", models.OrderStatusPending),
	})

	s.UpdateOrder(order("o2", models.OrderStatusShipped))

	orders := s.Orders()
	assert.Equal(t, []string{"o1", "o2"}, orderIDs(orders))
	assert.Equal(t, models.OrderStatusShipped, orders[1].Status)
}

func TestOrdersRemoveThenRestoreKeepsCollectionsDisjoint(t *testing.T) {
	s := NewOrdersSlice()
	s.SetOrders([]models.Order{
		order("o1", models.OrderStatusPending),
		order("o2", models.OrderStatusPending),
	})

	s.RemoveOrder("o2")
	s.SetDeletedOrders([]models.Order{order("o2", models.OrderStatusDeleted)})

	assert.Equal(t, []string{"o1"}, orderIDs(s.Orders()))
	assert.Equal(t, []string{"o2"}, orderIDs(s.DeletedOrders()))

	s.RestoreOrder(order("o2", models.OrderStatusPending))

	assert.Equal(t, []string{"o1", "o2"}, orderIDs(s.Orders()))
	assert.Empty(t, s.DeletedOrders())
}

func TestOrdersRemoveAcceptsEntityOrID(t *testing.T) {
	s := NewOrdersSlice()
	s.SetOrders([]models.Order{
		order("o1", models.OrderStatusPending),
		order("o2", models.OrderStatusPending),
		order("o3", models.OrderStatusPending),
	})

	s.RemoveOrder("o1")
	s.RemoveOrder(order("o2", models.OrderStatusPending))
	s.RemoveOrder(&models.Order{ID: "o3"})

	assert.Empty(t, s.Orders())
}

func TestOrdersRemoveNilOrUnknownIsNoOp(t *testing.T) {
	s := NewOrdersSlice()
	s.SetOrders([]models.Order{order("o1", models.OrderStatusPending)})

	s.RemoveOrder(nil)
	s.RemoveOrder("")
	s.RemoveOrder("ghost")
	s.RemoveOrder((*models.Order)(nil))

	assert.Equal(t, []string{"o1"}, orderIDs(s.Orders()))
}

func TestOrdersGettersReturnCopies(t *testing.T) {
	s := NewOrdersSlice()
	s.SetOrders([]models.Order{order("o1", models.OrderStatusPending)})

	got := s.Orders()
	got[0].Status = models.OrderStatusCancelled

	assert.Equal(t, models.OrderStatusPending, s.Orders()[0].Status)
}
