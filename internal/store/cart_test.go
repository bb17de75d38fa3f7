package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-client/internal/models"
)

func cartLine(id string, price float64, quantity int) models.CartItem {
	return models.CartItem{
		Product:  models.Product{ID: id, Title: "Product " + id, Price: price},
		Quantity: quantity,
	}
}

func TestCartSetCartRecomputesTotal(t *testing.T) {
	s := NewCartSlice()

	// The payload total lies on purpose; the fold over items wins.
	s.SetCart(models.Cart{
		Items: []models.CartItem{
			cartLine("p1", 10.00, 2),
			cartLine("p2", 5.50, 1),
		},
		Total:    999.99,
		Discount: 3.00,
	})

	assert.InDelta(t, 25.50, s.Total(), 1e-9)
	assert.InDelta(t, 3.00, s.Discount(), 1e-9)
	assert.Len(t, s.Items(), 2)
}

func TestCartAddItemMergesExistingLine(t *testing.T) {
	s := NewCartSlice()

	s.AddItem(cartLine("p1", 29.99, 2))
	s.AddItem(cartLine("p1", 29.99, 3))

	items := s.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.InDelta(t, 149.95, s.Total(), 1e-9)
}

func TestCartUpdateQuantityRecomputes(t *testing.T) {
	s := NewCartSlice()
	s.AddItem(cartLine("p1", 29.99, 1))

	s.UpdateQuantity("p1", 5)

	assert.InDelta(t, 149.95, s.Total(), 1e-9)
}

func TestCartUnknownProductIsNoOp(t *testing.T) {
	s := NewCartSlice()
	s.AddItem(cartLine("p1", 10.00, 1))

	s.UpdateQuantity("missing", 7)
	s.RemoveItem("missing")

	items := s.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.InDelta(t, 10.00, s.Total(), 1e-9)
}

func TestCartRemoveItemRecomputes(t *testing.T) {
	s := NewCartSlice()
	s.AddItem(cartLine("p1", 10.00, 2))
	s.AddItem(cartLine("p2", 4.00, 1))

	s.RemoveItem("p1")

	assert.Len(t, s.Items(), 1)
	assert.InDelta(t, 4.00, s.Total(), 1e-9)
}

func TestCartClear(t *testing.T) {
	s := NewCartSlice()
	s.AddItem(cartLine("p1", 10.00, 2))
	s.ApplyDiscount(2.00)

	s.Clear()

	assert.Empty(t, s.Items())
	assert.Zero(t, s.Total())
	assert.Zero(t, s.Discount())
}

func TestCartSnapshotIsACopy(t *testing.T) {
	s := NewCartSlice()
	s.AddItem(cartLine("p1", 10.00, 2))

	snap := s.Snapshot()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 2, s.Items()[0].Quantity)
}
