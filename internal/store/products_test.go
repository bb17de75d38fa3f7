package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-client/internal/models"
)

func TestProductsUpdateTouchesEveryCollection(t *testing.T) {
	s := NewProductsSlice()
	p := models.Product{ID: "p1", Title: "Serum", Price: 29.99}
	s.SetItems([]models.Product{p})
	s.SetSellerProducts([]models.Product{p})
	s.SetCurrent(p)

	p.Price = 34.99
	s.Update(p)

	assert.InDelta(t, 34.99, s.Items()[0].Price, 1e-9)
	assert.InDelta(t, 34.99, s.SellerProducts()[0].Price, 1e-9)
	require.NotNil(t, s.Current())
	assert.InDelta(t, 34.99, s.Current().Price, 1e-9)
}

func TestProductsUpdateUnknownIDIsNoOp(t *testing.T) {
	s := NewProductsSlice()
	s.SetItems([]models.Product{{ID: "p1", Title: "Serum"}})

	s.Update(models.Product{ID: "ghost", Title: "Ghost"})

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestProductsRemoveClearsDetailView(t *testing.T) {
	s := NewProductsSlice()
	p := models.Product{ID: "p1", Title: "Serum"}
	s.SetItems([]models.Product{p, {ID: "p2", Title: "Lipstick"}})
	s.SetCurrent(p)

	s.Remove("p1")

	assert.Len(t, s.Items(), 1)
	assert.Nil(t, s.Current())
}

func TestProductsAddAppendsToBothCollections(t *testing.T) {
	s := NewProductsSlice()

	s.Add(models.Product{ID: "p1", Title: "Serum"})

	assert.Len(t, s.Items(), 1)
	assert.Len(t, s.SellerProducts(), 1)
}
