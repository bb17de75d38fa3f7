package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-client/internal/models"
)

func catalog(n int) []models.Product {
	products := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, models.Product{
			ID:    fmt.Sprintf("p%02d", i),
			Title: fmt.Sprintf("Product %02d", i),
			Price: float64(i + 1),
		})
	}
	return products
}

func TestBrowserLastPageCarriesRemainder(t *testing.T) {
	b := NewBrowser(catalog(19), 8)

	assert.Equal(t, 3, b.TotalPages())

	b.SetPage(3)
	assert.Len(t, b.CurrentPage(), 3)

	b.SetPage(1)
	assert.Len(t, b.CurrentPage(), 8)
}

func TestBrowserPageClampsInsteadOfPanicking(t *testing.T) {
	b := NewBrowser(catalog(19), 8)

	b.SetPage(0)
	assert.Equal(t, 1, b.Page())

	b.SetPage(99)
	assert.Equal(t, 3, b.Page())
	assert.Len(t, b.CurrentPage(), 3)
}

func TestBrowserEmptyResultHasOnePage(t *testing.T) {
	b := NewBrowser(nil, 8)

	assert.Equal(t, 1, b.TotalPages())
	assert.Empty(t, b.CurrentPage())

	b.SetSearch("nothing matches this")
	assert.Empty(t, b.CurrentPage())
}

func TestBrowserCriteriaChangeResetsPage(t *testing.T) {
	b := NewBrowser(catalog(30), 8)
	b.SetPage(4)
	require.Equal(t, 4, b.Page())

	b.SetPriceFilter(PriceUnder25)
	assert.Equal(t, 1, b.Page())

	b.SetPage(2)
	b.SetSearch("Product")
	assert.Equal(t, 1, b.Page())

	b.SetPage(2)
	b.SetSort(SortPriceDesc)
	assert.Equal(t, 1, b.Page())

	b.SetPage(2)
	b.SetProducts(catalog(9))
	assert.Equal(t, 1, b.Page())
}

func TestBrowserSearchIsCaseInsensitive(t *testing.T) {
	b := NewBrowser([]models.Product{
		{ID: "p1", Title: "Rose Glow Serum", Description: "Vitamin C"},
		{ID: "p2", Title: "Night Cream", Description: "overnight repair"},
		{ID: "p3", Title: "Lipstick", Description: "matte"},
	}, 8)

	b.SetSearch("ROSE")
	require.Len(t, b.Filtered(), 1)
	assert.Equal(t, "p1", b.Filtered()[0].ID)

	// Description matches count too.
	b.SetSearch("Overnight")
	require.Len(t, b.Filtered(), 1)
	assert.Equal(t, "p2", b.Filtered()[0].ID)
}

func TestBrowserPriceBuckets(t *testing.T) {
	products := []models.Product{
		{ID: "cheap", Price: 24.99},
		{ID: "low", Price: 25.00},
		{ID: "mid", Price: 50.00},
		{ID: "high", Price: 50.01},
		{ID: "top", Price: 100.01},
	}

	tests := []struct {
		filter PriceFilter
		want   []string
	}{
		{PriceAll, []string{"cheap", "low", "mid", "high", "top"}},
		{PriceUnder25, []string{"cheap"}},
		{Price25To50, []string{"low", "mid"}},
		{Price50To100, []string{"high"}},
		{PriceOver100, []string{"top"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			b := NewBrowser(products, 8)
			b.SetPriceFilter(tt.filter)
			got := make([]string, 0)
			for _, p := range b.Filtered() {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBrowserSortOrders(t *testing.T) {
	products := []models.Product{
		{ID: "b", Title: "banana mist", Price: 3},
		{ID: "a", Title: "Apple Toner", Price: 2},
		{ID: "c", Title: "Cocoa Butter", Price: 1},
	}

	b := NewBrowser(products, 8)

	b.SetSort(SortPriceAsc)
	assert.Equal(t, "c", b.Filtered()[0].ID)

	b.SetSort(SortPriceDesc)
	assert.Equal(t, "b", b.Filtered()[0].ID)

	b.SetSort(SortNameAsc)
	assert.Equal(t, "a", b.Filtered()[0].ID)

	b.SetSort(SortNameDesc)
	assert.Equal(t, "c", b.Filtered()[0].ID)

	// Default keeps the source order.
	b.SetSort(SortDefault)
	assert.Equal(t, "b", b.Filtered()[0].ID)
}

func TestBrowserDoesNotMutateSource(t *testing.T) {
	products := catalog(3)
	b := NewBrowser(products, 8)

	b.SetSort(SortPriceDesc)
	b.Filtered()

	assert.Equal(t, "p00", products[0].ID)
}
