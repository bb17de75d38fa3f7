// Package store holds the render-ready view of server state: independent
// slices with synchronous reads and single-writer action methods. Staleness
// is implicit; the next successful synchronization overwrites the slice.
// Projections run one way only, remote result into slice, never back.
package store

// Store aggregates the slices. One instance per client process.
type Store struct {
	Auth       *AuthSlice
	Cart       *CartSlice
	Orders     *OrdersSlice
	Products   *ProductsSlice
	Categories *CategoriesSlice
}

// New creates a store with empty slices.
func New() *Store {
	return &Store{
		Auth:       NewAuthSlice(),
		Cart:       NewCartSlice(),
		Orders:     NewOrdersSlice(),
		Products:   NewProductsSlice(),
		Categories: NewCategoriesSlice(),
	}
}
