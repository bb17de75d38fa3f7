// Package view computes derived product views over the already-fetched
// catalog: search, price buckets, sort and pagination. Everything here is
// pure over a snapshot; the source collection is never mutated.
package view

import (
	"sort"
	"strings"

	"storefront-client/internal/models"
)

// PriceFilter buckets the catalog by price.
type PriceFilter string

const (
	PriceAll     PriceFilter = "all"
	PriceUnder25 PriceFilter = "under-25"
	Price25To50  PriceFilter = "25-50"
	Price50To100 PriceFilter = "50-100"
	PriceOver100 PriceFilter = "over-100"
)

// SortOrder orders the filtered result.
type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceAsc  SortOrder = "price-low"
	SortPriceDesc SortOrder = "price-high"
	SortNameAsc   SortOrder = "name-asc"
	SortNameDesc  SortOrder = "name-desc"
)

// Browser holds the current search, filter, sort and page over a product
// snapshot. Changing any criterion resets the page to 1 so the view never
// points past the end of a shorter result set.
type Browser struct {
	products []models.Product
	pageSize int

	search string
	price  PriceFilter
	sort   SortOrder
	page   int
}

// NewBrowser creates a browser over products with the given page size.
func NewBrowser(products []models.Product, pageSize int) *Browser {
	if pageSize < 1 {
		pageSize = 8
	}
	snapshot := make([]models.Product, len(products))
	copy(snapshot, products)
	return &Browser{
		products: snapshot,
		pageSize: pageSize,
		price:    PriceAll,
		sort:     SortDefault,
		page:     1,
	}
}

// SetProducts replaces the snapshot (after a catalog refresh) and resets
// the page.
func (b *Browser) SetProducts(products []models.Product) {
	b.products = make([]models.Product, len(products))
	copy(b.products, products)
	b.page = 1
}

// SetSearch sets the substring query and resets the page.
func (b *Browser) SetSearch(query string) {
	b.search = query
	b.page = 1
}

// SetPriceFilter sets the price bucket and resets the page.
func (b *Browser) SetPriceFilter(filter PriceFilter) {
	b.price = filter
	b.page = 1
}

// SetSort sets the sort order and resets the page.
func (b *Browser) SetSort(order SortOrder) {
	b.sort = order
	b.page = 1
}

// SetPage moves to page n, clamped into [1, totalPages].
func (b *Browser) SetPage(n int) {
	total := b.TotalPages()
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	b.page = n
}

// Page returns the current page number.
func (b *Browser) Page() int {
	return b.page
}

// Filtered returns the searched, filtered and sorted result set.
func (b *Browser) Filtered() []models.Product {
	filtered := make([]models.Product, 0, len(b.products))

	query := strings.ToLower(strings.TrimSpace(b.search))
	for _, p := range b.products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if !matchesPrice(p.Price, b.price) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch b.sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortNameAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Title) < strings.ToLower(filtered[j].Title)
		})
	case SortNameDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Title) > strings.ToLower(filtered[j].Title)
		})
	}

	return filtered
}

// TotalPages returns the page count of the current result set, at least 1.
func (b *Browser) TotalPages() int {
	n := len(b.Filtered())
	if n == 0 {
		return 1
	}
	return (n + b.pageSize - 1) / b.pageSize
}

// CurrentPage returns the slice of the filtered result for the current
// page. The last page carries the remainder; an out-of-range page clamps
// instead of panicking.
func (b *Browser) CurrentPage() []models.Product {
	filtered := b.Filtered()
	page := b.page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * b.pageSize
	if start >= len(filtered) {
		if len(filtered) == 0 {
			return nil
		}
		start = (b.TotalPages() - 1) * b.pageSize
	}
	end := start + b.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func matchesPrice(price float64, filter PriceFilter) bool {
	switch filter {
	case PriceUnder25:
		return price < 25
	case Price25To50:
		return price >= 25 && price <= 50
	case Price50To100:
		return price > 50 && price <= 100
	case PriceOver100:
		return price > 100
	default:
		return true
	}
}
