package cache

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"storefront-client/internal/util"
)

// Composite key builders. Two users' carts or two pages of a listing must
// never collide, so every parameterized resource embeds its parameters.
func CartKey(userID string) string { return "cart:" + userID }

func OrdersKey(userID string) string { return "orders:" + userID }

func UsersKey(page int) string { return "users:" + strconv.Itoa(page) }

func SellerProductsKey(sellerID string) string { return "seller-products:" + sellerID }

const (
	OrdersAdminKey   = "orders-admin"
	OrdersDeletedKey = "orders-deleted"
	OrdersSellerKey  = "orders-seller"
	CouponsKey       = "coupons"
	ProductsKey      = "products"
	CategoriesKey    = "categories"
	SellerStatsKey   = "seller-stats"
)

type entry struct {
	value     interface{}
	fetchedAt time.Time
}

// Cache holds the most recent remote result per composite key. It is the
// source of truth for "fresh" server state; the reducer store is only ever
// written from it, never the reverse.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key and whether it is still fresh within
// ttl. A zero ttl means the entry is never considered fresh, which forces
// the caller to refetch (used for cart and order reads).
func (c *Cache) Get(key string, ttl time.Duration) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	resource := resourceOf(key)
	if !ok || ttl <= 0 || c.now().Sub(e.fetchedAt) >= ttl {
		util.CacheMissesTotal.WithLabelValues(resource).Inc()
		return nil, false
	}
	util.CacheHitsTotal.WithLabelValues(resource).Inc()
	return e.value, true
}

// Set stores value under key with the current fetch time.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, fetchedAt: c.now()}
}

// Invalidate drops the entry for key so the next read refetches.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidatePrefix drops every entry whose key starts with prefix, e.g. all
// pages of the user listing.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

// SetClock overrides the time source. Test hook.
func (c *Cache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func resourceOf(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
