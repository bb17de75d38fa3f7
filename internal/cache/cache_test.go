package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheZeroTTLNeverFresh(t *testing.T) {
	c := New()
	c.Set(CartKey("u1"), "value")

	// Cart and order reads always refetch.
	_, ok := c.Get(CartKey("u1"), 0)
	assert.False(t, ok)
}

func TestCacheFreshWithinWindow(t *testing.T) {
	c := New()
	now := time.Now()
	c.SetClock(func() time.Time { return now })

	c.Set(CouponsKey, "coupons")

	v, ok := c.Get(CouponsKey, 5*time.Minute)
	require.True(t, ok)
	assert.Equal(t, "coupons", v)

	// Advance past the freshness window.
	now = now.Add(5 * time.Minute)
	_, ok = c.Get(CouponsKey, 5*time.Minute)
	assert.False(t, ok)
}

func TestCacheInvalidate(t *testing.T) {
	c := New()
	c.Set(CouponsKey, "coupons")

	c.Invalidate(CouponsKey)

	_, ok := c.Get(CouponsKey, time.Hour)
	assert.False(t, ok)
}

func TestCacheInvalidatePrefixDropsAllPages(t *testing.T) {
	c := New()
	c.Set(UsersKey(1), "page1")
	c.Set(UsersKey(2), "page2")
	c.Set(SellerStatsKey, "stats")

	c.InvalidatePrefix("users:")

	_, ok := c.Get(UsersKey(1), time.Hour)
	assert.False(t, ok)
	_, ok = c.Get(UsersKey(2), time.Hour)
	assert.False(t, ok)
	_, ok = c.Get(SellerStatsKey, time.Hour)
	assert.True(t, ok)
}

func TestCacheCompositeKeysDoNotCollide(t *testing.T) {
	c := New()
	c.Set(CartKey("u1"), "cart-one")
	c.Set(CartKey("u2"), "cart-two")
	c.Set(UsersKey(1), "page-one")
	c.Set(UsersKey(11), "page-eleven")

	v, ok := c.Get(CartKey("u1"), time.Hour)
	require.True(t, ok)
	assert.Equal(t, "cart-one", v)

	v, ok = c.Get(UsersKey(11), time.Hour)
	require.True(t, ok)
	assert.Equal(t, "page-eleven", v)
}
