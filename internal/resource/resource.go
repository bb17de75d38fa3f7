// Package resource binds the remote endpoints to the local store: each
// resource family exposes cached reads and mutations that either merge the
// server's returned entity into the owning slice or invalidate the owning
// cache key and refetch. Projections go one way, remote result into slice.
package resource

import (
	"errors"
	"time"

	"storefront-client/internal/api"
	"storefront-client/internal/cache"
	"storefront-client/internal/session"
	"storefront-client/internal/store"
	"storefront-client/internal/util"
)

// ErrNotReady is returned by reads whose disambiguating identifier is not
// known yet. No request is issued in that case.
var ErrNotReady = errors.New("resource identifier not available yet")

// Resources wires every resource family over one gateway, cache and store.
type Resources struct {
	Auth       *AuthResource
	Cart       *CartResource
	Orders     *OrdersResource
	Products   *ProductsResource
	Coupons    *CouponsResource
	Users      *UsersResource
	Categories *CategoriesResource
}

// New builds the resource layer. staleWindow applies to low-churn reads
// (coupons, user pages, seller stats); cart and order reads always refetch.
func New(client *api.Client, c *cache.Cache, st *store.Store, sess *session.Store, staleWindow time.Duration) *Resources {
	logger := util.GetLogger()
	seq := newSeqTracker()
	return &Resources{
		Auth:       &AuthResource{client: client, session: sess, store: st, logger: logger},
		Cart:       &CartResource{client: client, cache: c, store: st, seq: seq, logger: logger},
		Orders:     &OrdersResource{client: client, cache: c, store: st, seq: seq, logger: logger},
		Products:   &ProductsResource{client: client, cache: c, store: st, seq: seq, logger: logger},
		Coupons:    &CouponsResource{client: client, cache: c, seq: seq, staleWindow: staleWindow, logger: logger},
		Users:      &UsersResource{client: client, cache: c, seq: seq, staleWindow: staleWindow, logger: logger},
		Categories: &CategoriesResource{client: client, cache: c, store: st, seq: seq, logger: logger},
	}
}
