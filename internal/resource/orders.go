package resource

import (
	"context"
	"fmt"

	"storefront-client/internal/api"
	"storefront-client/internal/cache"
	"storefront-client/internal/models"
	"storefront-client/internal/store"
	"storefront-client/internal/util"

	"go.uber.org/zap"
)

// OrdersResource synchronizes the four order collections (user, admin,
// deleted, seller) and the single-order view with the orders slice. Status
// updates, soft-deletes and restores return enough information to merge
// directly; those merges are optimistic with a snapshot taken first so a
// failed call can be rolled back. Merges and refreshes contend on the same
// per-collection sequence, so a later-issued mutation outranks an in-flight
// read that resolves after it.
type OrdersResource struct {
	client *api.Client
	cache  *cache.Cache
	store  *store.Store
	seq    *seqTracker
	logger *zap.Logger
}

// RefreshUser fetches the orders owned by userID. Gated on the id.
func (r *OrdersResource) RefreshUser(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNotReady
	}
	seq := r.seq.begin(seqOrdersActive)
	orders, err := r.client.ListUserOrders(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	r.cache.Set(cache.OrdersKey(userID), orders)
	r.seq.apply(seqOrdersActive, seq, func() {
		r.store.Orders.SetOrders(orders)
	})
	return nil
}

// RefreshAdmin fetches every order into the active collection.
func (r *OrdersResource) RefreshAdmin(ctx context.Context) error {
	seq := r.seq.begin(seqOrdersActive)
	orders, err := r.client.ListAllOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	r.cache.Set(cache.OrdersAdminKey, orders)
	r.seq.apply(seqOrdersActive, seq, func() {
		r.store.Orders.SetOrders(orders)
	})
	return nil
}

// RefreshDeleted fetches the soft-deleted collection.
func (r *OrdersResource) RefreshDeleted(ctx context.Context) error {
	seq := r.seq.begin(seqOrdersDeleted)
	orders, err := r.client.ListDeletedOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load deleted orders: %w", err)
	}
	r.cache.Set(cache.OrdersDeletedKey, orders)
	r.seq.apply(seqOrdersDeleted, seq, func() {
		r.store.Orders.SetDeletedOrders(orders)
	})
	return nil
}

// RefreshSeller fetches the seller-scoped collection.
func (r *OrdersResource) RefreshSeller(ctx context.Context) error {
	seq := r.seq.begin(seqOrdersSeller)
	orders, err := r.client.ListSellerOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load seller orders: %w", err)
	}
	r.cache.Set(cache.OrdersSellerKey, orders)
	r.seq.apply(seqOrdersSeller, seq, func() {
		r.store.Orders.SetSellerOrders(orders)
	})
	return nil
}

// Get fetches a single order. Always refetched, never cached: the detail
// view shares the zero-TTL policy of the order collections.
func (r *OrdersResource) Get(ctx context.Context, orderID string) (*models.Order, error) {
	if orderID == "" {
		return nil, ErrNotReady
	}
	return r.client.GetOrder(ctx, orderID)
}

// Create checks out the cart with optional coupon codes. The returned order
// is appended to the active collection; the cart cache is invalidated since
// checkout clears it server-side.
func (r *OrdersResource) Create(ctx context.Context, userID string, coupons []string) (*models.Order, error) {
	if userID == "" {
		return nil, ErrNotReady
	}
	ordersSeq := r.seq.begin(seqOrdersActive)
	cartSeq := r.seq.begin(seqCart)
	order, err := r.client.CreateOrder(ctx, coupons)
	if err != nil {
		util.MutationsTotal.WithLabelValues("orders", "error").Inc()
		return nil, err
	}
	util.MutationsTotal.WithLabelValues("orders", "ok").Inc()
	r.cache.Invalidate(cache.OrdersKey(userID))
	r.cache.Invalidate(cache.CartKey(userID))
	r.seq.apply(seqOrdersActive, ordersSeq, func() {
		r.store.Orders.AddOrder(*order)
	})
	r.seq.apply(seqCart, cartSeq, func() {
		r.store.Cart.Clear()
	})
	r.logger.Info("Order created", zap.String("order_id", order.ID))
	return order, nil
}

// UpdateStatus changes an order's status through the canonical binding. The
// change is merged optimistically and rolled back if the call fails. The
// sequences are reserved before the request goes out, so an older in-flight
// refresh resolving later cannot overwrite the merge.
func (r *OrdersResource) UpdateStatus(ctx context.Context, orderID, newStatus string) error {
	if orderID == "" {
		return ErrNotReady
	}
	prior := r.store.Orders.Orders()
	priorSeller := r.store.Orders.SellerOrders()

	optimistic := models.Order{}
	for _, o := range prior {
		if o.ID == orderID {
			optimistic = o
			break
		}
	}
	if optimistic.ID != "" {
		optimistic.Status = newStatus
		r.store.Orders.UpdateOrder(optimistic)
		r.store.Orders.UpdateSellerOrder(optimistic)
	}

	activeSeq := r.seq.begin(seqOrdersActive)
	sellerSeq := r.seq.begin(seqOrdersSeller)
	order, err := r.client.UpdateOrderStatus(ctx, orderID, newStatus)
	if err != nil {
		if optimistic.ID != "" {
			r.seq.apply(seqOrdersActive, activeSeq, func() {
				r.store.Orders.SetOrders(prior)
			})
			r.seq.apply(seqOrdersSeller, sellerSeq, func() {
				r.store.Orders.SetSellerOrders(priorSeller)
			})
			util.OptimisticRollbacksTotal.WithLabelValues("orders").Inc()
		}
		util.MutationsTotal.WithLabelValues("orders", "error").Inc()
		return err
	}
	util.MutationsTotal.WithLabelValues("orders", "ok").Inc()
	r.seq.apply(seqOrdersActive, activeSeq, func() {
		r.store.Orders.UpdateOrder(*order)
	})
	r.seq.apply(seqOrdersSeller, sellerSeq, func() {
		r.store.Orders.UpdateSellerOrder(*order)
	})
	return nil
}

// SoftDelete marks an order deleted. The removal from the active collection
// happens only once the server confirms; the call may resolve with an empty
// body, so the id drives the removal.
func (r *OrdersResource) SoftDelete(ctx context.Context, orderID string) error {
	if orderID == "" {
		return ErrNotReady
	}
	seq := r.seq.begin(seqOrdersActive)
	if err := r.client.SoftDeleteOrder(ctx, orderID); err != nil {
		util.MutationsTotal.WithLabelValues("orders", "error").Inc()
		return err
	}
	util.MutationsTotal.WithLabelValues("orders", "ok").Inc()
	r.seq.apply(seqOrdersActive, seq, func() {
		r.store.Orders.RemoveOrder(orderID)
	})
	r.cache.Invalidate(cache.OrdersDeletedKey)
	return nil
}

// Restore brings a soft-deleted order back: the restored entity moves from
// the deleted collection to the active one in a single store update, gated
// on both collection sequences.
func (r *OrdersResource) Restore(ctx context.Context, orderID string) error {
	if orderID == "" {
		return ErrNotReady
	}
	activeSeq := r.seq.begin(seqOrdersActive)
	deletedSeq := r.seq.begin(seqOrdersDeleted)
	order, err := r.client.RestoreOrder(ctx, orderID)
	if err != nil {
		util.MutationsTotal.WithLabelValues("orders", "error").Inc()
		return err
	}
	util.MutationsTotal.WithLabelValues("orders", "ok").Inc()
	r.seq.applyAll(map[string]uint64{
		seqOrdersActive:  activeSeq,
		seqOrdersDeleted: deletedSeq,
	}, func() {
		r.store.Orders.RestoreOrder(*order)
	})
	r.cache.Invalidate(cache.OrdersDeletedKey)
	return nil
}
