package resource

import (
	"sync"

	"storefront-client/internal/util"
)

// Sequence keys name projection targets, one per slice collection, so a
// merging mutation and a refresh racing for the same collection contend on
// the same key no matter which endpoint produced the result. Cache-only
// reads (coupons, user pages, seller stats) sequence on their cache key.
const (
	seqCart           = "cart"
	seqOrdersActive   = "orders-active"
	seqOrdersDeleted  = "orders-deleted"
	seqOrdersSeller   = "orders-seller"
	seqProducts       = "products"
	seqSellerProducts = "seller-products"
	seqProductDetail  = "product-detail"
	seqCategories     = "categories"
)

// seqTracker assigns a monotonically increasing sequence per key and
// enforces latest-wins on resolution: a result whose sequence is below the
// last applied one for its key is stale output of an overtaken request and
// must be discarded, not projected into the store.
type seqTracker struct {
	mu      sync.Mutex
	next    map[string]uint64
	applied map[string]uint64
}

func newSeqTracker() *seqTracker {
	return &seqTracker{
		next:    make(map[string]uint64),
		applied: make(map[string]uint64),
	}
}

// begin reserves the next sequence number for key. Call before issuing the
// network request so that issue order, not resolution order, decides wins.
func (t *seqTracker) begin(key string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next[key]++
	return t.next[key]
}

// apply runs fn only when seq is not older than the last applied sequence
// for key, and records it as applied. Returns false when the result was
// discarded as stale.
func (t *seqTracker) apply(key string, seq uint64, fn func()) bool {
	t.mu.Lock()
	if seq < t.applied[key] {
		t.mu.Unlock()
		util.StaleResponsesDiscarded.WithLabelValues(key).Inc()
		return false
	}
	t.applied[key] = seq
	t.mu.Unlock()
	fn()
	return true
}

// applyAll runs fn only when every sequence is still current for its key,
// recording them all. Used by merges that move an entity across collections
// in one store update.
func (t *seqTracker) applyAll(seqs map[string]uint64, fn func()) bool {
	t.mu.Lock()
	for key, seq := range seqs {
		if seq < t.applied[key] {
			t.mu.Unlock()
			util.StaleResponsesDiscarded.WithLabelValues(key).Inc()
			return false
		}
	}
	for key, seq := range seqs {
		t.applied[key] = seq
	}
	t.mu.Unlock()
	fn()
	return true
}
