package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqLatestWinsOnOutOfOrderResolution(t *testing.T) {
	tr := newSeqTracker()

	first := tr.begin("orders:u1")
	second := tr.begin("orders:u1")

	var applied []string
	// The second request resolves before the first.
	assert.True(t, tr.apply("orders:u1", second, func() { applied = append(applied, "second") }))
	assert.False(t, tr.apply("orders:u1", first, func() { applied = append(applied, "first") }))

	assert.Equal(t, []string{"second"}, applied)
}

func TestSeqInOrderResolutionApplies(t *testing.T) {
	tr := newSeqTracker()

	first := tr.begin("cart:u1")
	second := tr.begin("cart:u1")

	assert.True(t, tr.apply("cart:u1", first, func() {}))
	assert.True(t, tr.apply("cart:u1", second, func() {}))
}

func TestSeqApplyAllRequiresEveryKeyCurrent(t *testing.T) {
	tr := newSeqTracker()

	activeSeq := tr.begin("orders-active")
	deletedSeq := tr.begin("orders-deleted")
	newerDeleted := tr.begin("orders-deleted")
	assert.True(t, tr.apply("orders-deleted", newerDeleted, func() {}))

	ran := false
	ok := tr.applyAll(map[string]uint64{
		"orders-active":  activeSeq,
		"orders-deleted": deletedSeq,
	}, func() { ran = true })

	assert.False(t, ok)
	assert.False(t, ran)
	// A discarded group records nothing, so the still-current key stays
	// available to a later resolution.
	assert.True(t, tr.apply("orders-active", activeSeq, func() {}))
}

func TestSeqKeysAreIndependent(t *testing.T) {
	tr := newSeqTracker()

	cartSeq := tr.begin("cart:u1")
	tr.begin("orders:u1")
	ordersSeq := tr.begin("orders:u1")

	// A newer sequence on one key never invalidates another key.
	assert.True(t, tr.apply("orders:u1", ordersSeq, func() {}))
	assert.True(t, tr.apply("cart:u1", cartSeq, func() {}))
}
