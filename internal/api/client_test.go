package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-client/internal/models"
	"storefront-client/internal/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := session.NewStore(filepath.Join(t.TempDir(), "session.json"), zap.NewNop())
	return NewClient(srv.URL, 5*time.Second, sess), sess
}

func TestClientReadsTokenFreshPerRequest(t *testing.T) {
	var seen []string
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	})
	ctx := context.Background()

	// No session yet: the request goes out unauthenticated.
	_, err := client.ListCoupons(ctx)
	require.NoError(t, err)

	// A session persisted after client construction is picked up without
	// rebuilding the client.
	require.NoError(t, sess.Set("tok-live", models.User{ID: "u1"}))
	_, err = client.ListCoupons(ctx)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Empty(t, seen[0])
	assert.Equal(t, "Bearer tok-live", seen[1])
}

func TestClientSurfacesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Coupon is not valid"}`))
	})

	_, err := client.ValidateCoupon(context.Background(), "BOGUS1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Coupon is not valid", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "Coupon is not valid")
}

func TestClientDecodesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"_id":"p1","title":"Serum","price":29.99}]}`))
	})

	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.InDelta(t, 29.99, products[0].Price, 1e-9)
}

func TestClientToleratesEmptyDataOnMutations(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":null}`))
	})

	assert.NoError(t, client.DeleteProduct(context.Background(), "p1"))
}

func TestClientDecodesNonEnvelopedAuthShape(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok-1","user":{"_id":"u1","role":"user"}}`))
	})

	resp, err := client.Login(context.Background(), "a@b.c", "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
}
