package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-client/internal/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewStore(path, zap.NewNop()), path
}

func TestSessionSetThenRead(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Set("tok-1", models.User{ID: "u1", Name: "Cleo", Role: models.RoleUser}))

	assert.Equal(t, "tok-1", s.Token())
	user, err := s.User()
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, s.Valid())
}

func TestSessionMissingFile(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Empty(t, s.Token())
	_, err := s.User()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.False(t, s.Valid())
}

func TestSessionReadsFreshFromDisk(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, s.Set("tok-1", models.User{ID: "u1"}))

	// An external write to the file is picked up on the next read.
	external := []byte(`{"token":"tok-2","user":{"_id":"u2"}}`)
	require.NoError(t, os.WriteFile(path, external, 0o600))

	assert.Equal(t, "tok-2", s.Token())
	user, err := s.User()
	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)
}

func TestSessionMalformedUserCountsAsNoSession(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.SetRaw("tok-1", []byte(`[1,2,3]`)))

	_, err := s.User()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.False(t, s.Valid())
	// The token itself is still readable.
	assert.Equal(t, "tok-1", s.Token())
}

func TestSessionMalformedFileCountsAsNoSession(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{garbage"), 0o600))

	assert.Empty(t, s.Token())
	_, err := s.User()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionClearIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Set("tok-1", models.User{ID: "u1"}))

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	assert.Empty(t, s.Token())
}

func TestSessionSubscribersNotified(t *testing.T) {
	s, _ := newTestStore(t)

	calls := 0
	s.Subscribe(func() { calls++ })

	require.NoError(t, s.Set("tok-1", models.User{ID: "u1"}))
	require.NoError(t, s.Clear())

	assert.Equal(t, 2, calls)
}
