package guard

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-client/internal/models"
	"storefront-client/internal/session"
)

func newTestGuard(t *testing.T) (*Guard, *session.Store) {
	t.Helper()
	sess := session.NewStore(filepath.Join(t.TempDir(), "session.json"), zap.NewNop())
	return New(sess, zap.NewNop()), sess
}

func TestGuardNoTokenRedirectsHome(t *testing.T) {
	g, _ := newTestGuard(t)

	assert.Equal(t, RedirectHome, g.Check(models.RoleAdmin))
	assert.Equal(t, RedirectHome, g.Check(""))
}

func TestGuardSellerNotAdmittedToAdminSurface(t *testing.T) {
	g, sess := newTestGuard(t)
	require.NoError(t, sess.Set("tok-1", models.User{ID: "u1", Role: models.RoleSeller}))

	assert.Equal(t, RedirectHome, g.Check(models.RoleAdmin))
	assert.Equal(t, Admit, g.Check(models.RoleSeller))
}

func TestGuardMatchingRoleAdmits(t *testing.T) {
	g, sess := newTestGuard(t)
	require.NoError(t, sess.Set("tok-1", models.User{ID: "u1", Role: models.RoleAdmin}))

	assert.Equal(t, Admit, g.Check(models.RoleAdmin))
}

func TestGuardEmptyRoleAdmitsAnyAuthenticated(t *testing.T) {
	g, sess := newTestGuard(t)
	require.NoError(t, sess.Set("tok-1", models.User{ID: "u1", Role: models.RoleUser}))

	assert.Equal(t, Admit, g.Check(""))
}

func TestGuardMalformedUserRecordRedirectsHome(t *testing.T) {
	g, sess := newTestGuard(t)
	require.NoError(t, sess.SetRaw("tok-1", []byte(`"not an object"`)))

	assert.Equal(t, RedirectHome, g.Check(models.RoleUser))
}

func TestGuardReactsToLogout(t *testing.T) {
	g, sess := newTestGuard(t)
	require.NoError(t, sess.Set("tok-1", models.User{ID: "u1", Role: models.RoleUser}))
	require.Equal(t, Admit, g.Check(models.RoleUser))

	require.NoError(t, sess.Clear())

	assert.Equal(t, RedirectHome, g.Check(models.RoleUser))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "admit", Admit.String())
	assert.Equal(t, "redirect-home", RedirectHome.String())
}
