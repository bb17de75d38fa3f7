// Package guard gates role-scoped surfaces on the locally persisted
// session. This is UI gating only and never an authorization boundary: the
// server re-validates the token and role on every call.
package guard

import (
	"storefront-client/internal/models"
	"storefront-client/internal/session"

	"go.uber.org/zap"
)

// Decision is the outcome of a guard check. There is no distinct forbidden
// state; any mismatch redirects to the public home surface.
type Decision int

const (
	Admit Decision = iota
	RedirectHome
)

func (d Decision) String() string {
	if d == Admit {
		return "admit"
	}
	return "redirect-home"
}

// Guard checks persisted sessions against role requirements.
type Guard struct {
	session *session.Store
	logger  *zap.Logger
}

// New creates a guard over the session store.
func New(sess *session.Store, logger *zap.Logger) *Guard {
	return &Guard{session: sess, logger: logger}
}

// Check admits the current session for a surface requiring requiredRole.
// Missing token, missing or malformed user, and role mismatch all redirect
// home. An empty requiredRole admits any authenticated session.
func (g *Guard) Check(requiredRole models.Role) Decision {
	if g.session.Token() == "" {
		return RedirectHome
	}
	user, err := g.session.User()
	if err != nil {
		return RedirectHome
	}
	if requiredRole != "" && user.Role != requiredRole {
		g.logger.Debug("Role mismatch",
			zap.String("required", string(requiredRole)),
			zap.String("actual", string(user.Role)))
		return RedirectHome
	}
	return Admit
}
