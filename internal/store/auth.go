package store

import (
	"sync"

	"storefront-client/internal/models"
)

// AuthSlice mirrors the persisted session for synchronous reads during
// rendering. The session store on disk remains the authority for gating.
type AuthSlice struct {
	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewAuthSlice() *AuthSlice {
	return &AuthSlice{}
}

// SetCredentials records the token and user after login or signup.
func (s *AuthSlice) SetCredentials(token string, user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	u := user
	s.user = &u
}

// Logout clears the in-memory credentials.
func (s *AuthSlice) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

// Token returns the in-memory token.
func (s *AuthSlice) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the in-memory user, or nil when logged out.
func (s *AuthSlice) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
