package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"storefront-client/internal/models"

	"go.uber.org/zap"
)

// ErrNoSession is returned when no authenticated session is persisted.
var ErrNoSession = errors.New("no persisted session")

// Store persists the bearer token and the denormalized user record on disk.
// Both are required together; either missing invalidates the session for
// gating purposes. Reads always go back to disk so that another process (or
// an external edit) updating the file is picked up on the next call.
type Store struct {
	path   string
	logger *zap.Logger

	mu   sync.Mutex
	subs []func()
}

type fileSession struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// NewStore creates a session store backed by the file at path.
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Set persists the token and user record, then notifies subscribers.
func (s *Store) Set(token string, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.write(fileSession{Token: token, User: raw})
}

// SetRaw persists the token and an already-encoded user document. Used by
// tests to simulate malformed persisted state.
func (s *Store) SetRaw(token string, rawUser []byte) error {
	return s.write(fileSession{Token: token, User: rawUser})
}

func (s *Store) write(fs fileSession) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	data, err := json.Marshal(fs)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	s.notify()
	return nil
}

// Clear removes the persisted session and notifies subscribers. Clearing an
// absent session is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.notify()
	return nil
}

// Token returns the persisted bearer token, or "" when no session exists.
// Read fresh from disk on every call.
func (s *Store) Token() string {
	fs, err := s.read()
	if err != nil {
		return ""
	}
	return fs.Token
}

// User returns the persisted user record. A missing session or a user
// document that fails to parse both count as no session.
func (s *Store) User() (*models.User, error) {
	fs, err := s.read()
	if err != nil {
		return nil, err
	}
	if len(fs.User) == 0 {
		return nil, ErrNoSession
	}
	var user models.User
	if err := json.Unmarshal(fs.User, &user); err != nil {
		s.logger.Warn("Persisted user record is malformed", zap.Error(err))
		return nil, ErrNoSession
	}
	return &user, nil
}

// Valid reports whether both a token and a parseable user are persisted.
func (s *Store) Valid() bool {
	if s.Token() == "" {
		return false
	}
	_, err := s.User()
	return err == nil
}

// Subscribe registers fn to run after every Set/Clear.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) read() (*fileSession, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	var fs fileSession
	if err := json.Unmarshal(data, &fs); err != nil {
		s.logger.Warn("Persisted session file is malformed", zap.Error(err))
		return nil, ErrNoSession
	}
	return &fs, nil
}
