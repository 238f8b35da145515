// Package session holds the authenticated principal and its opaque token.
// The store is the only reader and writer of the persisted session file;
// everything else in the client asks the store.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

const sessionFileName = "session.json"

// persisted is the on-disk shape.
type persisted struct {
	User  api.Principal `json:"user"`
	Token string        `json:"token"`
}

// Store is a two-state machine: Anonymous or Authenticated(principal,
// token). Mutations are synchronous; readers never observe a torn pair.
type Store struct {
	mu    sync.RWMutex
	dir   string
	user  *api.Principal
	token string
}

// NewStore opens the store rooted at dir and hydrates any persisted
// session. A corrupt session file is discarded and the store starts
// Anonymous; that is recovery, not an error.
func NewStore(dir string) (*Store, error) {
	s := &Store{dir: dir}

	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil || p.Token == "" || !p.User.Role.Valid() {
		_ = os.Remove(s.path())
		return s, nil
	}

	s.user = &p.User
	s.token = p.Token
	return s, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, sessionFileName)
}

// Login moves the store to Authenticated and persists the pair. A new
// login overwrites any previous session atomically from the caller's view.
func (s *Store) Login(user api.Principal, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(persisted{User: user, Token: token}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(), data, 0o600); err != nil {
		return err
	}

	u := user
	s.user = &u
	s.token = token
	return nil
}

// Logout clears the in-memory state and removes the session file. Only the
// session file is touched; config and logs in the same directory survive.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""

	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// IsAuthenticated reports whether both a principal and a token are held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}

// Principal returns a copy of the authenticated identity, or false when
// Anonymous.
func (s *Store) Principal() (api.Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return api.Principal{}, false
	}
	return *s.user, true
}

// Token returns the opaque session token, empty when Anonymous. The HTTP
// adapter uses this as its TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
