// Package session persists the logged-in identity: exactly one
// {token, user} pair per device. There is no expiry and no refresh; the
// pair lives from login to logout and its absence sends screens back to
// the login flow.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"skylander/internal/types"
)

// ErrNoSession is returned by Load when nobody is logged in.
var ErrNoSession = errors.New("no active session")

// Session is the persisted identity.
type Session struct {
	Token string     `json:"token"`
	User  types.User `json:"user"`
}

// Store is the persistence contract screens depend on. Implementations
// read and overwrite the session whole; there is no partial update.
type Store interface {
	Save(user types.User, token string) error
	Load() (*Session, error)
	Clear() error
}

// storageV1 is the on-disk document. The version field guards future
// format changes; a file without it is treated as the legacy bare form.
type storageV1 struct {
	Version int        `json:"version"`
	Token   string     `json:"token"`
	User    types.User `json:"user"`
}

// FileStore keeps the session in a JSON file, one document, mode 0600.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore places the session file under dir (normally ~/.skylander).
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, "session.json")}
}

// DefaultFileStore uses the home-level skylander directory.
func DefaultFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewFileStore(filepath.Join(home, ".skylander")), nil
}

// Save writes the session, replacing whatever was there.
func (s *FileStore) Save(user types.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(storageV1{Version: 1, Token: token, User: user}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Load reads the current session. A missing file means ErrNoSession.
func (s *FileStore) Load() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var v1 storageV1
	if err := json.Unmarshal(data, &v1); err != nil {
		return nil, fmt.Errorf("corrupt session file: %w", err)
	}
	if v1.Token == "" && v1.User.Email == "" {
		// An empty document is as good as no session.
		return nil, ErrNoSession
	}
	return &Session{Token: v1.Token, User: v1.User}, nil
}

// Clear deletes the session file. Clearing an absent session is not an
// error; logout must be idempotent.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemStore is an in-memory Store for tests and wiring screens without a
// real filesystem.
type MemStore struct {
	mu  sync.Mutex
	cur *Session
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore { return &MemStore{} }

func (m *MemStore) Save(user types.User, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = &Session{Token: token, User: user}
	return nil
}

func (m *MemStore) Load() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cur == nil {
		return nil, ErrNoSession
	}
	cp := *m.cur
	return &cp, nil
}

func (m *MemStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = nil
	return nil
}
