// Package session persists the console login between invocations.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Store is a file-backed session. A missing file means no session.
type Store struct {
	path    string
	mu      sync.Mutex
	current Session
	loaded  bool
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (Session, error) {
	if s.loaded {
		return s.current, nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.loaded = true
		s.current = Session{}
		return s.current, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("failed to decode session file: %w", err)
	}
	s.current = sess
	s.loaded = true
	return sess, nil
}

func (s *Store) Save(token, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	sess := Session{Token: token, Username: username}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	s.current = sess
	s.loaded = true
	return nil
}

// Clear removes the session file; clearing an absent session is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{}
	s.loaded = true
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when logged out or unreadable.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.loadLocked()
	if err != nil {
		return ""
	}
	return sess.Token
}

func (s *Store) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.loadLocked()
	if err != nil {
		return ""
	}
	return sess.Username
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}
