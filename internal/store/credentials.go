// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

// Package store persists the session credentials between console runs:
// the raw JWT and the profile of the signed-in user.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/oelbekkali/colisops/models"
)

//go:generate mockgen -source=credentials.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore keeps the token and user profile of the current
// session. Implementations must keep the pair consistent: Clear drops
// both, never one.
type CredentialStore interface {
	// SaveToken stores the raw JWT.
	SaveToken(token string) error

	// Token returns the stored JWT, or "" when no session is saved.
	Token() string

	// SaveUser stores the profile of the signed-in user.
	SaveUser(user models.User) error

	// ReadUser returns the stored profile. ok is false when no profile
	// is saved or the saved payload cannot be decoded; a bad profile is
	// never an error, the caller refetches it from the backend.
	ReadUser() (user models.User, ok bool)

	// Clear drops the token and the profile.
	Clear() error
}

// persistedCredentials is the on-disk shape. The user stays raw so a
// corrupted profile cannot poison the token next to it.
type persistedCredentials struct {
	Token string          `json:"auth_token,omitempty"`
	User  json.RawMessage `json:"auth_user,omitempty"`
}

type fileCredentialStore struct {
	path     string
	inMemory bool

	mu    sync.RWMutex
	state persistedCredentials
}

// NewFileCredentialStore constructs a file-backed [CredentialStore] at
// path. Pass ":memory:" (or an empty path) to keep credentials only
// for the lifetime of the process.
//
// An unreadable or corrupted credentials file starts the store empty
// instead of failing: stale credentials are recoverable by signing in
// again, a boot failure is not.
func NewFileCredentialStore(path string) (CredentialStore, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &fileCredentialStore{
		path:     path,
		inMemory: path == ":memory:",
	}
	s.load()

	return s, nil
}

func (s *fileCredentialStore) load() {
	if s.inMemory {
		return
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var st persistedCredentials
	if err = json.Unmarshal(data, &st); err != nil {
		return
	}

	s.state = st
}

func (s *fileCredentialStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create credentials dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}

	return nil
}

func (s *fileCredentialStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Token = token

	return s.persist()
}

func (s *fileCredentialStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Token
}

func (s *fileCredentialStore) SaveUser(user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = raw

	return s.persist()
}

func (s *fileCredentialStore) ReadUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.state.User) == 0 {
		return models.User{}, false
	}

	var user models.User
	if err := json.Unmarshal(s.state.User, &user); err != nil {
		return models.User{}, false
	}

	return user, true
}

func (s *fileCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = persistedCredentials{}

	if s.inMemory {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials file: %w", err)
	}

	return nil
}
