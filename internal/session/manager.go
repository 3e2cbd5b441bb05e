// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

// Package session owns the authentication lifecycle of the console:
// restoring a saved session on startup, signing in and out, and
// tearing everything down when the token expires or the backend
// rejects it.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oelbekkali/colisops/internal/adapter"
	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/internal/store"
	"github.com/oelbekkali/colisops/models"
)

// State is the authentication state of the session manager.
type State int

const (
	// StateUnauthenticated means no session is active.
	StateUnauthenticated State = iota

	// StateAuthenticating means a login attempt is in flight.
	StateAuthenticating

	// StateAuthenticated means a token and a profile are both held.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Manager drives the session state machine. A single mutex guards the
// state, the decoded claims and the profile, so the pair token/profile
// is always observed together: authenticated means both are held,
// anything else means neither is.
type Manager struct {
	adapter adapter.BackendAdapter
	store   store.CredentialStore
	logger  *logger.Logger
	now     func() time.Time

	mu     sync.RWMutex
	state  State
	claims Claims
	user   *models.User
}

// NewManager constructs a session manager over the given backend
// adapter and credential store.
func NewManager(backend adapter.BackendAdapter, credentials store.CredentialStore, log *logger.Logger) *Manager {
	return &Manager{
		adapter: backend,
		store:   credentials,
		logger:  log,
		now:     time.Now,
	}
}

// State returns the current authentication state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// CurrentUser returns the profile of the signed-in user. ok is false
// when no session is active.
func (m *Manager) CurrentUser() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != StateAuthenticated || m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// SessionClaims returns the decoded token claims of the active
// session. ok is false when no session is active.
func (m *Manager) SessionClaims() (Claims, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != StateAuthenticated {
		return Claims{}, false
	}
	return m.claims, true
}

// Bootstrap restores a previously saved session. A missing, expired or
// undecodable stored token silently leaves the manager unauthenticated
// with the store wiped; no profile fetch happens in that case. With a
// live token the profile is refetched from the backend and verified
// against the token's role claim; any failure tears the session down.
func (m *Manager) Bootstrap(ctx context.Context) error {
	token := m.store.Token()
	if token == "" {
		return nil
	}

	claims, err := DecodeClaims(token)
	if err != nil || claims.Expired(m.now()) {
		m.logger.Info().Msg("saved session unusable, clearing")
		m.teardown()
		return nil
	}

	m.adapter.SetToken(token)

	user, err := m.adapter.GetUser(ctx, claims.Email)
	if err != nil {
		m.teardown()
		return fmt.Errorf("restore session profile: %w", err)
	}

	if user.Role.Name != claims.Role {
		m.teardown()
		return ErrRoleMismatch
	}

	if err = m.store.SaveUser(user); err != nil {
		m.teardown()
		return fmt.Errorf("persist restored profile: %w", err)
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.claims = claims
	m.user = &user
	m.mu.Unlock()

	m.logger.Info().Str("email", user.Email).Msg("session restored")

	return nil
}

// Login authenticates against the backend and establishes a session.
// The token's role claim must match the fetched profile's role; on a
// mismatch everything is rolled back and nothing is persisted.
func (m *Manager) Login(ctx context.Context, email, password string) (models.User, error) {
	m.mu.Lock()
	if m.state == StateAuthenticating {
		m.mu.Unlock()
		return models.User{}, ErrAuthInProgress
	}
	m.state = StateAuthenticating
	m.mu.Unlock()

	token, err := m.adapter.Login(ctx, email, password)
	if err != nil {
		m.teardown()
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		m.teardown()
		return models.User{}, err
	}

	m.adapter.SetToken(token)

	user, err := m.adapter.GetUser(ctx, claims.Email)
	if err != nil {
		m.teardown()
		return models.User{}, fmt.Errorf("fetch profile: %w", err)
	}

	if user.Role.Name != claims.Role {
		m.logger.Warn().
			Str("token_role", string(claims.Role)).
			Str("profile_role", string(user.Role.Name)).
			Msg("role mismatch between token and profile")
		m.teardown()
		return models.User{}, ErrRoleMismatch
	}

	if err = m.store.SaveToken(token); err != nil {
		m.teardown()
		return models.User{}, fmt.Errorf("persist token: %w", err)
	}
	if err = m.store.SaveUser(user); err != nil {
		m.teardown()
		return models.User{}, fmt.Errorf("persist profile: %w", err)
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.claims = claims
	m.user = &user
	m.mu.Unlock()

	m.logger.Info().Str("email", user.Email).Str("role", string(user.Role.Name)).Msg("signed in")

	return user, nil
}

// Logout clears the session unconditionally. It is idempotent and
// always succeeds: a session the user asked to end is ended, whatever
// the store or the backend think about it.
func (m *Manager) Logout(_ context.Context) error {
	m.teardown()
	m.logger.Info().Msg("signed out")
	return nil
}

// Invalidate tears the session down. The service layer calls it when
// the backend answers 401, the expiry watcher calls it when the token
// outlives its exp claim.
func (m *Manager) Invalidate() {
	if !m.IsAuthenticated() {
		return
	}
	m.logger.Warn().Msg("session invalidated")
	m.teardown()
}

// teardown drops the token and profile everywhere: adapter, store and
// memory. A store failure is logged and swallowed, the in-memory
// session is gone regardless.
func (m *Manager) teardown() {
	m.adapter.ClearToken()

	if err := m.store.Clear(); err != nil {
		m.logger.Warn().Err(err).Msg("clear stored credentials")
	}

	m.mu.Lock()
	m.state = StateUnauthenticated
	m.claims = Claims{}
	m.user = nil
	m.mu.Unlock()
}
