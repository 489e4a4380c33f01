// Package session owns the authenticated-identity state machine. The manager
// is the sole writer of the credential and of the session state; every other
// component reads them through Current or the credential source.
package session

import (
	"context"
	"fmt"

	"github.com/ewasteportal/ewastecli/internal/client/api"
	"github.com/ewasteportal/ewastecli/internal/client/credential"
	"github.com/ewasteportal/ewastecli/internal/client/models"
	"github.com/ewasteportal/ewastecli/internal/common"
	"github.com/ewasteportal/ewastecli/internal/logging"
	gosync "sync"
)

// State is the session state machine value. Exactly one exists per process.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateResolving     State = "resolving"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Terminal reports whether the state is a valid basis for rendering.
// Consumers must not render protected content until a terminal state is
// reached.
func (s State) Terminal() bool {
	return s == StateAuthenticated || s == StateAnonymous
}

// Snapshot is a read-only view of the session. Identity is set only when
// State is StateAuthenticated.
type Snapshot struct {
	State    State
	Identity *models.Identity
}

// Manager drives the session state machine on top of the credential store and
// the API gateway.
type Manager struct {
	store credential.Store
	api   api.Client
	log   logging.Logger

	mu       gosync.Mutex
	state    State
	identity *models.Identity
}

func NewManager(store credential.Store, client api.Client, log logging.Logger) *Manager {
	return &Manager{
		store: store,
		api:   client,
		log:   log.With("component", "session"),
		state: StateUninitialized,
	}
}

// Current returns the current session snapshot.
func (m *Manager) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, Identity: m.identity}
}

func (m *Manager) setState(state State, identity *models.Identity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.identity = identity
}

// Bootstrap resolves the initial session state from the persisted credential.
// With no credential it lands directly on Anonymous; otherwise it fetches the
// identity and lands on Authenticated, or — on any failure — clears the
// credential and lands on Anonymous. Idempotent; this is the only path that
// resolves Uninitialized.
func (m *Manager) Bootstrap(ctx context.Context) error {
	return m.resolve(ctx)
}

// Refresh re-runs the identity fetch with the same transition rules as
// Bootstrap. Used after login or registration; safe to call repeatedly.
func (m *Manager) Refresh(ctx context.Context) error {
	return m.resolve(ctx)
}

// resolve is the single transition path into a terminal state. Failures are
// absorbed silently: an unusable credential means Anonymous, not an error the
// caller must surface.
func (m *Manager) resolve(ctx context.Context) error {
	token, err := m.store.Token(ctx)
	if err != nil {
		m.log.Error(ctx, "credential read failed", "error", err)
		m.setState(StateAnonymous, nil)
		return nil
	}
	if token == "" {
		m.setState(StateAnonymous, nil)
		return nil
	}

	m.setState(StateResolving, nil)

	identity, err := m.api.FetchIdentity(ctx)
	if err != nil {
		m.log.Debug(ctx, "identity fetch failed, dropping credential", "error", err)
		if err := m.store.Clear(ctx); err != nil {
			m.log.Error(ctx, "credential clear failed", "error", err)
		}
		m.setState(StateAnonymous, nil)
		return nil
	}

	m.setState(StateAuthenticated, &identity)
	m.log.Info(ctx, "session resolved", "email", identity.Email, "role", string(identity.Role))
	return nil
}

// Login exchanges credentials for a token, persists it and refreshes the
// session. The returned error carries the server detail on rejection.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	token, err := m.api.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}
	if err := m.store.Save(ctx, token.AccessToken); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}
	if err := m.resolve(ctx); err != nil {
		return err
	}
	if m.Current().State != StateAuthenticated {
		return common.ErrUnauthorized
	}
	return nil
}

// Register validates the payload client-side, creates the account and logs in
// with the same credentials.
func (m *Manager) Register(ctx context.Context, reg models.Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	if _, err := m.api.Register(ctx, reg); err != nil {
		return err
	}
	return m.Login(ctx, reg.Email, reg.Password)
}

// Logout clears the credential unconditionally and transitions to Anonymous,
// regardless of the current state.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Clear(ctx)
	m.setState(StateAnonymous, nil)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
