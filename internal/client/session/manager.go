// Package session owns the client's authentication state: the tri-state
// lifecycle, the current user, and the orchestration of transport and
// durable storage around login, signup, logout, and startup rehydration.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/poleforge/poleforge/internal/client/api"
	"github.com/poleforge/poleforge/internal/client/models"
	"github.com/poleforge/poleforge/internal/logging"
)

// State is the authentication tri-state. It starts at StateLoading and
// resolves exactly once, after Rehydrate, to one of the other two values.
// It never returns to StateLoading afterwards.
type State string

const (
	StateLoading         State = "loading"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// Store is the durable home of the persisted session. Load returns
// (nil, nil) when nothing usable is stored.
type Store interface {
	Save(ctx context.Context, sess *models.Session) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}

// Manager is the single source of truth for authentication state.
// Construct one per process and pass it to consumers explicitly; UI code
// must never touch the store or the transport token directly.
//
// All auth mutations run under one mutex, so at most one login, signup,
// logout, or rehydration is in flight at a time and a state reader never
// observes StateAuthenticated without the matching persisted session.
type Manager struct {
	api   api.Client
	store Store
	log   logging.Logger

	mu      sync.Mutex
	state   State
	current *models.Session
}

func NewManager(client api.Client, store Store, log logging.Logger) *Manager {
	return &Manager{
		api:   client,
		store: store,
		log:   log,
		state: StateLoading,
	}
}

// Rehydrate restores the session from the durable store. It must run to
// completion before any consumer branches on State.
//
// An absent (or unreadable) store resolves to StateUnauthenticated
// without any network call. A stored token is installed and verified
// against the backend; if the backend rejects it, the persisted session
// is erased and the state resolves to StateUnauthenticated. Failures are
// logged, never returned: startup always completes.
//
// Only the first call does anything; once resolved the state stays put.
func (m *Manager) Rehydrate(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateLoading {
		return
	}

	sess, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to read persisted session", "error", err)
		sess = nil
	}
	if sess == nil {
		m.state = StateUnauthenticated
		return
	}

	m.api.SetToken(sess.Token)

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.log.Warn(ctx, "persisted session no longer valid", "error", err)
		if err := m.store.Clear(ctx); err != nil {
			m.log.Error(ctx, "failed to clear persisted session", "error", err)
		}
		m.api.SetToken("")
		m.state = StateUnauthenticated
		return
	}

	// The server copy of the user wins over the cached one.
	m.current = &models.Session{Token: sess.Token, User: user}
	m.state = StateAuthenticated
}

// Login authenticates with the given credentials. Invalid input fails
// fast with validation.Errors before any network attempt. On success the
// session is persisted, the token installed, and the state flipped to
// StateAuthenticated, in that order. On failure nothing changes and the
// error is returned for the caller to present.
func (m *Manager) Login(ctx context.Context, creds models.LoginCredentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	resp, err := m.api.Login(ctx, creds)
	if err != nil {
		return err
	}
	return m.install(ctx, resp)
}

// Signup creates an account and treats the result exactly like a login:
// signup implies immediate authentication, there is no verification step.
func (m *Manager) Signup(ctx context.Context, data models.SignupData) error {
	if err := data.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	resp, err := m.api.Signup(ctx, data)
	if err != nil {
		return err
	}
	return m.install(ctx, resp)
}

// install commits an authentication result: durable store first, then
// the transport token, then the in-memory state. If persistence fails,
// no partial state remains.
func (m *Manager) install(ctx context.Context, resp *api.AuthResponse) error {
	user := resp.User
	sess := &models.Session{Token: resp.AccessToken, User: &user}

	if err := m.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	m.api.SetToken(sess.Token)
	m.current = sess
	m.state = StateAuthenticated
	return nil
}

// Logout tears the session down locally regardless of the backend: the
// remote notification is best-effort and its failure is only logged.
// A user must always be able to leave the authenticated state.
// Calling Logout while already logged out is a no-op that succeeds.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.api.Logout(ctx); err != nil {
		m.log.Warn(ctx, "remote logout failed", "error", err)
	}

	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear persisted session", "error", err)
	}
	m.api.SetToken("")
	m.current = nil
	m.state = StateUnauthenticated
	return nil
}

// ForgotPassword requests a reset link. Stateless with respect to the
// session; the backend's confirmation message is returned for display.
func (m *Manager) ForgotPassword(ctx context.Context, data models.ForgotPasswordData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	return m.api.ForgotPassword(ctx, data)
}

// ResetPassword completes a reset using the emailed token. Like
// ForgotPassword it does not touch the session.
func (m *Manager) ResetPassword(ctx context.Context, data models.ResetPasswordData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	return m.api.ResetPassword(ctx, data)
}

// State returns the current tri-state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns the authenticated user, or nil outside
// StateAuthenticated. A session exists if and only if the state is
// StateAuthenticated.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	return m.current.User
}
