// Package session owns the authenticated-user lifecycle: startup resolution
// from the stored snapshot, login, register, profile update, logout, and
// teardown on authorization failure. The rest of the application observes
// session state through Subscribe instead of reading shared globals.
package session

import (
	"context"
	"sync"

	"github.com/dvalero/finwallet/internal/client/api"
	"github.com/dvalero/finwallet/internal/client/models"
	"github.com/dvalero/finwallet/internal/client/services"
	"github.com/dvalero/finwallet/internal/logging"
)

// verificationURL is embedded in registration payloads; the backend uses it
// as the link target in account-verification emails.
const verificationURL = "https://managemymoney.com/verify"

// State is a snapshot of the session. Loading is true only between process
// start and the first credential-store read.
type State struct {
	User    *models.User
	Loading bool
}

// Authenticated reports whether a user is signed in.
func (s State) Authenticated() bool {
	return s.User != nil
}

// CredentialStore is the slice of the credential store the manager uses.
// *credentials.Store satisfies it.
type CredentialStore interface {
	SaveToken(ctx context.Context, token string) error
	LoadToken(ctx context.Context) (string, bool, error)
	ClearToken(ctx context.Context) error
	SaveUser(ctx context.Context, user models.User) error
	LoadUser(ctx context.Context) (*models.User, error)
	ClearUser(ctx context.Context) error
}

// HandlerRegistry is where the manager installs itself as the 401 handler.
// *api.Client satisfies it.
type HandlerRegistry interface {
	SetUnauthorizedHandler(h api.UnauthorizedHandler)
}

// Manager is the session state machine. It is safe for concurrent use;
// repeated logouts (including 401-triggered ones) are no-ops after the
// first.
type Manager struct {
	auth     services.AuthAPI
	store    CredentialStore
	registry HandlerRegistry
	log      logging.Logger

	mu      sync.Mutex
	state   State
	nextSub int
	subs    map[int]func(State)
}

func NewManager(auth services.AuthAPI, store CredentialStore, registry HandlerRegistry, log logging.Logger) *Manager {
	return &Manager{
		auth:     auth,
		store:    store,
		registry: registry,
		log:      log,
		state:    State{Loading: true},
		subs:     make(map[int]func(State)),
	}
}

// State returns the current session snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers fn to be called on every state transition and returns
// a cancel function. fn runs outside the manager's lock.
func (m *Manager) Subscribe(fn func(State)) (cancel func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	fns := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// Start registers the manager as the API client's unauthorized handler and
// resolves the boot state from the stored snapshot. Storage failures are
// logged and resolve to anonymous; Loading flips to false exactly once
// regardless of outcome.
func (m *Manager) Start(ctx context.Context) {
	m.registry.SetUnauthorizedHandler(m)

	user, err := m.store.LoadUser(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to load stored session", "error", err)
		user = nil
	}

	if user != nil && m.storedTokenExpired(ctx) {
		m.log.Warn(ctx, "stored token expired, discarding session")
		m.clearStored(ctx)
		user = nil
	}

	m.setState(State{User: user, Loading: false})
}

// Close detaches the manager from the API client so a 401 arriving after
// teardown does not invoke a handler bound to a disposed session.
func (m *Manager) Close() {
	m.registry.SetUnauthorizedHandler(nil)
}

// Login exchanges credentials for a token, persists it together with the
// returned user profile, and transitions to authenticated. On any failure
// nothing is stored and the state is left unchanged.
func (m *Manager) Login(ctx context.Context, req models.LoginRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	resp, err := m.auth.Login(ctx, req)
	if err != nil {
		return err
	}

	if err := m.persist(ctx, resp); err != nil {
		return err
	}

	user := resp.User
	m.setState(State{User: &user})
	return nil
}

// Register creates an account. The payload is validated before any network
// call and augmented with the fixed verification-link target; otherwise the
// contract matches Login.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	req.VerificationURL = verificationURL

	resp, err := m.auth.Register(ctx, req)
	if err != nil {
		return err
	}

	if err := m.persist(ctx, resp); err != nil {
		return err
	}

	user := resp.User
	m.setState(State{User: &user})
	return nil
}

// UpdateProfile replaces the profile of the signed-in user. The token is
// untouched; the stored snapshot is refreshed best-effort.
func (m *Manager) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	if !m.State().Authenticated() {
		return ErrNotAuthenticated
	}
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := m.auth.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}

	if err := m.store.SaveUser(ctx, *user); err != nil {
		m.log.Warn(ctx, "failed to refresh stored user snapshot", "error", err)
	}

	m.setState(State{User: user})
	return nil
}

// Logout clears the stored credentials and resets the in-memory state. The
// in-memory reset happens unconditionally so the UI reflects the logged-out
// status even when storage cleanup fails; those failures are logged, not
// surfaced. Calling Logout on an anonymous session is a no-op.
func (m *Manager) Logout(ctx context.Context) {
	m.clearStored(ctx)
	m.setState(State{})
}

// HandleUnauthorized implements api.UnauthorizedHandler: a 401 anywhere
// tears the session down. The failed call still surfaces its own error to
// its caller.
func (m *Manager) HandleUnauthorized(ctx context.Context) {
	m.Logout(ctx)
}

// persist writes token and user snapshot. The two writes are not atomic;
// the token goes first so a half-written state is at worst a token without
// a snapshot.
func (m *Manager) persist(ctx context.Context, resp *models.AuthResponse) error {
	if err := m.store.SaveToken(ctx, resp.AccessToken); err != nil {
		return err
	}
	if err := m.store.SaveUser(ctx, resp.User); err != nil {
		return err
	}
	return nil
}

func (m *Manager) clearStored(ctx context.Context) {
	if err := m.store.ClearToken(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear stored token", "error", err)
	}
	if err := m.store.ClearUser(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear stored user", "error", err)
	}
}
