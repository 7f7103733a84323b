// Package session owns the authenticated session: its observable state, the
// token pair lifecycle, staleness decisions, and the sign-out cascade. All
// credential writes in the process go through the Manager here; feature code
// and the transport layer only ever read.
package session

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/myshop/go-client/credentials"
	"github.com/myshop/go-client/signin"
	"github.com/myshop/go-client/transport"
)

// State is the observable session state.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateVerifying       State = "verifying"
	StateAuthenticated   State = "authenticated"
	StateRefreshing      State = "refreshing"
)

// User is the authenticated customer's profile. Cached for the lifetime of
// the authenticated session and cleared on sign-out.
type User struct {
	ID              int     `json:"id"`
	Email           string  `json:"email"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	PhoneNumber     *string `json:"phone_number"`
	IsActive        bool    `json:"is_active"`
	IsEmailVerified bool    `json:"is_email_verified"`
	LoginMethod     string  `json:"login_method"`
}

// StateListener is notified after every state transition. Invoked outside
// the Manager's locks; implementations decide their own threading.
type StateListener func(State)

// Manager orchestrates the session state machine.
type Manager struct {
	creds    *credentials.Credentials
	pipeline *transport.Pipeline
	sso      signin.Provider

	lock     sync.RWMutex
	state    State
	user     *User
	listener StateListener

	refreshGroup singleflight.Group
}

// ManagerOption modifies a Manager during construction.
type ManagerOption func(*Manager)

// WithSignInProvider attaches the external single-sign-on provider. Without
// one, Google sign-in is unavailable and sign-out skips the SSO cascade.
func WithSignInProvider(provider signin.Provider) ManagerOption {
	return func(m *Manager) {
		m.sso = provider
	}
}

// WithStateListener registers a callback for state transitions.
func WithStateListener(listener StateListener) ManagerOption {
	return func(m *Manager) {
		m.listener = listener
	}
}

// NewManager builds a Manager in the verifying state; callers run
// VerifyAuthentication once at startup to settle it.
func NewManager(creds *credentials.Credentials, pipeline *transport.Pipeline, options ...ManagerOption) (*Manager, error) {
	if creds == nil {
		return nil, errors.New("[NewManager] credentials are required")
	}
	if pipeline == nil {
		return nil, errors.New("[NewManager] pipeline is required")
	}

	manager := &Manager{
		creds:    creds,
		pipeline: pipeline,
		state:    StateVerifying,
	}

	for _, opt := range options {
		opt(manager)
	}

	return manager, nil
}

// State returns the current session state.
func (m *Manager) State() State {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.state
}

// CurrentUser returns the cached profile, nil while signed out or before
// the profile has been fetched.
func (m *Manager) CurrentUser() *User {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// DeviceID exposes the per-install device identifier for collaborators that
// need it outside of request headers.
func (m *Manager) DeviceID() string {
	return m.creds.DeviceID()
}

func (m *Manager) setState(s State) {
	m.lock.Lock()
	m.state = s
	listener := m.listener
	m.lock.Unlock()

	if listener != nil {
		listener(s)
	}
}

func (m *Manager) setUser(u *User) {
	m.lock.Lock()
	m.user = u
	m.lock.Unlock()
}
