package session

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/myshop/go-client/apierrors"
	"github.com/myshop/go-client/claims"
	"github.com/myshop/go-client/credentials"
	"github.com/myshop/go-client/transport"
)

// VerifyAuthentication settles the startup state. Any doubt about identity
// validity collapses to signed-out: an expired token that cannot be
// refreshed, a /user/ probe that does not return 200, or a network failure
// all end in the unauthenticated state with tokens cleared.
func (m *Manager) VerifyAuthentication(ctx context.Context) {
	access := m.creds.AccessToken()
	if access == "" {
		m.setState(StateUnauthenticated)
		return
	}

	if claims.IsExpired(access) {
		if err := m.Refresh(ctx); err != nil {
			log.Debug().Err(err).Msg("Startup refresh failed, signing out")
			m.SignOut(ctx)
			return
		}
	}

	// The probe cares about the status alone: 200 means the identity is
	// still valid. 401 and 404 mean the account is gone or the token is
	// rejected, and any other outcome is doubt, which also collapses to
	// signed-out.
	if _, err := transport.ExecuteStatus(ctx, m.pipeline, transport.RequestDescriptor{
		Method: http.MethodGet,
		Path:   "/user/",
	}); err != nil {
		log.Debug().Err(err).Msg("Identity probe failed, signing out")
		m.SignOut(ctx)
		return
	}

	m.loadProfile(ctx)
	m.setState(StateAuthenticated)
}

// Refresh exchanges the stored refresh token for a new token pair. At most
// one refresh is in flight at any time: concurrent callers share the single
// outcome instead of issuing duplicate network calls. On success both
// tokens are overwritten atomically; on failure neither token is modified
// here, the caller decides whether to sign out.
func (m *Manager) Refresh(ctx context.Context) error {
	// Detach from the caller's cancellation: a view disappearing must not
	// cancel a refresh that other callers are awaiting.
	detached := context.WithoutCancel(ctx)

	_, err, _ := m.refreshGroup.Do("refresh", func() (any, error) {
		return nil, m.doRefresh(detached)
	})
	return err
}

func (m *Manager) doRefresh(ctx context.Context) error {
	refresh := m.creds.RefreshToken()
	if refresh == "" {
		return apierrors.InvalidToken()
	}

	previous := m.State()
	m.setState(StateRefreshing)

	pair, err := transport.Execute[credentials.TokenPair](ctx, m.pipeline, transport.RequestDescriptor{
		Method: http.MethodPost,
		Path:   "/token/refresh/",
		Body:   map[string]string{"refresh": refresh},
	})
	if err != nil {
		m.setState(previous)
		return err
	}

	m.creds.SetTokens(pair)
	if previous == StateVerifying {
		// Startup verification still has the identity probe ahead of it.
		m.setState(previous)
	} else {
		m.setState(StateAuthenticated)
	}
	return nil
}

// GetValidToken returns an access token that is not yet expired, refreshing
// first when needed. When no usable token can be produced the stored pair
// is cleared and the session collapses to unauthenticated, so callers never
// retry with credentials known to be dead.
func (m *Manager) GetValidToken(ctx context.Context) (string, error) {
	if claims.IsExpired(m.creds.AccessToken()) {
		if err := m.Refresh(ctx); err != nil {
			log.Debug().Err(err).Msg("Token refresh failed, clearing credentials")
			m.creds.ClearTokens()
			m.setUser(nil)
			m.setState(StateUnauthenticated)
			return "", apierrors.InvalidToken()
		}
	}

	token := m.creds.AccessToken()
	if token == "" {
		return "", apierrors.InvalidToken()
	}
	return token, nil
}

// SignOut clears the token pair, drops the cached profile, notifies the
// external sign-on provider, and transitions to unauthenticated. Idempotent:
// signing out while already unauthenticated only re-asserts the state. The
// store is fully cleared before the state change becomes observable.
func (m *Manager) SignOut(_ context.Context) {
	m.creds.ClearTokens()
	m.setUser(nil)

	if m.sso != nil {
		m.sso.SignOut()
	}

	m.setState(StateUnauthenticated)
}
