package signin

import (
	"context"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	"github.com/myshop/go-client/apierrors"
)

const googleIssuer = "https://accounts.google.com"

var _ Provider = (*Google)(nil)

// Google implements Provider over Google's OIDC endpoints.
type Google struct {
	oauthConfig  *oauth2.Config
	oidcProvider *oidc.Provider

	lock      sync.Mutex
	lastToken *oauth2.Token
}

// NewGoogle discovers Google's OIDC configuration and prepares the OAuth2
// client. An empty client id is a configuration error surfaced through the
// taxonomy so the UI can show it verbatim.
func NewGoogle(ctx context.Context, clientID, clientSecret, redirectURL string) (*Google, error) {
	if clientID == "" {
		return nil, apierrors.MissingClientID()
	}

	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGoogle] oidc.NewProvider")
	}

	return &Google{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		oidcProvider: provider,
	}, nil
}

// AuthCodeURL returns the consent page URL for the UI layer to open.
func (g *Google) AuthCodeURL(state, nonce string) string {
	return g.oauthConfig.AuthCodeURL(state, oidc.Nonce(nonce))
}

// Exchange swaps the authorization code for tokens and returns the verified
// raw id token for the backend's /auth/google endpoint.
func (g *Google) Exchange(ctx context.Context, code string) (string, error) {
	oauth2Token, err := g.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return "", apierrors.FromTransport(err)
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", apierrors.MissingIDToken()
	}

	verifier := g.oidcProvider.Verifier(&oidc.Config{ClientID: g.oauthConfig.ClientID})
	if _, err := verifier.Verify(ctx, rawIDToken); err != nil {
		return "", apierrors.InvalidResponse()
	}

	g.lock.Lock()
	g.lastToken = oauth2Token
	g.lock.Unlock()

	return rawIDToken, nil
}

// SignOut drops the provider-local sign-in state. Server-side revocation is
// the backend's concern.
func (g *Google) SignOut() {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.lastToken = nil
}
