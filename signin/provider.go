// Package signin abstracts the external single-sign-on provider. The UI
// layer drives the interactive part (opening the consent page, collecting
// the authorization code); this package turns the result into a verified
// OpenID id token for the backend.
package signin

import "context"

// Provider exchanges an authorization code from the external sign-in UI for
// a verified id token, and clears any provider-local sign-in state.
type Provider interface {
	Exchange(ctx context.Context, code string) (idToken string, err error)
	SignOut()
}
