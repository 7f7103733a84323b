package session

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/myshop/go-client/apierrors"
	"github.com/myshop/go-client/credentials"
	"github.com/myshop/go-client/password"
	"github.com/myshop/go-client/transport"
)

type authResponse struct {
	User   User                  `json:"user"`
	Tokens credentials.TokenPair `json:"tokens"`
}

// RegisterRequest is the payload for the register endpoint.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
}

// SignUpRequest is the payload for the accounts sign-up endpoint, which
// performs server-side field validation and responds with a message rather
// than a token pair.
type SignUpRequest struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	PhoneNumber string `json:"phone_number"`
	Password1   string `json:"password1"`
	Password2   string `json:"password2"`
}

// Login exchanges email/password for a token pair. On success the pair is
// stored, the profile is fetched best-effort, and the session becomes
// authenticated. On any failure the classified error is surfaced and no
// partial credentials are left behind.
func (m *Manager) Login(ctx context.Context, email, pw string) error {
	pair, err := transport.Execute[credentials.TokenPair](ctx, m.pipeline, transport.RequestDescriptor{
		Method: http.MethodPost,
		Path:   "/token/",
		Body: map[string]string{
			"email":    email,
			"password": pw,
		},
	})
	if err != nil {
		return err
	}

	m.creds.SetTokens(pair)
	m.loadProfile(ctx)
	m.setState(StateAuthenticated)
	return nil
}

// LoginWithProfile is the login variant against the combined endpoint that
// returns the profile alongside the tokens, saving the separate fetch.
func (m *Manager) LoginWithProfile(ctx context.Context, email, pw string) error {
	resp, err := transport.Execute[authResponse](ctx, m.pipeline, transport.RequestDescriptor{
		Method: http.MethodPost,
		Path:   "/login/",
		Body: map[string]string{
			"email":    email,
			"password": pw,
		},
	})
	if err != nil {
		return err
	}

	m.creds.SetTokens(resp.Tokens)
	m.setUser(&resp.User)
	m.setState(StateAuthenticated)
	return nil
}

// Register creates an account on the backend variant that signs the new
// customer in immediately, responding with both the profile and tokens.
func (m *Manager) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := transport.Execute[authResponse](ctx, m.pipeline, transport.RequestDescriptor{
		Method: http.MethodPost,
		Path:   "/register/",
		Body:   req,
	})
	if err != nil {
		return err
	}

	m.creds.SetTokens(resp.Tokens)
	m.setUser(&resp.User)
	m.setState(StateAuthenticated)
	return nil
}

// SignUp submits the validated sign-up form to the accounts endpoint. The
// password requirements are checked locally first so an obviously invalid
// form never leaves the device; the server remains the final authority and
// its field-level rejections surface as ValidationError.
func (m *Manager) SignUp(ctx context.Context, req SignUpRequest) (string, error) {
	if req.Password1 != req.Password2 {
		return "", apierrors.ValidationError("Passwords do not match", map[string][]string{
			"password2": {"Passwords do not match"},
		})
	}
	if result := password.Validate(req.Password1); !result.Valid {
		return "", apierrors.ValidationError("Password does not meet requirements", map[string][]string{
			"password1": result.Errors,
		})
	}

	resp, err := transport.Execute[struct {
		Message string `json:"message"`
	}](ctx, m.pipeline, transport.RequestDescriptor{
		Method: http.MethodPost,
		Path:   "/accounts/register/",
		Body:   req,
	})
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}

// SignInWithGoogle completes the external sign-in: the authorization code
// from the sign-in UI is exchanged for a verified id token, which the
// backend swaps for a token pair.
func (m *Manager) SignInWithGoogle(ctx context.Context, code string) error {
	if m.sso == nil {
		return apierrors.MissingClientID()
	}

	idToken, err := m.sso.Exchange(ctx, code)
	if err != nil {
		return err
	}

	pair, err := transport.Execute[credentials.TokenPair](ctx, m.pipeline, transport.RequestDescriptor{
		Method: http.MethodPost,
		Path:   "/auth/google",
		Body:   map[string]string{"id_token": idToken},
	})
	if err != nil {
		return err
	}

	m.creds.SetTokens(pair)
	m.loadProfile(ctx)
	m.setState(StateAuthenticated)
	return nil
}

// loadProfile caches the customer profile for the session. Best-effort: a
// failed fetch leaves the session authenticated with no cached profile.
func (m *Manager) loadProfile(ctx context.Context) {
	user, err := transport.Execute[User](ctx, m.pipeline, transport.RequestDescriptor{
		Method: http.MethodGet,
		Path:   "/user/",
	})
	if err != nil {
		log.Debug().Err(err).Msg("Profile fetch after sign-in failed")
		return
	}
	m.setUser(&user)
}
