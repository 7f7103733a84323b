package apierrors_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/myshop/go-client/apierrors"
)

func TestClassifyUnauthorized(t *testing.T) {
	err := apierrors.Classify(401, nil)
	require.Equal(t, apierrors.KindUnauthorized, err.Kind)
	require.Equal(t, 401, err.StatusCode)
}

func TestClassifyRateLimit(t *testing.T) {
	t.Run("detail from body", func(t *testing.T) {
		err := apierrors.Classify(429, []byte(`{"detail": "Too many requests"}`))
		require.Equal(t, apierrors.KindRateLimitExceeded, err.Kind)
		require.Equal(t, "Too many requests", err.Message)
	})

	t.Run("generic message without detail", func(t *testing.T) {
		err := apierrors.Classify(429, []byte(`{}`))
		require.Equal(t, apierrors.KindRateLimitExceeded, err.Kind)
		require.Equal(t, "Too many requests. Please try again later.", err.Message)
	})

	t.Run("generic message for unparseable body", func(t *testing.T) {
		err := apierrors.Classify(429, []byte(`<html>throttled</html>`))
		require.Equal(t, apierrors.KindRateLimitExceeded, err.Kind)
		require.Equal(t, "Too many requests. Please try again later.", err.Message)
	})
}

func TestClassifyServerError(t *testing.T) {
	for _, code := range []int{400, 403, 404, 500, 503} {
		err := apierrors.Classify(code, []byte(`{"error": "boom"}`))
		require.Equal(t, apierrors.KindServerError, err.Kind)
		require.Equal(t, code, err.StatusCode)
	}
}

func TestClassifyValidationBody(t *testing.T) {
	body := []byte(`{"error": "Validation failed", "details": {"email": ["Enter a valid email address."], "password1": ["This password is too common."]}, "field_count": 2}`)

	err := apierrors.Classify(400, body)
	require.Equal(t, apierrors.KindValidationError, err.Kind)
	require.Equal(t, "Validation failed", err.Message)
	require.Equal(t, []string{"This password is too common."}, err.Details["password1"])
}

func TestFromTransportCollapsesToNetworkError(t *testing.T) {
	for _, cause := range []error{
		context.DeadlineExceeded,
		errors.New("dial tcp: connection refused"),
		errors.New("read: connection reset by peer"),
	} {
		err := apierrors.FromTransport(cause)
		require.Equal(t, apierrors.KindNetworkError, err.Kind)
	}
}

func TestKindOf(t *testing.T) {
	wrapped := errors.Wrap(apierrors.Unauthorized(), "[Execute] request failed")
	require.Equal(t, apierrors.KindUnauthorized, apierrors.KindOf(wrapped))
	require.True(t, apierrors.IsKind(wrapped, apierrors.KindUnauthorized))

	require.Equal(t, apierrors.Kind(""), apierrors.KindOf(errors.New("plain")))
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	err := apierrors.ValidationError("Validation failed", map[string][]string{
		"email": {"Enter a valid email address."},
	})
	require.Equal(t, apierrors.KindValidationError, err.Kind)
	require.Equal(t, []string{"Enter a valid email address."}, err.Details["email"])
}
