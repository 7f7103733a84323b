package signin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myshop/go-client/apierrors"
	"github.com/myshop/go-client/signin"
)

func TestNewGoogleRequiresClientID(t *testing.T) {
	_, err := signin.NewGoogle(context.Background(), "", "secret", "http://localhost/callback")
	require.True(t, apierrors.IsKind(err, apierrors.KindMissingClientID))
	require.EqualError(t, err, "Google Client ID is missing")
}
