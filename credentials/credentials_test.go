package credentials_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myshop/go-client/credentials"
	"github.com/myshop/go-client/credentials/repofake"
)

func TestTokenPairSetAndClear(t *testing.T) {
	store := repofake.NewFakeStore()
	creds := credentials.New(store)

	require.Empty(t, creds.AccessToken())
	require.Empty(t, creds.RefreshToken())

	creds.SetTokens(credentials.TokenPair{Access: "access-1", Refresh: "refresh-1"})
	require.Equal(t, "access-1", creds.AccessToken())
	require.Equal(t, "refresh-1", creds.RefreshToken())

	creds.ClearTokens()
	require.Empty(t, creds.AccessToken())
	require.Empty(t, creds.RefreshToken())

	_, ok := store.Get(credentials.AccessTokenKey)
	require.False(t, ok)
	_, ok = store.Get(credentials.RefreshTokenKey)
	require.False(t, ok)
}

func TestDeviceIDStable(t *testing.T) {
	creds := credentials.New(repofake.NewFakeStore())

	first := creds.DeviceID()
	require.NotEmpty(t, first)
	require.Equal(t, first, creds.DeviceID())
}

func TestDeviceIDSurvivesStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	store, err := credentials.NewFileStore(path)
	require.NoError(t, err)
	first := credentials.New(store).DeviceID()

	reloaded, err := credentials.NewFileStore(path)
	require.NoError(t, err)
	require.Equal(t, first, credentials.New(reloaded).DeviceID())
}

func TestFileStorePersistsTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	store, err := credentials.NewFileStore(path)
	require.NoError(t, err)
	credentials.New(store).SetTokens(credentials.TokenPair{Access: "a", Refresh: "r"})

	reloaded, err := credentials.NewFileStore(path)
	require.NoError(t, err)

	creds := credentials.New(reloaded)
	require.Equal(t, "a", creds.AccessToken())
	require.Equal(t, "r", creds.RefreshToken())
}

func TestFileStoreFreshInstall(t *testing.T) {
	store, err := credentials.NewFileStore(filepath.Join(t.TempDir(), "nested", "prefs.json"))
	require.NoError(t, err)

	_, ok := store.Get(credentials.AccessTokenKey)
	require.False(t, ok)
}
