package credentials

import (
	"sync"

	"github.com/google/uuid"
)

// TokenPair is the access/refresh credential pair returned by the token
// endpoints. The pair is always stored and cleared as a unit.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Credentials owns the token pair and the per-install device identifier on
// top of a Store. All token writes go through SetTokens/ClearTokens under a
// single lock, so a reader can never observe a new access token next to a
// stale refresh token.
type Credentials struct {
	store Store
	lock  sync.Mutex
}

// New wraps store. The store is the only state; Credentials itself caches
// nothing, so two Credentials over the same store agree.
func New(store Store) *Credentials {
	return &Credentials{store: store}
}

// AccessToken returns the stored access token, empty if absent.
func (c *Credentials) AccessToken() string {
	v, _ := c.store.Get(AccessTokenKey)
	return v
}

// RefreshToken returns the stored refresh token, empty if absent.
func (c *Credentials) RefreshToken() string {
	v, _ := c.store.Get(RefreshTokenKey)
	return v
}

// SetTokens overwrites both tokens as a pair.
func (c *Credentials) SetTokens(pair TokenPair) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.store.Set(AccessTokenKey, pair.Access)
	c.store.Set(RefreshTokenKey, pair.Refresh)
}

// ClearTokens removes both tokens as a pair.
func (c *Credentials) ClearTokens() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.store.Clear(AccessTokenKey)
	c.store.Clear(RefreshTokenKey)
}

// DeviceID returns the stable per-install device identifier, generating and
// persisting one on first use. It is never rotated: guest carts and
// rate-limit buckets on the backend key off it.
func (c *Credentials) DeviceID() string {
	c.lock.Lock()
	defer c.lock.Unlock()

	if id, ok := c.store.Get(DeviceIDKey); ok && id != "" {
		return id
	}
	id := uuid.New().String()
	c.store.Set(DeviceIDKey, id)
	return id
}
