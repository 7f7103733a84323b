package credentials

// Persisted keys. These match the key names the backend team documented for
// the mobile clients, so a reinstall that migrates preferences keeps working.
const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
	DeviceIDKey     = "device_id"
)

// Store is a plain string key-value store that survives process restarts.
// Absence is reported through the boolean, never through an error: callers
// treat a missing value exactly like an empty one.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Clear(key string)
}
