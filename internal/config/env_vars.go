package config

import (
	"os"
	"path/filepath"
)

const (
	appNameVar = "APP_NAME"
	baseURLVar = "BASE_URL"
	folderVar  = "FOLDER"
)

type EnvConfig interface {
	GetAppName() string
	GetBaseURL() string
	GetDataFolder() string
	GetCredentialsPath() string
	GetEnv() string
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "MyShop Client")
}

// GetBaseURL returns the storefront backend base URL; all request paths are
// resolved against it.
func (EnvVars) GetBaseURL() string {
	return GetEnv(baseURLVar, "http://127.0.0.1:8000")
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderVar, "./data")
}

// GetCredentialsPath locates the persisted key-value store for tokens and
// the device id.
func (e EnvVars) GetCredentialsPath() string {
	return filepath.Join(e.GetDataFolder(), "credentials.json")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
