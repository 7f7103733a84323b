package config

type Config interface {
	EnvConfig
	GoogleConfig
}

type mainConfig struct {
	EnvVars
	Google
}

func New() Config {
	return mainConfig{}
}
