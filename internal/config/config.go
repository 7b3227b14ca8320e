package config

type Config interface {
	EnvConfig
	CorsConfig
	AuthConfig
	WikidataConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetSeedPath() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Auth
	Wikidata
}

func New() Config {
	return mainConfig{}
}
