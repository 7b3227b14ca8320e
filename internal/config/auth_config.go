package config

import "time"

type AuthConfig interface {
	GetTokenSecret() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

type Auth struct{}

var _ AuthConfig = Auth{}

// GetTokenSecret returns the symmetric JWT signing secret. The default is a
// development placeholder and must be overridden outside of DEV.
func (Auth) GetTokenSecret() string {
	return GetEnv("TOKEN_SECRET", "CHANGE_ME_SUPER_SECRET")
}

func (Auth) GetAccessTokenExpiry() time.Duration {
	return 15 * time.Minute
}

func (Auth) GetRefreshTokenExpiry() time.Duration {
	return 7 * 24 * time.Hour // 7 days
}
