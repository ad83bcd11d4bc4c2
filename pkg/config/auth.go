package config

import (
	"time"
)

// AuthConfig holds settings for session tokens and cookies
type AuthConfig struct {
	// JWT settings
	JWTSecret   string
	TokenIssuer string
	TokenExpiry time.Duration

	// Session cookie settings
	CookieName   string
	CookieDomain string

	// CSRF settings
	CSRFSecret  string
	CSRFEnabled bool
}

// LoadAuthConfig loads auth configuration from environment variables
func LoadAuthConfig() *AuthConfig {
	config := &AuthConfig{
		JWTSecret:   getEnv("JWT_SECRET", ""),
		TokenIssuer: getEnv("JWT_ISSUER", "api.inkwell.blog"),
		TokenExpiry: getEnvAsDuration("JWT_EXPIRY", 7*24*time.Hour),

		CookieName:   getEnv("SESSION_COOKIE_NAME", "token"),
		CookieDomain: getEnv("SESSION_COOKIE_DOMAIN", ""),

		CSRFSecret:  getEnv("CSRF_SECRET", ""),
		CSRFEnabled: getEnvAsBool("CSRF_ENABLED", false),
	}

	return config
}
