package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables:
//
//	ADDRESS        — HTTP bind address
//	DATABASE_DSN   — PostgreSQL DSN
//	SECRET_KEY     — JWT HMAC secret
//	TOKEN_VALIDITY — token lifetime, Go duration string (e.g. "1h")
//
// Unset variables leave the current values untouched. An unparsable
// TOKEN_VALIDITY is ignored rather than aborting startup.
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.Addr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidity = d
		}
	}
}
