package config

import (
	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for environment parsing. Pointer fields let us
// tell "unset" apart from "set to the zero value".
type envConfig struct {
	APIBaseURL      *string `env:"EWASTE_API_BASE_URL"`
	RequestTimeout  *int    `env:"EWASTE_REQUEST_TIMEOUT"`
	DatabasePath    *string `env:"EWASTE_DATABASE_PATH"`
	NotificationTTL *int    `env:"EWASTE_NOTIFICATION_TTL"`
	LogLevel        *string `env:"EWASTE_LOG_LEVEL"`
}

// parseEnv overlays Config with values from EWASTE_* environment variables.
// Timeouts are given in seconds.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != nil {
		cfg.APIBaseURL = *ec.APIBaseURL
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = secondsToDuration(*ec.RequestTimeout)
	}
	if ec.DatabasePath != nil {
		cfg.DatabasePath = *ec.DatabasePath
	}
	if ec.NotificationTTL != nil {
		cfg.NotificationTTL = secondsToDuration(*ec.NotificationTTL)
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
}
