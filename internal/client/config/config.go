package config

import "time"

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}

// Config holds runtime settings for the E-Waste Portal CLI.
type Config struct {
	// APIBaseURL is the base URL of the portal REST backend.
	APIBaseURL string
	// RequestTimeout bounds every single HTTP request.
	RequestTimeout time.Duration
	// DatabasePath is the local sqlite file holding the persisted credential.
	DatabasePath string
	// NotificationTTL is how long a notification stays visible.
	NotificationTTL time.Duration
	// LogLevel configures the structured logger.
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "ewaste.db"
	c.NotificationTTL = 3 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
