package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ewasteportal/ewastecli/internal/flagx"
)

// duration unmarshals either a string like "3s" or integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	}
	return json.Unmarshal(data, &d.Duration)
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// leave the current Config values untouched.
type jsonConfig struct {
	APIBaseURL      *string   `json:"api_base_url"`
	RequestTimeout  *duration `json:"request_timeout"`
	DatabasePath    *string   `json:"database_path"`
	NotificationTTL *duration `json:"notification_ttl"`
	LogLevel        *string   `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. With no such flag it is a no-op. Read or unmarshal
// errors panic; configuration is resolved once at startup and a broken file
// should stop the program immediately.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.NotificationTTL != nil {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
