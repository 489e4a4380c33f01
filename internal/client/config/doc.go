// Package config loads runtime configuration for the E-Waste Portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), prefix EWASTE_.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the portal REST backend
//	-d string   path of the local client database
//	-t int      request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations can be either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000",
//	  "database_path": "ewaste.db",
//	  "request_timeout": "15s",
//	  "notification_ttl": "3s",
//	  "log_level": "info"
//	}
package config
