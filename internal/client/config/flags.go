package config

import (
	"flag"
	"os"
	"time"

	"github.com/ewasteportal/ewastecli/internal/flagx"
)

// parseFlags overlays Config with command line flag values. Only flags the
// user actually passed override the current values.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	apiBaseURL := fs.String("a", cfg.APIBaseURL, "address and port of the reporting API")
	databasePath := fs.String("d", cfg.DatabasePath, "path to the local state database")
	timeoutSeconds := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout in seconds")
	logLevel := fs.String("l", cfg.LogLevel, "log level (debug, info, warn, error)")

	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-l"})

	if err := fs.Parse(args); err != nil {
		return
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.APIBaseURL = *apiBaseURL
		case "d":
			cfg.DatabasePath = *databasePath
		case "t":
			cfg.RequestTimeout = time.Duration(*timeoutSeconds) * time.Second
		case "l":
			cfg.LogLevel = *logLevel
		}
	})
}
