// Package logger builds the process-wide zerolog instance for the
// OfficeHub server.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/officehub-dev/officehub/internal/config"
)

const serviceName = "officehub"

// Init builds the logger from the logging config and installs it as the
// zerolog global. Format "console" gives colored human-readable output for
// local development; anything else emits JSON lines for log shippers.
func Init(cfg config.LoggingConfig) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	var l zerolog.Logger
	if strings.ToLower(cfg.Format) == "console" {
		l = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	} else {
		l = zerolog.New(os.Stdout)
	}

	l = l.With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	log.Logger = l
	return l
}

// parseLevel maps the config string to a zerolog level, defaulting to info
// for anything unrecognized
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
