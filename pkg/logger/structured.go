package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// zlog is a no-op until Init runs, so library users and tests can log safely
var zlog = zerolog.Nop()

// Init initializes the structured zerolog logger
func Init(env string) {
	var w io.Writer

	if env == "development" || env == "dev" || env == "local" {
		// Pretty console output for development
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		// JSON output for production (machine-readable)
		w = os.Stdout
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "inkwell-backend").
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// Get returns the global zerolog logger
func Get() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a logger with request_id field
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}

// WithProfileID returns a logger with profile_id field
func WithProfileID(profileID string) zerolog.Logger {
	return zlog.With().Str("profile_id", profileID).Logger()
}
