package utils

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Development gets a
// human-readable console writer, everything else stays JSON.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// PrintLogInfo records the outcome of one handler invocation. Server-side
// failures keep their full detail here even when the HTTP response only
// carries a generic message.
func PrintLogInfo(username *string, statusCode int, functionName string, err *error) {
	user := "Unknown"
	if username != nil {
		user = *username
	}

	evt := log.Info()
	switch {
	case statusCode >= http.StatusInternalServerError:
		evt = log.Error()
	case statusCode >= http.StatusBadRequest:
		evt = log.Warn()
	}

	if err != nil && *err != nil {
		evt = evt.Err(*err)
	}

	evt.Str("user", user).
		Int("status", statusCode).
		Str("handler", functionName).
		Msg("request")
}
