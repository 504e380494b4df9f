package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// serviceName tags every log line so aggregated streams stay attributable.
const serviceName = "smartedu-backend"

// Setup configures the process-wide zerolog logger and returns it.
// level accepts the zerolog names (trace through panic); anything
// unparseable falls back to info. format "pretty" selects the console
// writer for local development, everything else emits JSON.
// The global log.Logger is replaced so package-level logging and
// Component sub-loggers share the same writer and fields.
func Setup(level, format string) zerolog.Logger {
	var writer io.Writer = os.Stdout
	if strings.EqualFold(format, "pretty") {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	root := zerolog.New(writer).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	log.Logger = root
	return root
}

// Component derives a child of the global logger tagged with a component
// name. Services, handlers and workers log through these so streams can
// be filtered per part.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
