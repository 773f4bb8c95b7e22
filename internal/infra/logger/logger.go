package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup настраивает zerolog:
//   - level: trace, debug, info, warn, error
//   - format: "json" для продакшена, "pretty" для разработки
func Setup(level, format string) zerolog.Logger {
	return New(os.Stdout, level, format)
}

// New как Setup, но с произвольным writer
func New(out io.Writer, level, format string) zerolog.Logger {
	writer := out
	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Component дочерний логгер с полем component
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
