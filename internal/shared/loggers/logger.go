package loggers

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

func init() {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
}

// New builds the process logger writing JSON lines to stdout.
func New(level string) (Logger, error) {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter builds a JSON logger at the given level writing to w.
// Returns a no-op logger and the parse error for an unknown level.
func NewWithWriter(level string, w io.Writer) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger(), nil
}

// Component derives a child logger tagged with the component name.
func Component(logger Logger, name string) Logger {
	return logger.With().Str(FieldComponent, name).Logger()
}

// Ctx extracts a logger from the context.
// Returns a no-op logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
