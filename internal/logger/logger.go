package logger

import (
	"io"

	"github.com/rs/zerolog"
)

type Config struct {
	Env   string // development: console output; anything else: JSON
	Level string // trace, debug, info, warn, error
}

// New builds a structured logger writing to w.
func New(w io.Writer, cfg Config) zerolog.Logger {
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
