// Package logger builds the application's slog.Logger and provides
// attribute helper functions using the empty-Attr pattern for nil safety,
// so call sites like log.Info("msg", logger.Error(err)) need no nil checks.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Config controls handler selection and verbosity.
type Config struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Format selects the handler: text, json, or dev (colorized, for local
	// development).
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// New builds a slog.Logger writing to stderr according to cfg.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter is New with an explicit output writer.
func NewWithWriter(w io.Writer, cfg Config) *slog.Logger {
	level := parseLevel(cfg.Level)

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "dev":
		h = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "2006-01-02 15:04:05.000",
		})
	default:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(h)
}

// Discard returns a logger that drops everything. Components use it as the
// default so logging stays optional.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
