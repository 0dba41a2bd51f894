package middleware

import (
	"log/slog"
	"time"

	"github.com/mlaily/falco/core/handler"
	"github.com/mlaily/falco/core/logger"
)

// LoggingConfig configures the request/response logging middleware.
type LoggingConfig struct {
	// Skip disables the middleware for specific requests.
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default()).
	Logger *slog.Logger

	// LogLevel for request/response lines (default: slog.LevelInfo).
	LogLevel slog.Level

	// SlowRequestThreshold promotes slow requests to warning level
	// (default: 5s).
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http").
	Component string
}

// Logging creates a request/response logging middleware with default
// configuration.
func Logging() handler.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger(log *slog.Logger) handler.Middleware {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request/response logging middleware with
// custom configuration. One line is emitted per completed request with
// method, path, status, and latency; errors from the chain are logged and
// passed through unchanged.
func LoggingWithConfig(cfg LoggingConfig) handler.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.Handler) handler.Handler {
		return func(ctx handler.Context) error {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()

			err := next(ctx)
			elapsed := time.Since(start)

			requestID, _ := GetRequestID(ctx)
			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
				logger.Query(req.URL.RawQuery),
				logger.RemoteAddr(req.RemoteAddr),
				logger.StatusCode(ctx.Status()),
				logger.Duration(elapsed),
				logger.RequestID(requestID),
				logger.Error(err),
			}

			level := cfg.LogLevel
			if elapsed >= cfg.SlowRequestThreshold {
				level = slog.LevelWarn
			}
			cfg.Logger.LogAttrs(ctx, level, "request completed", attrs...)

			return err
		}
	}
}
