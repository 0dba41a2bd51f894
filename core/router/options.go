package router

import (
	"log/slog"

	"github.com/mlaily/falco/core/handler"
)

// Option configures a Router during creation.
type Option func(*Router)

// WithErrorHandler sets a custom error handler for the router.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(rt *Router) {
		if h != nil {
			rt.errorHandler = h
		}
	}
}

// WithMiddleware adds middleware to the router-wide chain.
func WithMiddleware(middlewares ...handler.Middleware) Option {
	return func(rt *Router) {
		rt.middlewares = append(rt.middlewares, middlewares...)
	}
}

// WithLogger sets the logger used for non-recoverable conditions, such as
// panics that occur after the response has been written.
func WithLogger(log *slog.Logger) Option {
	return func(rt *Router) {
		if log != nil {
			rt.logger = log
		}
	}
}

// WithNotFound sets the fallback handler for unmatched requests.
func WithNotFound(h handler.Handler) Option {
	return func(rt *Router) {
		rt.notFound = h
	}
}
