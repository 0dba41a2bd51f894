package host

import (
	"github.com/mlaily/falco/core/config"
	"github.com/mlaily/falco/core/handler"
	"github.com/mlaily/falco/core/server"
)

// Option configures a Host during creation.
type Option func(*Host)

// WithConfigSources declares the ordered configuration sources loaded at
// the start of Run. A missing required source makes Run fail before the
// server binds.
func WithConfigSources(srcs ...config.Source) Option {
	return func(h *Host) {
		h.sources = append(h.sources, srcs...)
	}
}

// WithServer supplies a prebuilt server, bypassing environment-derived
// server configuration.
func WithServer(srv *server.Server) Option {
	return func(h *Host) {
		h.srv = srv
	}
}

// WithServerConfig supplies explicit server configuration instead of
// loading it from the environment.
func WithServerConfig(cfg server.Config) Option {
	return func(h *Host) {
		h.serverCfg = &cfg
	}
}

// WithErrorHandler sets the error handler installed on the router.
func WithErrorHandler(eh handler.ErrorHandler) Option {
	return func(h *Host) {
		h.errorHandler = eh
	}
}
