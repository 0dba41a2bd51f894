package router

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/mlaily/falco/core/handler"
)

// Route describes a single registered route.
type Route struct {
	Method  string
	Pattern string
}

// Router registers endpoint handlers and serves them behind the declared
// middleware chain. The zero value is not usable; construct with New.
type Router struct {
	mux          *http.ServeMux
	middlewares  []handler.Middleware
	extra        []handler.Middleware // route-level, from With
	errorHandler handler.ErrorHandler
	notFound     handler.Handler
	logger       *slog.Logger
	routes       *[]Route
}

// New creates a router with the given options.
func New(opts ...Option) *Router {
	r := &Router{
		mux:          http.NewServeMux(),
		errorHandler: defaultErrorHandler,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		routes:       &[]Route{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Use appends middleware to the router-wide chain. Middleware declared first
// runs first. Use must not be called after the router started serving.
func (rt *Router) Use(middlewares ...handler.Middleware) {
	rt.middlewares = append(rt.middlewares, middlewares...)
}

// With returns a shallow copy of the router that applies the extra
// middleware to routes registered through it, after the router-wide chain.
func (rt *Router) With(middlewares ...handler.Middleware) *Router {
	next := *rt
	next.extra = append(append([]handler.Middleware{}, rt.extra...), middlewares...)
	return &next
}

// NotFound sets the terminal catch-all handler for requests no route
// matches. Without one, unmatched requests get a plain 404.
func (rt *Router) NotFound(h handler.Handler) {
	rt.notFound = h
}

// Routes returns the registered routes for introspection.
func (rt *Router) Routes() []Route {
	return append([]Route{}, (*rt.routes)...)
}

// Get registers a handler for GET requests.
func (rt *Router) Get(pattern string, h handler.Handler) { rt.Method(http.MethodGet, pattern, h) }

// Post registers a handler for POST requests.
func (rt *Router) Post(pattern string, h handler.Handler) { rt.Method(http.MethodPost, pattern, h) }

// Put registers a handler for PUT requests.
func (rt *Router) Put(pattern string, h handler.Handler) { rt.Method(http.MethodPut, pattern, h) }

// Delete registers a handler for DELETE requests.
func (rt *Router) Delete(pattern string, h handler.Handler) {
	rt.Method(http.MethodDelete, pattern, h)
}

// Patch registers a handler for PATCH requests.
func (rt *Router) Patch(pattern string, h handler.Handler) { rt.Method(http.MethodPatch, pattern, h) }

// Head registers a handler for HEAD requests.
func (rt *Router) Head(pattern string, h handler.Handler) { rt.Method(http.MethodHead, pattern, h) }

// Options registers a handler for OPTIONS requests.
func (rt *Router) Options(pattern string, h handler.Handler) {
	rt.Method(http.MethodOptions, pattern, h)
}

// Handle registers a handler for all methods on the pattern.
func (rt *Router) Handle(pattern string, h handler.Handler) { rt.Method("", pattern, h) }

// Method registers a handler for one method (empty method matches all).
func (rt *Router) Method(method, pattern string, h handler.Handler) {
	*rt.routes = append(*rt.routes, Route{Method: method, Pattern: pattern})

	endpoint := handler.Chain(rt.extra, h)
	muxPattern := pattern
	if method != "" {
		muxPattern = method + " " + pattern
	}
	rt.mux.HandleFunc(muxPattern, func(w http.ResponseWriter, r *http.Request) {
		rt.execute(w, r, endpoint)
	})
}

// ServeHTTP implements http.Handler. A declared fallback handler catches
// unmatched requests behind the same middleware chain as endpoints; without
// one, unmatched requests get the transport default (404, or 405 with an
// Allow header when only the method mismatched).
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, pattern := rt.mux.Handler(r); pattern == "" && rt.notFound != nil {
		rt.execute(w, r, rt.notFound)
		return
	}
	// Dispatch through the matcher so wildcard values are bound before the
	// registered endpoint runs.
	rt.mux.ServeHTTP(w, r)
}

// execute runs the composed chain for one request, recovering panics and
// routing failures to the error handler.
func (rt *Router) execute(w http.ResponseWriter, r *http.Request, endpoint handler.Handler) {
	ww := newResponseWriter(w)
	ctx := handler.NewContext(ww, r, nil)

	defer func() {
		if p := recover(); p != nil {
			perr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				// Too late for an error response.
				rt.logger.Error("panic after response written",
					"value", perr.value,
					"stack", string(perr.stack),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
				)
				return
			}
			rt.errorHandler(ctx, perr)
		}
	}()

	chained := handler.Chain(rt.middlewares, endpoint)
	if err := chained(ctx); err != nil {
		rt.errorHandler(ctx, err)
	}
}
