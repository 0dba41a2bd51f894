package host

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/mlaily/falco/core/config"
	"github.com/mlaily/falco/core/handler"
	"github.com/mlaily/falco/core/logger"
	"github.com/mlaily/falco/core/router"
	"github.com/mlaily/falco/core/server"
	"github.com/mlaily/falco/core/stage"
)

// Host accumulates configuration stages and assembles them into a running
// server. Declaration methods may be called in any order, from one
// goroutine, before Run.
type Host struct {
	logging    stage.Accumulator[logger.Config]
	services   stage.Accumulator[*Services]
	middleware stage.Accumulator[*router.Router]
	endpoints  []Endpoint
	deferred   []func(*Services) []Endpoint
	notFound   handler.Handler

	sources      []config.Source
	serverCfg    *server.Config
	srv          *server.Server
	errorHandler handler.ErrorHandler

	finalized atomic.Bool
}

// New creates an empty Host.
func New(opts ...Option) *Host {
	h := &Host{
		logging:    stage.Empty[logger.Config](),
		services:   stage.Empty[*Services](),
		middleware: stage.Empty[*router.Router](),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Logging appends stages transforming the logging configuration before the
// root logger is built.
func (h *Host) Logging(stages ...stage.Stage[logger.Config]) *Host {
	h.declare()
	for _, s := range stages {
		h.logging = h.logging.Append(s)
	}
	return h
}

// AddServices appends a service-registration stage. User stages always run
// after the framework's own services are registered.
func (h *Host) AddServices(stages ...stage.Stage[*Services]) *Host {
	h.declare()
	for _, s := range stages {
		h.services = h.services.Append(s)
	}
	return h
}

// Use appends middleware to the request pipeline, in declaration order.
func (h *Host) Use(middlewares ...handler.Middleware) *Host {
	h.declare()
	for _, mw := range middlewares {
		mw := mw
		h.middleware = h.middleware.Append(func(rt *router.Router) *router.Router {
			rt.Use(mw)
			return rt
		})
	}
	return h
}

// UseIf appends middleware gated by a predicate. The predicate runs once,
// at assembly time, against the live router; when false the pipeline is
// exactly as if the stage had not been declared.
func (h *Host) UseIf(pred func(*router.Router) bool, mw handler.Middleware) *Host {
	h.declare()
	h.middleware = h.middleware.AppendIf(pred, func(rt *router.Router) *router.Router {
		rt.Use(mw)
		return rt
	})
	return h
}

// UseIfNot is UseIf with the predicate negated.
func (h *Host) UseIfNot(pred func(*router.Router) bool, mw handler.Middleware) *Host {
	h.declare()
	h.middleware = h.middleware.AppendIfNot(pred, func(rt *router.Router) *router.Router {
		rt.Use(mw)
		return rt
	})
	return h
}

// Endpoints appends endpoint declarations.
func (h *Host) Endpoints(eps ...Endpoint) *Host {
	h.declare()
	h.endpoints = append(h.endpoints, eps...)
	return h
}

// EndpointsWith defers endpoint construction until services are available,
// for handlers that need registered dependencies.
func (h *Host) EndpointsWith(build func(*Services) []Endpoint) *Host {
	h.declare()
	h.deferred = append(h.deferred, build)
	return h
}

// Get declares a GET endpoint.
func (h *Host) Get(pattern string, hd handler.Handler) *Host {
	return h.Endpoints(GetEndpoint(pattern, hd))
}

// Post declares a POST endpoint.
func (h *Host) Post(pattern string, hd handler.Handler) *Host {
	return h.Endpoints(PostEndpoint(pattern, hd))
}

// NotFound declares the terminal catch-all handler for unmatched requests.
func (h *Host) NotFound(hd handler.Handler) *Host {
	h.declare()
	h.notFound = hd
	return h
}

// Run assembles the declared stages in the documented order and serves
// until ctx is canceled or the process receives SIGINT/SIGTERM. It returns
// declared-configuration errors before the listener ever binds; a missing
// required config source aborts startup.
func (h *Host) Run(ctx context.Context) error {
	if !h.finalized.CompareAndSwap(false, true) {
		return ErrHostFinalized
	}

	app, err := h.assemble()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.log.InfoContext(ctx, "host assembled",
		"endpoints", len(app.router.Routes()),
		"middleware", h.middleware.Len(),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(app.server.Run(ctx, app.router))
	return g.Wait()
}

// assembled is the product of the finalize phase.
type assembled struct {
	log    *slog.Logger
	conf   *config.Manager
	svcs   *Services
	router *router.Router
	server *server.Server
}

// assemble performs finalize steps 1-6. Split from Run so tests can drive
// the full sequencing without binding a listener.
func (h *Host) assemble() (*assembled, error) {
	// Configuration sources load first; a missing required source is fatal
	// before anything else happens.
	conf, err := config.Read(h.sources...)
	if err != nil {
		return nil, err
	}

	// 1. Logging.
	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return nil, err
	}
	log := logger.New(h.logging.Finalize(logCfg))

	// 2. Services, framework registrations first.
	svcs := NewServices()
	svcs.Set(ServiceLogger, log)
	svcs.Set(ServiceConfig, conf)
	svcs = h.services.Finalize(svcs)

	// 3. Router.
	routerOpts := []router.Option{router.WithLogger(log)}
	if h.errorHandler != nil {
		routerOpts = append(routerOpts, router.WithErrorHandler(h.errorHandler))
	}
	rt := router.New(routerOpts...)

	// 4. Middleware chain, declared order.
	rt = h.middleware.Finalize(rt)

	// 5. Endpoint dispatch is the fixed stage after the middleware chain.
	endpoints := append([]Endpoint{}, h.endpoints...)
	for _, build := range h.deferred {
		endpoints = append(endpoints, build(svcs)...)
	}
	for _, ep := range endpoints {
		rt.Method(ep.Method, ep.Pattern, ep.Handler)
	}

	// 6. Fallback.
	if h.notFound != nil {
		rt.NotFound(h.notFound)
	}

	// 7. Server.
	srv := h.srv
	if srv == nil {
		cfg := h.serverCfg
		if cfg == nil {
			cfg = new(server.Config)
			if err := config.Load(cfg); err != nil {
				return nil, err
			}
		}
		srv, err = server.NewFromConfig(*cfg, server.WithLogger(log))
		if err != nil {
			return nil, err
		}
	}

	return &assembled{log: log, conf: conf, svcs: svcs, router: rt, server: srv}, nil
}

// Handler assembles the declared stages and returns the composed request
// pipeline as an http.Handler, without starting a server. Like Run, it
// finalizes the host; it exists for embedding the pipeline into an external
// transport.
func (h *Host) Handler() (http.Handler, error) {
	if !h.finalized.CompareAndSwap(false, true) {
		return nil, ErrHostFinalized
	}
	app, err := h.assemble()
	if err != nil {
		return nil, err
	}
	return app.router, nil
}

// declare guards the Accumulating phase.
func (h *Host) declare() {
	if h.finalized.Load() {
		panic(ErrHostFinalized)
	}
}
