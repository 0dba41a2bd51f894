// Command demo assembles a small site out of the host builder and the
// response combinators: a JSON endpoint, a rendered HTML page, cookie
// sign-in/sign-out, and a catch-all fallback.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/a-h/templ"

	"github.com/mlaily/falco/core/auth"
	"github.com/mlaily/falco/core/config"
	"github.com/mlaily/falco/core/handler"
	"github.com/mlaily/falco/core/host"
	"github.com/mlaily/falco/core/request"
	"github.com/mlaily/falco/core/response"
	"github.com/mlaily/falco/core/router"
	"github.com/mlaily/falco/middleware"
)

const authScheme = "session"

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("demo exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	tickets, err := auth.NewCookieTicket(cfg.AuthSecret)
	if err != nil {
		return err
	}

	isProd := cfg.Env == "production"

	return host.New(
		host.WithConfigSources(
			config.JSONFile("demo.json").Optional(),
			config.Env("DEMO_"),
			config.Args(os.Args[1:]),
		),
	).
		Use(middleware.RequestID()).
		UseIf(func(*router.Router) bool { return !isProd },
			middleware.Logging()).
		Endpoints(
			host.GetEndpoint("/", homePage(cfg.AppName)),
			host.GetEndpoint("/api/status", apiStatus(cfg)),
			host.PostEndpoint("/login", login(tickets)),
			host.PostEndpoint("/logout", auth.SignOutAndRedirect(tickets, authScheme, "/")),
			host.GetEndpoint("/me", whoami(tickets)),
		).
		Endpoints(debugEndpoints(cfg)...).
		NotFound(handler.Compose(
			response.WithStatus(http.StatusNotFound),
		).Then(response.PlainText("nothing here"))).
		Run(ctx)
}

func homePage(appName string) handler.Handler {
	page := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<!doctype html><title>%[1]s</title><h1>%[1]s</h1>", appName)
		return err
	})
	return response.Templ(page)
}

func apiStatus(cfg Config) handler.Handler {
	return func(ctx handler.Context) error {
		return response.JSON(map[string]any{
			"app": cfg.AppName,
			"env": cfg.Env,
		})(ctx)
	}
}

func login(tickets *auth.CookieTicket) handler.Handler {
	type loginForm struct {
		Name string `form:"name"`
	}
	return func(ctx handler.Context) error {
		var form loginForm
		if err := request.Form(ctx, &form); err != nil {
			return err
		}
		if form.Name == "" {
			return response.Status(http.StatusBadRequest)(ctx)
		}

		principal := auth.Principal{Subject: form.Name, Name: form.Name}
		return auth.SignInAndRedirect(tickets, authScheme, principal, "/me")(ctx)
	}
}

func whoami(tickets *auth.CookieTicket) handler.Handler {
	return func(ctx handler.Context) error {
		principal, err := tickets.Authenticate(ctx.Request(), authScheme)
		if err != nil {
			return auth.Challenge(tickets, authScheme, auth.Properties{RedirectURL: "/"})(ctx)
		}
		return response.JSON(principal)(ctx)
	}
}

func debugEndpoints(cfg Config) []host.Endpoint {
	if !cfg.DebugEcho {
		return nil
	}
	return []host.Endpoint{
		host.AnyEndpoint("/debug/echo", response.DebugRequest()),
	}
}
