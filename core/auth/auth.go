// Package auth defines the authentication collaborator consumed by the
// response combinators, plus a cookie-ticket implementation suitable for
// session-style sign-in without an external identity provider.
//
// The combinators keep the side-effect ordering explicit: the authentication
// state mutation completes first, and only then is the redirect issued, so
// authentication cookies always ride on the redirect response.
package auth

import (
	"net/http"

	"github.com/mlaily/falco/core/handler"
	"github.com/mlaily/falco/core/response"
)

// Principal is the authenticated identity carried by a ticket.
type Principal struct {
	Subject string   `json:"sub"`
	Name    string   `json:"name,omitempty"`
	Roles   []string `json:"roles,omitempty"`
}

// Properties parametrizes a challenge.
type Properties struct {
	// RedirectURL is where the client should be sent to authenticate.
	RedirectURL string
}

// Authenticator mutates authentication state as a response side effect.
// Implementations may set cookies or headers on the Context. Challenge may
// complete the response itself (e.g. an external scheme issuing its own
// redirect); if it does not, the calling combinator finishes the exchange.
type Authenticator interface {
	SignIn(ctx handler.Context, scheme string, principal Principal) error
	SignOut(ctx handler.Context, scheme string) error
	Challenge(ctx handler.Context, scheme string, props Properties) error
}

// SignInAndRedirect signs the principal in under the scheme, then issues a
// temporary redirect. The sign-in side effect must succeed before the
// redirect so its cookies are part of the redirect response; a sign-in
// failure propagates and no redirect is written.
func SignInAndRedirect(a Authenticator, scheme string, p Principal, url string) handler.Handler {
	return func(ctx handler.Context) error {
		if err := a.SignIn(ctx, scheme, p); err != nil {
			return err
		}
		return response.Redirect(url)(ctx)
	}
}

// SignOutAndRedirect clears the scheme's authentication state, then issues
// a temporary redirect.
func SignOutAndRedirect(a Authenticator, scheme string, url string) handler.Handler {
	return func(ctx handler.Context) error {
		if err := a.SignOut(ctx, scheme); err != nil {
			return err
		}
		return response.Redirect(url)(ctx)
	}
}

// Challenge asks the scheme to challenge the client. Completion is the
// authenticator's prerogative; if it leaves the response open, the
// combinator redirects to the challenge URL when one is set and otherwise
// completes an empty 401.
func Challenge(a Authenticator, scheme string, props Properties) handler.Handler {
	return func(ctx handler.Context) error {
		if err := a.Challenge(ctx, scheme, props); err != nil {
			return err
		}
		if ctx.Completed() {
			return nil
		}
		if props.RedirectURL != "" {
			return response.Redirect(props.RedirectURL)(ctx)
		}
		return response.Status(http.StatusUnauthorized)(ctx)
	}
}
