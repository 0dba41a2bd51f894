package response

import (
	"net/http"

	"github.com/mlaily/falco/core/handler"
)

// Redirect creates a 302 Found (temporary redirect) response with an empty
// body. This is the most common redirect type.
func Redirect(url string) handler.Handler {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectPermanent creates a 301 Moved Permanently response.
// Use this when a resource has permanently moved to a new location.
func RedirectPermanent(url string) handler.Handler {
	return RedirectWithStatus(url, http.StatusMovedPermanently)
}

// RedirectSeeOther creates a 303 See Other response.
// This is useful after a POST request to redirect to a GET request.
func RedirectSeeOther(url string) handler.Handler {
	return RedirectWithStatus(url, http.StatusSeeOther)
}

// RedirectTemporary creates a 307 Temporary Redirect response.
// Unlike 302, this preserves the request method (e.g., POST remains POST).
func RedirectTemporary(url string) handler.Handler {
	return RedirectWithStatus(url, http.StatusTemporaryRedirect)
}

// RedirectPermanentPreserve creates a 308 Permanent Redirect response.
// Like 301 but preserves the request method.
func RedirectPermanentPreserve(url string) handler.Handler {
	return RedirectWithStatus(url, http.StatusPermanentRedirect)
}

// RedirectWithStatus creates a redirect with a custom status code.
// Codes outside the 3xx range fall back to 302 Found.
func RedirectWithStatus(url string, status int) handler.Handler {
	return func(ctx handler.Context) error {
		if status < 300 || status >= 400 {
			status = http.StatusFound
		}
		ctx.ResponseWriter().Header().Set("Location", url)
		ctx.SetStatus(status)
		return ctx.Complete(nil)
	}
}
