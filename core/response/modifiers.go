package response

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mlaily/falco/core/handler"
)

// WithHeaders sets each header only if it is not already present on the
// response. First writer wins per header name, so applying the modifier
// twice with different values keeps the first value.
func WithHeaders(headers map[string]string) handler.Modifier {
	return func(ctx handler.Context) {
		h := ctx.ResponseWriter().Header()
		for k, v := range headers {
			if h.Get(k) == "" {
				h.Set(k, v)
			}
		}
	}
}

// WithStatus unconditionally overwrites the pending status code.
func WithStatus(code int) handler.Modifier {
	return func(ctx handler.Context) {
		ctx.SetStatus(code)
	}
}

// WithContentType overwrites the Content-Type header.
func WithContentType(contentType string) handler.Modifier {
	return func(ctx handler.Context) {
		ctx.ResponseWriter().Header().Set("Content-Type", contentType)
	}
}

// WithCookie appends a Set-Cookie entry to the response. Multiple
// applications append rather than replace, permitting several cookies on
// one response.
func WithCookie(cookie *http.Cookie) handler.Modifier {
	return func(ctx handler.Context) {
		if cookie != nil {
			http.SetCookie(ctx.ResponseWriter(), cookie)
		}
	}
}

// WithCache sets cache control headers. If maxAge > 0, the response is
// cacheable for that duration; otherwise caching is disabled outright.
func WithCache(maxAge time.Duration) handler.Modifier {
	return func(ctx handler.Context) {
		h := ctx.ResponseWriter().Header()
		if maxAge > 0 {
			h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
			h.Set("Expires", time.Now().Add(maxAge).Format(http.TimeFormat))
		} else {
			h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")
		}
	}
}
