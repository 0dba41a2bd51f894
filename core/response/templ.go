package response

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mlaily/falco/core/handler"
)

// Templ creates a text/html response by rendering the markup component.
// The component is rendered with the request's context, so it can read
// request-scoped values. Rendering goes to a buffer first; a rendering
// failure leaves the response untouched and propagates, rather than
// truncating output mid-body.
func Templ(component templ.Component) handler.Handler {
	return TemplWithStatus(component, 0)
}

// TemplWithStatus is Templ with a custom status code. Useful for error pages
// that still render through markup components.
func TemplWithStatus(component templ.Component, status int) handler.Handler {
	return func(ctx handler.Context) error {
		var buf bytes.Buffer
		if err := component.Render(ctx, &buf); err != nil {
			return err
		}

		h := ctx.ResponseWriter().Header()
		h.Set("Content-Type", "text/html; charset=utf-8")
		h.Set("Content-Length", strconv.Itoa(buf.Len()))
		if status != 0 {
			ctx.SetStatus(status)
		}
		return ctx.Complete(buf.Bytes())
	}
}
