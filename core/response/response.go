package response

import (
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/text/encoding"

	"github.com/mlaily/falco/core/handler"
)

// Empty flushes pending status and headers and completes the response with
// no body.
func Empty() handler.Handler {
	return func(ctx handler.Context) error {
		return ctx.Complete(nil)
	}
}

// PlainText creates a text/plain response with the default 200 OK status.
func PlainText(content string) handler.Handler {
	return func(ctx handler.Context) error {
		ctx.ResponseWriter().Header().Set("Content-Type", "text/plain; charset=utf-8")
		s := content
		return String(nil, &s)(ctx)
	}
}

// HTMLString creates a text/html response from a prerendered markup string.
func HTMLString(content string) handler.Handler {
	return func(ctx handler.Context) error {
		ctx.ResponseWriter().Header().Set("Content-Type", "text/html; charset=utf-8")
		s := content
		return String(nil, &s)(ctx)
	}
}

// String writes the text as the response body using the given character
// encoding. A nil encoding writes the text as UTF-8. A nil text completes
// the response with an empty body and no error; this mirrors the historic
// tolerance for absent bodies rather than treating them as a failure.
// No Content-Type is set; compose with WithContentType or use the typed
// variants (PlainText, HTMLString).
func String(enc encoding.Encoding, content *string) handler.Handler {
	return func(ctx handler.Context) error {
		if content == nil {
			return ctx.Complete(nil)
		}

		b := []byte(*content)
		if enc != nil {
			var err error
			b, err = enc.NewEncoder().Bytes(b)
			if err != nil {
				return fmt.Errorf("response: encode string body: %w", err)
			}
		}

		ctx.ResponseWriter().Header().Set("Content-Length", strconv.Itoa(len(b)))
		return ctx.Complete(b)
	}
}

// Binary writes the byte buffer as the response body with an inline content
// disposition. Caller headers are applied first-write-wins after the
// disposition, so they cannot clobber Content-Type or Content-Disposition.
// Content-Length is always the exact buffer length.
func Binary(contentType string, headers map[string]string, body []byte) handler.Handler {
	return binary(contentType, "inline", headers, body)
}

// Attachment is Binary with an attachment content disposition. A non-empty
// filename is quoted into the disposition; an empty filename produces the
// bare `attachment` disposition.
func Attachment(filename, contentType string, headers map[string]string, body []byte) handler.Handler {
	disposition := "attachment"
	if filename != "" {
		disposition = fmt.Sprintf("attachment; filename=%q", filename)
	}
	return binary(contentType, disposition, headers, body)
}

func binary(contentType, disposition string, headers map[string]string, body []byte) handler.Handler {
	return func(ctx handler.Context) error {
		h := ctx.ResponseWriter().Header()
		h.Set("Content-Type", contentType)
		h.Set("Content-Disposition", disposition)
		WithHeaders(headers)(ctx)
		h.Set("Content-Length", strconv.Itoa(len(body)))
		return ctx.Complete(body)
	}
}

// Status completes an empty response with the given status code.
func Status(code int) handler.Handler {
	return func(ctx handler.Context) error {
		ctx.SetStatus(code)
		return ctx.Complete(nil)
	}
}

// NoContent completes a 204 No Content response.
func NoContent() handler.Handler {
	return Status(http.StatusNoContent)
}
