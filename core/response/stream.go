package response

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/mlaily/falco/core/handler"
)

// Stream completes the response headers immediately and hands the body
// writer to fn for chunked output. The writer must support flushing;
// otherwise a plain 500 is written. Errors from fn propagate, but by then
// the status line is on the wire, so error handlers cannot rewrite it.
func Stream(fn func(w io.Writer) error) handler.Handler {
	return func(ctx handler.Context) error {
		w := ctx.ResponseWriter()
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return nil
		}

		h := w.Header()
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		if err := ctx.Complete(nil); err != nil {
			return err
		}

		if err := fn(w); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}
}

// StreamJSON streams the channel's items as newline-delimited JSON
// (application/x-ndjson), one line per item, flushed as they arrive.
// Streaming stops when the channel closes or the request is canceled.
func StreamJSON(items <-chan any) handler.Handler {
	return func(ctx handler.Context) error {
		w := ctx.ResponseWriter()
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return nil
		}

		h := w.Header()
		h.Set("Content-Type", "application/x-ndjson")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("X-Content-Type-Options", "nosniff")
		if err := ctx.Complete(nil); err != nil {
			return err
		}

		enc := json.NewEncoder(w)
		for {
			select {
			case <-ctx.Done():
				return nil
			case item, ok := <-items:
				if !ok {
					return nil
				}
				if err := enc.Encode(item); err != nil {
					// Mid-stream failure; the client sees a truncated body.
					return nil
				}
				flusher.Flush()
			}
		}
	}
}
