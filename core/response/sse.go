package response

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/mlaily/falco/core/handler"
)

type sseConfig struct {
	eventName   string
	eventID     string
	idGen       func(any) string
	reconnectMS int
	keepAlive   time.Duration
}

// EventOption configures an SSE response.
type EventOption func(*sseConfig)

// WithEventName sets the event field on every emitted event.
func WithEventName(name string) EventOption {
	return func(c *sseConfig) { c.eventName = name }
}

// WithEventID sets a fixed id field on every emitted event.
func WithEventID(id string) EventOption {
	return func(c *sseConfig) { c.eventID = id }
}

// WithEventIDGenerator derives the id field from each event's payload.
func WithEventIDGenerator(fn func(data any) string) EventOption {
	return func(c *sseConfig) { c.idGen = fn }
}

// WithReconnectTime advertises the client retry interval in milliseconds.
func WithReconnectTime(milliseconds int) EventOption {
	return func(c *sseConfig) { c.reconnectMS = milliseconds }
}

// WithKeepAlive sets the comment-ping interval for idle streams. Zero
// disables keep-alive pings.
func WithKeepAlive(interval time.Duration) EventOption {
	return func(c *sseConfig) { c.keepAlive = interval }
}

// SSE streams the channel's items as server-sent events. String and []byte
// payloads are sent verbatim; anything else is JSON-encoded. The stream
// ends when the channel closes or the request is canceled. Idle streams
// emit a comment ping every 30 seconds unless configured otherwise.
func SSE(events <-chan any, opts ...EventOption) handler.Handler {
	cfg := sseConfig{keepAlive: 30 * time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx handler.Context) error {
		w := ctx.ResponseWriter()
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return nil
		}

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("X-Accel-Buffering", "no")
		if cfg.reconnectMS > 0 {
			h.Set("Retry", strconv.Itoa(cfg.reconnectMS))
		}
		if err := ctx.Complete(nil); err != nil {
			return err
		}

		fmt.Fprint(w, ": connected\n\n")
		flusher.Flush()

		var keepAliveCh <-chan time.Time
		var ticker *time.Ticker
		if cfg.keepAlive > 0 {
			ticker = time.NewTicker(cfg.keepAlive)
			keepAliveCh = ticker.C
			defer ticker.Stop()
		}

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-keepAliveCh:
				if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
					return nil
				}
				flusher.Flush()
			case data, ok := <-events:
				if !ok {
					return nil
				}
				if ticker != nil {
					ticker.Reset(cfg.keepAlive)
				}
				if err := writeEvent(w, cfg, data); err != nil {
					return nil
				}
				flusher.Flush()
			}
		}
	}
}

func writeEvent(w io.Writer, cfg sseConfig, data any) error {
	if cfg.eventName != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", cfg.eventName); err != nil {
			return err
		}
	}

	id := cfg.eventID
	if cfg.idGen != nil {
		id = cfg.idGen(data)
	}
	if id != "" {
		if _, err := fmt.Fprintf(w, "id: %s\n", id); err != nil {
			return err
		}
	}

	var payload string
	switch v := data.(type) {
	case string:
		payload = v
	case []byte:
		payload = string(v)
	default:
		b, err := json.Marshal(data)
		if err != nil {
			return err
		}
		payload = string(b)
	}

	_, err := fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}
