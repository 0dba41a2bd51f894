package handler

import (
	"context"
	"net/http"
	"time"
)

// Context defines the contract for request contexts in the framework.
// It carries one in-flight request/response exchange: request data in,
// response metadata and body out. A Context is owned by exactly one request
// task at a time and is never shared between goroutines.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)

	// Status returns the pending response status code (0 until set).
	Status() int
	// SetStatus overwrites the pending status code. No range validation is
	// performed; callers are responsible for passing sensible values.
	SetStatus(code int)

	// Completed reports whether the response has been completed.
	Completed() bool
	// Complete flushes the pending status and headers, writes body (which may
	// be empty), and marks the response complete. A second call returns
	// ErrAlreadyCompleted without touching the response.
	Complete(body []byte) error
}

// baseContext is the default Context implementation. Standard context
// methods delegate to the request's context.
type baseContext struct {
	w         http.ResponseWriter
	r         *http.Request
	params    map[string]string
	status    int
	completed bool
}

// NewContext creates a Context over the given response writer and request.
// The params map holds route parameters extracted by the router; nil is fine.
func NewContext(w http.ResponseWriter, r *http.Request, params map[string]string) Context {
	return &baseContext{w: w, r: r, params: params}
}

// Deadline delegates to the request's context.
func (c *baseContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request's context.
func (c *baseContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request's context.
func (c *baseContext) Err() error {
	return c.r.Context().Err()
}

// Value delegates to the request's context.
func (c *baseContext) Value(key any) any {
	return c.r.Context().Value(key)
}

func (c *baseContext) Request() *http.Request              { return c.r }
func (c *baseContext) ResponseWriter() http.ResponseWriter { return c.w }

// Param returns the route parameter for key. Explicit params win; otherwise
// it falls back to the wildcard values bound by the router's matcher.
func (c *baseContext) Param(key string) string {
	if v, ok := c.params[key]; ok {
		return v
	}
	return c.r.PathValue(key)
}

// SetValue stores a value in the request's context, retrievable via Value.
func (c *baseContext) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}

func (c *baseContext) Status() int { return c.status }

func (c *baseContext) SetStatus(code int) {
	if c.completed {
		return
	}
	c.status = code
}

func (c *baseContext) Completed() bool { return c.completed }

func (c *baseContext) Complete(body []byte) error {
	if c.completed {
		return ErrAlreadyCompleted
	}
	c.completed = true

	if c.status == 0 {
		c.status = http.StatusOK
	}
	c.w.WriteHeader(c.status)

	if len(body) > 0 {
		if _, err := c.w.Write(body); err != nil {
			return err
		}
	}
	return nil
}
