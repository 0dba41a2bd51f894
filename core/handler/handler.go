package handler

import "errors"

// ErrAlreadyCompleted is returned when a terminal action runs against a
// Context whose response has already been completed. Composing two terminal
// handlers is the usual cause.
var ErrAlreadyCompleted = errors.New("handler: response already completed")

// Handler is a complete request-handling unit. It performs exactly one
// terminal action (body write, redirect, or explicit empty flush) and leaves
// the Context in the completed state. Errors from the underlying writer or
// from external collaborators propagate unchanged.
type Handler func(ctx Context) error

// Modifier mutates response metadata on the Context: status code, headers,
// cookies. It must not write a body or complete the response.
type Modifier func(ctx Context)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware func(next Handler) Handler

// ErrorHandler handles errors surfaced by a handler chain.
type ErrorHandler func(ctx Context, err error)

// Compose merges modifiers into one, applied left to right. Each modifier
// observes the Context as mutated by all previous ones.
func Compose(mods ...Modifier) Modifier {
	return func(ctx Context) {
		for _, m := range mods {
			m(ctx)
		}
	}
}

// Then attaches a terminal handler to the modifier, producing a Handler that
// applies the modifier first.
func (m Modifier) Then(h Handler) Handler {
	return func(ctx Context) error {
		m(ctx)
		return h(ctx)
	}
}

// Chain builds a single handler from a middleware stack and endpoint.
func Chain(middlewares []Middleware, endpoint Handler) Handler {
	// Wrap in reverse order so the first middleware runs first.
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
