// Package router dispatches requests to registered endpoint handlers.
//
// The router owns the request pipeline for one server: it builds the
// per-request Context, runs the declared middleware chain in order, and ends
// the chain in either endpoint dispatch or the configured fallback handler.
// Route-pattern matching itself is delegated to net/http.ServeMux, so
// patterns follow its syntax, including {name} wildcards readable through
// Context.Param.
//
// Panics inside a handler chain are recovered and surfaced to the router's
// ErrorHandler as a PanicError carrying the panic value and stack.
package router
