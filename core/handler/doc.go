// Package handler defines the request-processing contracts of the framework:
// the per-request Context, terminal Handlers, non-terminal response Modifiers,
// and the Middleware type used to wrap handlers with cross-cutting behavior.
//
// A Modifier mutates response metadata (status code, headers, cookies) and
// never writes a body. A Handler performs exactly one terminal action that
// completes the response. Modifiers compose left to right and attach to a
// Handler via Then:
//
//	h := handler.Compose(
//		response.WithStatus(http.StatusCreated),
//		response.WithHeaders(map[string]string{"X-Request-Source": "api"}),
//	).Then(response.PlainText("created"))
//
// Completing an already-completed Context fails with ErrAlreadyCompleted,
// which makes accidental composition of two terminal handlers a detected
// error rather than silent header corruption.
package handler
