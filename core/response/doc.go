// Package response is the combinator catalog for building HTTP responses.
// It provides terminal handlers (plain text, HTML, JSON, binary, attachment,
// redirect, debug echo) and non-terminal modifiers (status, headers, cookies,
// cache control) that compose into complete request handlers.
//
// Modifiers apply in declaration order. The header-setting modifier is
// first-write-wins: a header already present on the response is left alone,
// so repeated application is idempotent. Terminal handlers complete the
// response exactly once; running a second terminal handler on the same
// request fails with handler.ErrAlreadyCompleted.
//
// Basic usage:
//
//	func hello(ctx handler.Context) error {
//		return response.PlainText("Hello, World!")(ctx)
//	}
//
//	func created(ctx handler.Context) error {
//		h := handler.Compose(
//			response.WithStatus(http.StatusCreated),
//			response.WithHeaders(map[string]string{"Location": "/things/42"}),
//		).Then(response.JSON(map[string]any{"id": 42}))
//		return h(ctx)
//	}
package response
