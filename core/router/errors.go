package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mlaily/falco/core/handler"
)

var (
	// ErrNotFound maps to a 404 in the default error handler. Handlers
	// return it for resources that matched a route but do not exist.
	ErrNotFound = errors.New("not found")
)

// statusCode lets errors carry a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler converts chain errors into a minimal error response.
func defaultErrorHandler(ctx handler.Context, err error) {
	w := ctx.ResponseWriter()

	// Never double-write: a completed response cannot carry an error page.
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}
	if ctx.Completed() {
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	default:
		var sc statusCode
		if errors.As(err, &sc) {
			status = sc.StatusCode()
		}
	}

	http.Error(w, http.StatusText(status), status)
}

// PanicError gives external error handlers access to recovered panics:
// the original panic value and the stack captured at the panic point.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any { return e.value }

func (e *panicError) Stack() []byte { return e.stack }

// Unwrap allows errors.Is/As against panics whose value is an error.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
