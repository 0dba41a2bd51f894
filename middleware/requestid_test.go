package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaily/falco/core/handler"
	"github.com/mlaily/falco/core/response"
	"github.com/mlaily/falco/middleware"
)

func newTestContext(t *testing.T, opts ...func(*http.Request)) (handler.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	for _, opt := range opts {
		opt(req)
	}
	return handler.NewContext(rec, req, nil), rec
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	var captured string
	h := middleware.RequestID()(func(ctx handler.Context) error {
		id, ok := middleware.GetRequestID(ctx)
		require.True(t, ok)
		captured = id
		return response.Empty()(ctx)
	})
	require.NoError(t, h(ctx))

	_, err := uuid.Parse(captured)
	assert.NoError(t, err)
	assert.Equal(t, captured, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_UseExisting(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t, func(r *http.Request) {
		r.Header.Set("X-Request-ID", "incoming-id")
	})

	h := middleware.RequestIDWithConfig(middleware.RequestIDConfig{UseExisting: true})(
		response.Empty(),
	)
	require.NoError(t, h(ctx))

	assert.Equal(t, "incoming-id", rec.Header().Get("X-Request-ID"))
}

func TestRequestID_CustomGeneratorAndHeader(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	h := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		HeaderName: "X-Trace-ID",
		Generator:  func() string { return "fixed" },
	})(response.Empty())
	require.NoError(t, h(ctx))

	assert.Equal(t, "fixed", rec.Header().Get("X-Trace-ID"))
	assert.Empty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_Skip(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	h := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Skip: func(ctx handler.Context) bool { return true },
	})(response.Empty())
	require.NoError(t, h(ctx))

	assert.Empty(t, rec.Header().Get("X-Request-ID"))
	_, ok := middleware.GetRequestID(ctx)
	assert.False(t, ok)
}
