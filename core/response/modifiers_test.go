package response_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaily/falco/core/handler"
	"github.com/mlaily/falco/core/response"
)

func TestWithHeaders_FirstWriteWins(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	response.WithHeaders(map[string]string{"X-Version": "one"})(ctx)
	response.WithHeaders(map[string]string{"X-Version": "two"})(ctx)

	assert.Equal(t, "one", rec.Header().Get("X-Version"))
	assert.Len(t, rec.Header().Values("X-Version"), 1)
}

func TestWithHeaders_Idempotent(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	m := response.WithHeaders(map[string]string{"X-Trace": "abc"})
	m(ctx)
	m(ctx)

	assert.Len(t, rec.Header().Values("X-Trace"), 1)
}

func TestWithStatus_Overwrites(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext(t)

	response.WithStatus(http.StatusAccepted)(ctx)
	response.WithStatus(http.StatusConflict)(ctx)

	assert.Equal(t, http.StatusConflict, ctx.Status())
}

func TestWithCookie_Appends(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	response.WithCookie(&http.Cookie{Name: "a", Value: "1"})(ctx)
	response.WithCookie(&http.Cookie{Name: "b", Value: "2"})(ctx)

	cookies := rec.Header().Values("Set-Cookie")
	require.Len(t, cookies, 2)
	assert.Contains(t, cookies[0], "a=1")
	assert.Contains(t, cookies[1], "b=2")
}

func TestWithContentType_Overwrites(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	response.WithContentType("text/csv")(ctx)
	response.WithContentType("application/xml")(ctx)

	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
}

func TestWithCache(t *testing.T) {
	t.Parallel()

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()

		ctx, rec := newTestContext(t)
		response.WithCache(time.Minute)(ctx)
		assert.Equal(t, "public, max-age=60", rec.Header().Get("Cache-Control"))
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		ctx, rec := newTestContext(t)
		response.WithCache(0)(ctx)
		assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
	})
}

func TestComposedModifiersWithTerminal(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	h := handler.Compose(
		response.WithStatus(http.StatusCreated),
		response.WithHeaders(map[string]string{"Location": "/things/1"}),
		response.WithCookie(&http.Cookie{Name: "session", Value: "xyz"}),
	).Then(response.JSON(map[string]int{"id": 1}))

	require.NoError(t, h(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/things/1", rec.Header().Get("Location"))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "session=xyz")
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}
