package response_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaily/falco/core/response"
)

func TestTempl(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>hello</h1>")
		return err
	})

	require.NoError(t, response.Templ(component)(ctx))

	assert.Equal(t, "<h1>hello</h1>", rec.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTemplWithStatus(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>not found</h1>")
		return err
	})

	require.NoError(t, response.TemplWithStatus(component, http.StatusNotFound)(ctx))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "<h1>not found</h1>", rec.Body.String())
}

func TestTempl_RenderErrorLeavesResponseIncomplete(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	boom := errors.New("render failed")
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return boom
	})

	err := response.Templ(component)(ctx)

	require.ErrorIs(t, err, boom)
	assert.False(t, ctx.Completed())
	assert.Empty(t, rec.Body.String())
}
