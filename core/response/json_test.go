package response_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaily/falco/core/response"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	require.NoError(t, response.JSON(map[string]int{"a": 1})(ctx))

	assert.Equal(t, `{"a":1}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "7", rec.Header().Get("Content-Length"))
	assert.Equal(t, 200, rec.Code)
	assert.True(t, ctx.Completed())
}

func TestJSON_MarshalErrorLeavesResponseIncomplete(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	err := response.JSON(func() {})(ctx)

	require.Error(t, err)
	assert.False(t, ctx.Completed())
	assert.Empty(t, rec.Body.String())
}

func TestJSONIndent(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext(t)

	require.NoError(t, response.JSONIndent(map[string]int{"a": 1}, "", "  ")(ctx))

	assert.Equal(t, "{\n  \"a\": 1\n}", rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}
