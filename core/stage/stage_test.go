package stage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlaily/falco/core/stage"
)

func TestFinalize_DeclarationOrder(t *testing.T) {
	t.Parallel()

	acc := stage.Empty[[]string]().
		Append(func(b []string) []string { return append(b, "first") }).
		Append(func(b []string) []string { return append(b, "second") }).
		Append(func(b []string) []string { return append(b, "third") })

	assert.Equal(t, []string{"first", "second", "third"}, acc.Finalize(nil))
}

func TestFinalize_EmptyIsIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, stage.Empty[int]().Finalize(42))

	var zero stage.Accumulator[int]
	assert.Equal(t, 42, zero.Finalize(42))
}

func TestAppendIf_FalsePredicateIsIdentity(t *testing.T) {
	t.Parallel()

	acc := stage.Empty[int]().
		Append(func(n int) int { return n + 1 }).
		AppendIf(func(n int) bool { return false }, func(n int) int { return n * 100 }).
		Append(func(n int) int { return n + 1 })

	assert.Equal(t, 2, acc.Finalize(0))
	assert.Equal(t, 3, acc.Len(), "skipped stages still count as declared")
}

func TestAppendIf_PredicateSeesPrecedingStages(t *testing.T) {
	t.Parallel()

	var seen int
	acc := stage.Empty[int]().
		Append(func(n int) int { return n + 10 }).
		AppendIf(
			func(n int) bool { seen = n; return n > 5 },
			func(n int) int { return n * 2 },
		)

	assert.Equal(t, 20, acc.Finalize(0))
	assert.Equal(t, 10, seen, "predicate runs against the folded value, not the initial one")
}

func TestAppendIfNot(t *testing.T) {
	t.Parallel()

	acc := stage.Empty[int]().
		AppendIfNot(func(n int) bool { return true }, func(n int) int { return n + 100 }).
		AppendIfNot(func(n int) bool { return false }, func(n int) int { return n + 1 })

	assert.Equal(t, 1, acc.Finalize(0))
}

func TestAppend_NilPredicateMeansUnconditional(t *testing.T) {
	t.Parallel()

	acc := stage.Empty[int]().AppendIf(nil, func(n int) int { return n + 1 })
	assert.Equal(t, 1, acc.Finalize(0))
}

func TestAppend_PersistentValue(t *testing.T) {
	t.Parallel()

	base := stage.Empty[[]string]().Append(func(b []string) []string { return append(b, "base") })
	left := base.Append(func(b []string) []string { return append(b, "left") })
	right := base.Append(func(b []string) []string { return append(b, "right") })

	assert.Equal(t, []string{"base"}, base.Finalize(nil))
	assert.Equal(t, []string{"base", "left"}, left.Finalize(nil))
	assert.Equal(t, []string{"base", "right"}, right.Finalize(nil))
}
