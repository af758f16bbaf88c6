package aocla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapWordsParse(t *testing.T) {
	ctx := New()
	for _, w := range bootstrapSource {
		proc := ctx.Lookup(w.name)
		require.NotNil(t, proc, "word %q should be installed", w.name)
		assert.Nil(t, proc.Native, "word %q should be a body procedure", w.name)
		assert.NotNil(t, proc.Body)
	}
}

func TestBootstrapDup(t *testing.T) {
	ctx := evalProgram(t, "5 dup +")
	assert.Equal(t, "10", topString(t, ctx))
}

func TestBootstrapSwap(t *testing.T) {
	ctx := evalProgram(t, "1 2 swap")
	require.Len(t, ctx.Stack, 2)
	assert.Equal(t, "2", Sprint(ctx.Stack[0], true, false))
	assert.Equal(t, "1", Sprint(ctx.Stack[1], true, false))
}

func TestBootstrapDrop(t *testing.T) {
	ctx := evalProgram(t, "1 2 drop")
	require.Len(t, ctx.Stack, 1)
	assert.Equal(t, "1", topString(t, ctx))
}

func TestBootstrapHead(t *testing.T) {
	ctx := evalProgram(t, "[7 8 9] head")
	assert.Equal(t, "7", topString(t, ctx))
}

func TestBootstrapEach(t *testing.T) {
	ctx := evalProgram(t, "[1 2 3] 0 (sum) [(x) $x $sum + (sum)] each $sum")
	assert.Equal(t, "6", topString(t, ctx))
}

func TestBootstrapTailFailsOnUndefinedForeach(t *testing.T) {
	err := evalErr(t, "[1 2 3] tail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "foreach")
}
