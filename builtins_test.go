package aocla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalErr(t *testing.T, src string) error {
	t.Helper()
	ctx := New()
	program, err := ParseProgram([]byte(src))
	require.NoError(t, err)
	return ctx.Eval(program)
}

func TestBiCompare(t *testing.T) {
	ctx := evalProgram(t, "3 5 <")
	assert.Equal(t, "#t", topString(t, ctx))

	ctx = evalProgram(t, "3 3 ==")
	assert.Equal(t, "#t", topString(t, ctx))

	err := evalErr(t, "1 \"x\" <")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Type mismatch in comparison")
}

func TestBiSort(t *testing.T) {
	ctx := evalProgram(t, "[3 1 2] sort")
	assert.Equal(t, "[1 2 3]", topString(t, ctx))
}

func TestBiSortTypeMismatch(t *testing.T) {
	err := evalErr(t, `[1 "x"] sort`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Type mismatch in comparison")
}

func TestBiDefineOverwritesNative(t *testing.T) {
	ctx := New()
	// redefine the native "+" as a user procedure that drops both operands
	// and pushes 0.
	program, err := ParseProgram([]byte("[drop drop 0] '+ define"))
	require.NoError(t, err)
	require.NoError(t, ctx.Eval(program))

	proc := ctx.Lookup("+")
	require.NotNil(t, proc)
	assert.Nil(t, proc.Native)
	assert.NotNil(t, proc.Body)
}

func TestBiIfElse(t *testing.T) {
	ctx := evalProgram(t, "[#t] [1] [2] if-else")
	assert.Equal(t, "1", topString(t, ctx))

	ctx = evalProgram(t, "[#f] [1] [2] if-else")
	assert.Equal(t, "2", topString(t, ctx))

	ctx = evalProgram(t, "[#f] [99] if")
	assert.Empty(t, ctx.Stack)
}

func TestBiLength(t *testing.T) {
	ctx := evalProgram(t, "[1 2 3] #")
	assert.Equal(t, "3", topString(t, ctx))

	ctx = evalProgram(t, `"hello" #`)
	assert.Equal(t, "5", topString(t, ctx))
}

func TestBiAppend(t *testing.T) {
	ctx := evalProgram(t, "[1 2] 3 <-")
	assert.Equal(t, "[1 2 3]", topString(t, ctx))
}

func TestBiToTuple(t *testing.T) {
	ctx := evalProgram(t, "[x y] to-tuple")
	require.Len(t, ctx.Stack, 1)
	assert.Equal(t, Tuple, ctx.Stack[0].Kind())
}

func TestBiAppendSharedListNotMutated(t *testing.T) {
	// EnsureExclusive must copy a shared list rather than mutate the
	// caller's other reference.
	ctx := New()
	shared, err := Parse([]byte("[1 2]"))
	require.NoError(t, err)
	Retain(shared)
	ctx.push(shared)
	ctx.push(NewInt(3, 1))
	require.NoError(t, ctx.Eval(mustParse(t, "[<-]")))

	result := ctx.Stack[len(ctx.Stack)-1]
	assert.Equal(t, "[1 2 3]", Sprint(result, true, false))
	assert.Equal(t, "[1 2]", Sprint(shared, true, false))
}
