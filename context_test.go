package aocla

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextShowTruncates(t *testing.T) {
	var out bytes.Buffer
	ctx := New(WithOutput(&out))
	for i := 0; i < stackShowMax+3; i++ {
		ctx.push(NewInt(i, 1))
	}
	ctx.Show(&out)
	assert.Contains(t, out.String(), "more objects")
}

func TestContextPushExported(t *testing.T) {
	ctx := New()
	ctx.Push(NewInt(7, 1))
	require.Len(t, ctx.Stack, 1)
	assert.Equal(t, 7, ctx.Stack[0].Int())
}

func TestContextDefineReplacesBinding(t *testing.T) {
	ctx := New()
	first := mustParse(t, "[1]")
	second := mustParse(t, "[2]")
	ctx.Define("f", first)
	ctx.Define("f", second)

	proc := ctx.Lookup("f")
	require.NotNil(t, proc)
	assert.Same(t, second, proc.Body)
}

func TestContextErrorStringAndClear(t *testing.T) {
	ctx := New()
	program, err := ParseProgram([]byte("nosuchword"))
	require.NoError(t, err)
	require.Error(t, ctx.Eval(program))

	assert.NotEmpty(t, ctx.ErrorString())
	ctx.ClearError()
	assert.Empty(t, ctx.ErrorString())
}

func TestContextClose(t *testing.T) {
	var out bytes.Buffer
	ctx := New(WithOutput(&out))
	ctx.push(NewInt(1, 1))
	assert.NoError(t, ctx.Close())
}

func TestContextDump(t *testing.T) {
	var out bytes.Buffer
	ctx := New()
	ctx.push(NewInt(42, 1))
	ctx.Dump(&out)
	assert.Contains(t, out.String(), "# Stack")
	assert.Contains(t, out.String(), "# Procedures")
}
