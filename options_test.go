package aocla

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithOutputReceivesPrintedValues(t *testing.T) {
	var out bytes.Buffer
	ctx := New(WithOutput(&out))
	require.NoError(t, ctx.Eval(mustParse(t, `["hi" print]`)))
	assert.Equal(t, "hi\n", out.String())
}

func TestWithMaxDepthBoundsRecursion(t *testing.T) {
	ctx := New(WithMaxDepth(3))
	ctx.Define("recurse", mustParse(t, "[recurse]"))
	err := ctx.Eval(mustParse(t, "[recurse]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Call stack depth exceeded")
}

func TestWithLogfReceivesTrace(t *testing.T) {
	var marks []string
	ctx := New(WithLogf(func(mark, mess string, args ...interface{}) {
		marks = append(marks, mark)
	}))
	require.NoError(t, ctx.Eval(mustParse(t, "[1 2 +]")))
	assert.NotEmpty(t, marks)
}

func TestOptionsFlattening(t *testing.T) {
	var out bytes.Buffer
	combined := Options(WithOutput(&out), Options(WithColor(true)))
	ctx := New(combined)
	assert.True(t, ctx.color)
}
