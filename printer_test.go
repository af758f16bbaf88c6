package aocla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprintPlain(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"-3", "-3"},
		{"#t", "#t"},
		{"#f", "#f"},
		{"foo", "foo"},
		{"[1 2 3]", "1 2 3"},
		{"(x y)", "x y"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			v, err := Parse([]byte(tc.src))
			assert.NoError(t, err)
			assert.Equal(t, tc.want, Sprint(v, false, false))
		})
	}
}

func TestSprintRepr(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{`"hi"`, `"hi"`},
		{"[1 2 3]", "[1 2 3]"},
		{"(x y)", "(x y)"},
		{"[[1] [2]]", "[[1] [2]]"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			v, err := Parse([]byte(tc.src))
			assert.NoError(t, err)
			assert.Equal(t, tc.want, Sprint(v, true, false))
		})
	}
}

func TestSprintStringEscaping(t *testing.T) {
	v := NewString([]byte("a\nb\tc\"d"), 1)
	assert.Equal(t, `"a\nb\tc\"d"`, Sprint(v, true, false))
}

func TestSprintStringNonASCIIBytePreserved(t *testing.T) {
	// a String is an explicit-length byte sequence, not restricted to
	// ASCII; repr mode must reproduce each byte verbatim rather than
	// re-encoding it as UTF-8.
	v := NewString([]byte{'a', 0xC8, 'b'}, 1)
	repr := Sprint(v, true, false)
	assert.Equal(t, []byte{'"', 'a', 0xC8, 'b', '"'}, []byte(repr))

	v2, err := Parse([]byte(repr))
	require.NoError(t, err)
	assert.True(t, Equal(v, v2))
}

func TestSprintColor(t *testing.T) {
	v := NewInt(1, 1)
	colored := Sprint(v, true, true)
	assert.Contains(t, colored, colorInt)
	assert.Contains(t, colored, colorReset)
	assert.NotEqual(t, Sprint(v, true, false), colored)
}
