package aocla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind Kind
	}{
		{"42", Int},
		{"-7", Int},
		{"#t", Bool},
		{"#f", Bool},
		{`"hello"`, String},
		{"foo", Symbol},
		{"[1 2 3]", List},
		{"(x y)", Tuple},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			v, err := Parse([]byte(tc.src))
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind())
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	// parse(print_repr(v)) == v, for everything but quoted forms, which
	// print without the quote marker and so don't round-trip identically.
	cases := []string{
		"42", "-7", "#t", "#f", `"hello"`, "foo", "[1 2 3]", "(x y)", "[[1] [2 3]]",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			v, err := Parse([]byte(src))
			require.NoError(t, err)
			repr := Sprint(v, true, false)
			v2, err := Parse([]byte(repr))
			require.NoError(t, err)
			assert.True(t, Equal(v, v2))
		})
	}
}

func TestParseIntOverflowWraps(t *testing.T) {
	// the manual digit-accumulation parser relies on Go's native int
	// wraparound rather than detecting overflow.
	big := "99999999999999999999999999999999999999"
	v, err := Parse([]byte(big))
	require.NoError(t, err)
	assert.Equal(t, Int, v.Kind())
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"[1 2",
		"(x",
		`"unterminated`,
		"#q",
		"(12)",
		"!",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			_, err := Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestParseErrorOnNonASCIILeadByte(t *testing.T) {
	// a lead byte that starts no token must be reported as the raw
	// offending byte, not re-encoded as multi-byte UTF-8.
	_, err := Parse([]byte{0xC8})
	require.Error(t, err)
	assert.Equal(t, string([]byte{0xC8}), err.(*ReadError).Offender)
}

func TestParseTrailingGarbage(t *testing.T) {
	_, err := Parse([]byte("1 2"))
	assert.Error(t, err)
}

func TestParseComments(t *testing.T) {
	v, err := Parse([]byte("// a leading comment\n42 // trailing\n"))
	require.NoError(t, err)
	assert.Equal(t, 42, v.Int())
}

func TestParseQuotedForms(t *testing.T) {
	v, err := Parse([]byte("'foo"))
	require.NoError(t, err)
	assert.Equal(t, Symbol, v.Kind())
	assert.True(t, v.Quoted())

	v, err = Parse([]byte("'(x y)"))
	require.NoError(t, err)
	assert.Equal(t, Tuple, v.Kind())
	assert.True(t, v.Quoted())
}

func TestParseStringEmbeddedNUL(t *testing.T) {
	v, err := Parse([]byte("\"a\x00b\""))
	require.NoError(t, err)
	assert.Equal(t, String, v.Kind())
	assert.Equal(t, []byte("a\x00b"), v.Bytes())
}

func TestParseProgramWraps(t *testing.T) {
	v, err := ParseProgram([]byte("1 2 +"))
	require.NoError(t, err)
	assert.Equal(t, List, v.Kind())
	assert.Len(t, v.Elems(), 3)
}
