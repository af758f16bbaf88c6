package aocla

import (
	"fmt"
)

// ReadError is returned by Parse/Read when source text cannot be parsed.
// Offender is the (possibly truncated by the caller) text the reader had
// cursored to when it gave up.
type ReadError struct {
	Message  string
	Offender string
	Line     int
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: '%s' at line %d", e.Message, e.Offender, e.Line)
}

// reader is a recursive-descent parser over a byte cursor. It never decodes
// runes: Strings carry an explicit length and may contain arbitrary bytes
// (including NUL), so the reader only ever needs to compare bytes.
type reader struct {
	src  []byte
	pos  int
	line int
}

func newReader(src []byte) *reader {
	return &reader{src: src, line: 1}
}

func (r *reader) peekByte() (byte, bool) {
	if r.pos >= len(r.src) {
		return 0, false
	}
	return r.src[r.pos], true
}

func (r *reader) at(off int) (byte, bool) {
	if r.pos+off >= len(r.src) {
		return 0, false
	}
	return r.src[r.pos+off], true
}

func (r *reader) skipSpaceAndComments() {
	for {
		for r.pos < len(r.src) && isASCIISpace(r.src[r.pos]) {
			if r.src[r.pos] == '\n' {
				r.line++
			}
			r.pos++
		}
		if r.pos+1 < len(r.src) && r.src[r.pos] == '/' && r.src[r.pos+1] == '/' {
			for r.pos < len(r.src) && r.src[r.pos] != '\n' {
				r.pos++
			}
			continue
		}
		return
	}
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (r *reader) errorf(offender string, format string, args ...interface{}) error {
	return &ReadError{Message: fmt.Sprintf(format, args...), Offender: offender, Line: r.line}
}

// readOne reads exactly one value starting at the cursor, leaving the
// cursor just past it.
func (r *reader) readOne() (*Value, error) {
	r.skipSpaceAndComments()
	line := r.line

	b, ok := r.peekByte()
	if !ok {
		return nil, r.errorf("", "Unexpected end of input")
	}

	switch {
	case b == '-' && isDigitAt(r, 1), isDigit(b):
		return r.readInt(line)
	case b == '[':
		return r.readListOrTuple(line, '[', ']', List)
	case b == '(':
		return r.readListOrTuple(line, '(', ')', Tuple)
	case b == '\'' && peekIs(r, 1, '('):
		r.pos++ // consume '
		v, err := r.readListOrTuple(line, '(', ')', Tuple)
		if err != nil {
			return nil, err
		}
		v.quoted = true
		return v, nil
	case b == '"':
		return r.readString(line)
	case b == '#':
		if next, ok := r.at(1); !ok || !isSymbolByte(next) {
			return r.readSymbol(line)
		}
		return r.readBool(line)
	case isSymbolByte(b):
		return r.readSymbol(line)
	default:
		return nil, r.errorf(string([]byte{b}), "No object type starts like this")
	}
}

func isDigitAt(r *reader, off int) bool {
	b, ok := r.at(off)
	return ok && isDigit(b)
}

func peekIs(r *reader, off int, want byte) bool {
	b, ok := r.at(off)
	return ok && b == want
}

func (r *reader) readInt(line int) (*Value, error) {
	start := r.pos
	neg := false
	if b, _ := r.peekByte(); b == '-' {
		neg = true
		r.pos++
	}
	n := 0
	for {
		b, ok := r.peekByte()
		if !ok || !isDigit(b) {
			break
		}
		n = n*10 + int(b-'0')
		r.pos++
	}
	if r.pos == start || (neg && r.pos == start+1) {
		return nil, r.errorf(string(r.src[start:r.pos]), "Malformed integer literal")
	}
	if neg {
		n = -n
	}
	v := NewInt(n, line)
	return v, nil
}

func (r *reader) readListOrTuple(line int, open, close byte, kind Kind) (*Value, error) {
	r.pos++ // consume open
	var elems []*Value
	for {
		r.skipSpaceAndComments()
		b, ok := r.peekByte()
		if ok && b == close {
			r.pos++
			if kind == Tuple {
				return NewTuple(elems, false, line), nil
			}
			return NewList(elems, line), nil
		}
		if !ok {
			for _, e := range elems {
				Release(e)
			}
			what := "List"
			if kind == Tuple {
				what = "Tuple"
			}
			return nil, r.errorf("", "%s never closed", what)
		}
		elem, err := r.readOne()
		if err != nil {
			for _, e := range elems {
				Release(e)
			}
			return nil, err
		}
		if kind == Tuple && (elem.kind != Symbol || len(elem.text) != 1) {
			Release(elem)
			for _, e := range elems {
				Release(e)
			}
			return nil, r.errorf("", "Tuples can only contain single character symbols")
		}
		elems = append(elems, elem)
	}
}

func (r *reader) readSymbol(line int) (*Value, error) {
	quoted := false
	if b, _ := r.peekByte(); b == '\'' {
		quoted = true
		r.pos++
	}
	start := r.pos
	for {
		b, ok := r.peekByte()
		if !ok || !isSymbolByte(b) {
			break
		}
		r.pos++
	}
	name := string(r.src[start:r.pos])
	if name == "" {
		return nil, r.errorf("'", "No object type starts like this")
	}
	return NewSymbol(name, quoted, line), nil
}

func (r *reader) readBool(line int) (*Value, error) {
	t, ok1 := r.at(1)
	if !ok1 || (t != 't' && t != 'f') {
		return nil, r.errorf("#", "Booleans are either #t or #f")
	}
	r.pos += 2
	return NewBool(t == 't', line), nil
}

func (r *reader) readString(line int) (*Value, error) {
	r.pos++ // consume opening quote
	var buf []byte
	for {
		b, ok := r.peekByte()
		if !ok {
			return nil, r.errorf(string(buf), "Quotation marks never closed in string")
		}
		if b == '"' {
			r.pos++
			return NewString(buf, line), nil
		}
		if b == '\\' {
			r.pos++
			e, ok := r.peekByte()
			if !ok {
				return nil, r.errorf(string(buf), "Quotation marks never closed in string")
			}
			switch e {
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			default:
				buf = append(buf, e)
			}
			r.pos++
			continue
		}
		buf = append(buf, b)
		r.pos++
	}
}

// Parse reads exactly one value from src, per §4.1 of the language core:
// "parse source into a value". Trailing whitespace/comments after the value
// are tolerated; any other trailing bytes are an error.
func Parse(src []byte) (*Value, error) {
	r := newReader(src)
	v, err := r.readOne()
	if err != nil {
		return nil, err
	}
	r.skipSpaceAndComments()
	if r.pos != len(r.src) {
		Release(v)
		return nil, r.errorf(string(r.src[r.pos:]), "Trailing garbage after value")
	}
	return v, nil
}

// ParseProgram wraps src as a whole program: "[ " + src + " ]", the
// convention the REPL and file-loading entry points use so that a run of
// top-level literals and symbols reads as a single List value. This is
// plumbing those hosts share, factored here since it is one line either way.
func ParseProgram(src []byte) (*Value, error) {
	wrapped := make([]byte, 0, len(src)+2)
	wrapped = append(wrapped, '[')
	wrapped = append(wrapped, src...)
	wrapped = append(wrapped, ']')
	return Parse(wrapped)
}
