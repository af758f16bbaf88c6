package aocla

import (
	"bytes"
	"fmt"
	"io"
)

// color escapes, purely decorative -- only the structural text form below
// is normative. Matches the palette of the source this prints like.
const (
	colorList   = "\033[33;1m" // yellow
	colorTuple  = "\033[34;1m" // blue
	colorSymbol = "\033[36;1m" // cyan
	colorString = "\033[32;1m" // green
	colorInt    = "\033[37;1m" // gray
	colorBool   = "\033[35;1m" // magenta
	colorReset  = "\033[0m"
)

func escapeFor(k Kind) string {
	switch k {
	case List:
		return colorList
	case Tuple:
		return colorTuple
	case Symbol:
		return colorSymbol
	case String:
		return colorString
	case Int:
		return colorInt
	case Bool:
		return colorBool
	}
	return ""
}

// Fprint writes v to w. repr selects the machine-readable form (quoted
// strings, bracketed lists/tuples); without it, String prints its raw
// bytes and List/Tuple print their elements unbracketed. color wraps each
// value in ANSI escapes; it has no effect on the value the text encodes.
func Fprint(w io.Writer, v *Value, repr, color bool) error {
	var werr error
	write := func(s string) {
		if werr == nil {
			_, werr = io.WriteString(w, s)
		}
	}
	fprint(write, v, repr, color)
	return werr
}

func fprint(write func(string), v *Value, repr, color bool) {
	if color {
		write(escapeFor(v.kind))
	}
	switch v.kind {
	case Bool:
		if v.b {
			write("#t")
		} else {
			write("#f")
		}
	case Int:
		write(fmt.Sprintf("%d", v.i))
	case Symbol:
		write(string(v.text))
	case String:
		if !repr {
			write(string(v.text))
		} else {
			write(`"`)
			for _, c := range v.text {
				switch c {
				case '\n':
					write(`\n`)
				case '\r':
					write(`\r`)
				case '\t':
					write(`\t`)
				case '"':
					write(`\"`)
				default:
					write(string([]byte{c}))
				}
			}
			write(`"`)
		}
	case List, Tuple:
		if repr {
			if v.kind == List {
				write("[")
			} else {
				write("(")
			}
		}
		for i, c := range v.elems {
			fprint(write, c, repr, color)
			if i != len(v.elems)-1 {
				write(" ")
			}
		}
		if color {
			write(escapeFor(v.kind))
		}
		if repr {
			if v.kind == List {
				write("]")
			} else {
				write(")")
			}
		}
	}
	if color {
		write(colorReset)
	}
}

// Sprint renders v as Fprint would, returning the result as a string. Handy
// for tests and for building error-message offenders.
func Sprint(v *Value, repr, color bool) string {
	var buf bytes.Buffer
	_ = Fprint(&buf, v, repr, color)
	return buf.String()
}
