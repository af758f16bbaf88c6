package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// recoverPanicError is the innermost deferred recover in Recover's
// goroutine: it catches a builtin-triggered panic (e.g. an unchecked List
// index, a Tuple arity mismatch a validator missed) and turns it into a
// panicError delivered over errch.
func recoverPanicError(name string, errch chan<- error) {
	var pe panicError
	if pe.e = recover(); pe.e != nil {
		pe.name = name
		pe.stack = debug.Stack()
		select {
		case errch <- pe:
		default:
		}
	}
}

// panicError records a panic recovered while evaluating a builtin or
// procedure named name, along with the goroutine stack at the moment of
// the panic, for inclusion in a REPL's trace output.
type panicError struct {
	name  string
	e     interface{}
	stack []byte
}

func (pe panicError) Error() string {
	return fmt.Sprint(pe)
}

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.e)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.e)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}

// IsPanic reports whether err wraps a panic recovered from a builtin or
// procedure call.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// PanicStack returns the goroutine stack captured at the point of the
// panic wrapped by err, or "" if err does not wrap one. A REPL's -trace
// or -dump handling can use this to print a diagnostic without crashing
// itself.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}
