package aocla

import (
	"fmt"
	"strings"
)

// errBufSize mirrors the fixed-size error buffer the context owns; the
// formatted EvalError.Error() is not truncated (a Go error string can be as
// long as it needs to be), but Context.ErrorString trims to this, which is
// what the "inspect ... error" interface this package exposes promises.
const errBufSize = 256

// traceEntry records one frame of the call trace at the moment an error was
// raised: which procedure was executing, and at what source line.
type traceEntry struct {
	Proc string
	Line int
}

// EvalError is a runtime error raised by the evaluator or a builtin. It
// carries the offending text/symbol and a trace of the call frames active
// when the error was raised, walked from the failing frame back to the
// root -- see §6 "Error string format" of the design this implements.
type EvalError struct {
	Message  string
	Offender string
	Trace    []traceEntry
}

func (e *EvalError) Error() string {
	var b strings.Builder
	off := e.Offender
	if len(off) > 30 {
		fmt.Fprintf(&b, "%s: '%.30s...'", e.Message, off)
	} else {
		fmt.Fprintf(&b, "%s: '%s'", e.Message, off)
	}
	for _, t := range e.Trace {
		proc := t.Proc
		if proc == "" {
			proc = "unknown"
		}
		fmt.Fprintf(&b, " in %s:%d ", proc, t.Line)
	}
	return b.String()
}

// fail builds an EvalError rooted at the current frame chain, records it as
// the context's last error, and returns it so the caller can propagate it
// up the evaluator.
//
// An empty offender falls back to the name of the procedure currently
// executing in the top frame, matching the convention that a builtin
// failing on its own arguments (rather than on a specific symbol in the
// program text) blames itself.
func (ctx *Context) fail(offender, format string, args ...interface{}) error {
	if offender == "" {
		if ctx.frame != nil && ctx.frame.proc != nil {
			offender = ctx.frame.proc.Name
		} else {
			offender = "unknown context"
		}
	}
	err := &EvalError{
		Message:  fmt.Sprintf(format, args...),
		Offender: offender,
	}
	for f := ctx.frame; f != nil; f = f.previous {
		name := "unknown"
		if f.proc != nil {
			name = f.proc.Name
		}
		err.Trace = append(err.Trace, traceEntry{Proc: name, Line: f.line})
	}
	ctx.lastErr = err
	return err
}

// ErrorString returns the most recent evaluator error formatted and
// truncated to the context's fixed-size error buffer, or "" if there has
// been none (or it was cleared). This is the "inspect ... error" half of
// the core's external interface.
func (ctx *Context) ErrorString() string {
	if ctx.lastErr == nil {
		return ""
	}
	s := ctx.lastErr.Error()
	if len(s) > errBufSize {
		s = s[:errBufSize]
	}
	return s
}

// ClearError forgets the last recorded error.
func (ctx *Context) ClearError() { ctx.lastErr = nil }
