package aocla

import (
	"fmt"
	"strings"
)

// logging is an optional trace facility embedded in Context, adapted from
// the mark-prefixed leveled logging the interpreter this is modeled on
// uses for its own VM trace. Every call site picks a short "mark" --
// "." for a native procedure call, ">" for entering a body procedure, "<"
// for leaving it -- and logging left-pads marks to a common width so a trace
// reads as aligned columns instead of ragged text.
type logging struct {
	logfn func(mark, mess string, args ...interface{})

	markWidth int
}

// withLogf installs fn as the trace sink; fn receives the mark and the
// already-formatted message.
func (log *logging) withLogf(fn func(mark, mess string, args ...interface{})) {
	log.logfn = fn
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(" ", n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn(mark, mess)
}
