package aocla

import (
	"fmt"
	"io"
)

// Dump prints a diagnostic snapshot of ctx to w: the full operand stack (not
// just the Show-truncated view), the active frame chain from innermost to
// outermost with each frame's bound locals, and the procedure table --
// native entries and body entries separately. This is the aocla analogue of
// this package's teacher's own VM memory dumper, reworked around a value
// tree and call-frame chain instead of a flat memory image.
func (ctx *Context) Dump(w io.Writer) {
	fmt.Fprintf(w, "# Stack (%d)\n", len(ctx.Stack))
	for i := len(ctx.Stack) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "  @%d %s\n", i, Sprint(ctx.Stack[i], true, false))
	}

	fmt.Fprintf(w, "# Frames\n")
	depth := 0
	for f := ctx.frame; f != nil; f = f.previous {
		name := "<root>"
		if f.proc != nil {
			name = f.proc.Name
		}
		fmt.Fprintf(w, "  #%d %s:%d\n", depth, name, f.line)
		for b, v := range f.locals {
			if v != nil {
				fmt.Fprintf(w, "      $%c = %s\n", byte(b), Sprint(v, true, false))
			}
		}
		depth++
	}

	fmt.Fprintf(w, "# Procedures (%d)\n", len(ctx.procs))
	for name, proc := range ctx.procs {
		if proc.Native != nil {
			fmt.Fprintf(w, "  %s native\n", name)
		} else {
			fmt.Fprintf(w, "  %s %s\n", name, Sprint(proc.Body, true, false))
		}
	}
}
