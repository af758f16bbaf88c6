package aocla

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/jcorbin/aocla/internal/flushio"
)

// stackShowMax bounds how many of the topmost stack entries Show prints
// before summarizing the rest by count.
const stackShowMax = 16

// maxLocals is the size of each Frame's local-variable slot array: a local
// is named by the single byte of its one-character symbol, so 256 slots
// cover the whole byte range.
const maxLocals = 256

// Frame is the activation record for one procedure call: its local
// variable slots, a link back to the caller's frame, the procedure it is
// currently executing (for trace and error messages), and the source line
// currently being evaluated.
type Frame struct {
	locals   [maxLocals]*Value
	proc     *Procedure
	line     int
	previous *Frame
}

// Procedure is a name bound to exactly one of: a native Go function, or a
// List value that is its body. Built-ins are Procedures with Native set;
// user (and bootstrap) procedures are Procedures with Body set.
type Procedure struct {
	Name   string
	Native func(*Context) error
	Body   *Value
}

// Context owns everything evaluation touches: the operand stack, the chain
// of active call frames, the procedure (symbol) table, and the last error
// raised. It is the "context" of §4.3/§4.4: an explicit, host-owned value --
// there is no global interpreter state anywhere in this package.
type Context struct {
	logging

	Stack []*Value

	frame *Frame
	procs map[string]*Procedure

	lastErr *EvalError

	out     flushio.WriteFlusher
	closers []io.Closer
	color   bool

	maxDepth int
	depth    int
}

// New creates a Context with the builtin library and bootstrap words
// already installed, per opts.
func New(opts ...Option) *Context {
	ctx := &Context{
		frame: &Frame{},
		procs: make(map[string]*Procedure),
	}
	defaultOptions.apply(ctx)
	Options(opts...).apply(ctx)
	if ctx.out == nil {
		ctx.out = flushio.NewWriteFlusher(ioutil.Discard)
	}
	installBuiltins(ctx)
	installBootstrap(ctx)
	return ctx
}

// Close flushes and closes anything opts wired up (e.g. an output file),
// in reverse order of being added.
func (ctx *Context) Close() (err error) {
	if ctx.out != nil {
		if ferr := ctx.out.Flush(); err == nil {
			err = ferr
		}
	}
	for i := len(ctx.closers) - 1; i >= 0; i-- {
		if cerr := ctx.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Define binds name to body as a user procedure, taking ownership of body
// (one reference). Any existing binding -- native or body-based -- is
// replaced outright: this resolves the spec's own ambiguity about whether a
// native fallback survives a later define by following the source it's
// modeled on, which unconditionally overwrites both fields together. See
// DESIGN.md.
func (ctx *Context) Define(name string, body *Value) {
	ctx.procs[name] = &Procedure{Name: name, Body: body}
}

// defineNative registers a built-in procedure.
func (ctx *Context) defineNative(name string, fn func(*Context) error) {
	ctx.procs[name] = &Procedure{Name: name, Native: fn}
}

// Lookup returns the procedure bound to name, or nil.
func (ctx *Context) Lookup(name string) *Procedure { return ctx.procs[name] }

// push takes ownership of v's handle and appends it to the stack.
func (ctx *Context) push(v *Value) {
	ctx.Stack = append(ctx.Stack, v)
}

// Push takes ownership of v's handle and appends it to the operand stack;
// it is how a host collaborator (e.g. the file-mode entry point) seeds the
// stack with argument values before evaluation begins.
func (ctx *Context) Push(v *Value) { ctx.push(v) }

// pop returns the top handle, transferring ownership to the caller, or
// fails with "Out of stack" if empty.
func (ctx *Context) pop() (*Value, error) {
	if len(ctx.Stack) == 0 {
		return nil, ctx.fail("", "Out of stack")
	}
	v := ctx.Stack[len(ctx.Stack)-1]
	ctx.Stack = ctx.Stack[:len(ctx.Stack)-1]
	return v, nil
}

// peek returns the handle k below the top (k=0 is the top) without
// transferring ownership.
func (ctx *Context) peek(k int) (*Value, error) {
	if len(ctx.Stack) <= k {
		return nil, ctx.fail("", "Out of stack")
	}
	return ctx.Stack[len(ctx.Stack)-1-k], nil
}

// set replaces the handle at offset k (0 is the top); the previous handle's
// ownership passes to the caller.
func (ctx *Context) set(k int, v *Value) {
	ctx.Stack[len(ctx.Stack)-1-k] = v
}

// Show prints up to the top stackShowMax stack entries in repr form
// (colored when the Context was built with WithColor(true)) and notes how
// many more there are, matching the behavior the "." builtin
// exposes to programs.
func (ctx *Context) Show(w io.Writer) {
	n := len(ctx.Stack)
	start := n - stackShowMax
	if start < 0 {
		start = 0
	}
	for i := start; i < n; i++ {
		Fprint(w, ctx.Stack[i], true, ctx.color)
		io.WriteString(w, " ")
	}
	if start > 0 {
		fmt.Fprintf(w, "[... %d more objects ...]", start)
	}
	if n > 0 {
		io.WriteString(w, "\n")
	}
}
