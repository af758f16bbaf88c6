package aocla

import (
	"io"
	"io/ioutil"

	"github.com/jcorbin/aocla/internal/flushio"
)

// Option configures a Context at construction time, following the
// functional-options pattern this package's teacher uses for its VM.
type Option interface{ apply(ctx *Context) }

var defaultOptions = Options(
	withOutput(ioutil.Discard),
)

// Options flattens any number of Option values (including nil and other
// Options) into a single one.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*Context) {}

type options []Option

func (opts options) apply(ctx *Context) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ctx)
		}
	}
}

// WithOutput sets the writer that prin, print and . write to.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithColor enables ANSI coloring in Show's stack display.
func WithColor(color bool) Option { return colorOption(color) }

// WithMaxDepth caps user-procedure call nesting; 0 (the default) means
// unbounded, relying on the host's goroutine stack the way the evaluator's
// own recursion naturally would. This is a domain addition beyond §4.4,
// motivated by its own design note about bounding recursion depth on hosts
// with small default stacks -- rather than trampoline the evaluator, this
// exposes the bound as a guard that fails cleanly instead of crashing.
func WithMaxDepth(n int) Option { return maxDepthOption(n) }

// WithLogf installs a trace sink; see logging.
func WithLogf(fn func(mark, mess string, args ...interface{})) Option { return logfOption(fn) }

type outputOption struct{ io.Writer }
type colorOption bool
type maxDepthOption int
type logfOption func(mark, mess string, args ...interface{})

func withOutput(w io.Writer) outputOption { return outputOption{w} }

func (o outputOption) apply(ctx *Context) {
	if ctx.out != nil {
		ctx.out.Flush()
	}
	ctx.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		ctx.closers = append(ctx.closers, cl)
	}
}

func (c colorOption) apply(ctx *Context) { ctx.color = bool(c) }

func (n maxDepthOption) apply(ctx *Context) { ctx.maxDepth = int(n) }

func (fn logfOption) apply(ctx *Context) { ctx.withLogf(fn) }
