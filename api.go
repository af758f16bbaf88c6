package aocla

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/aocla/internal/panicerr"
)

// Run evaluates program (normally the result of ParseProgram) against ctx,
// recovering any panic raised from deep inside a careless builtin (a
// division by zero, an index slip) into a plain error rather than crashing
// the host, exactly as this package's teacher recovers panics out of its
// own VM.Run.
//
// If ctx is derived with a deadline or cancellation, a watcher goroutine
// races evaluation against it. The evaluator itself has no notion of
// cancellation (per the concurrency model this package implements, it
// never suspends), and Run does not return until the evaluation has
// finished: when ctx is cancelled or its deadline passes while evaluation
// is still running, Run reports ctx's error (context.Canceled or
// context.DeadlineExceeded) in place of the evaluation's own result once
// the evaluation returns. A running evaluation is never interrupted.
func Run(ctx context.Context, c *Context, program *Value) error {
	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		return panicerr.Recover("eval", func() error {
			return c.Eval(program)
		})
	})
	g.Go(func() error {
		select {
		case <-done:
			return nil
		case <-gctx.Done():
			return gctx.Err()
		}
	})

	return g.Wait()
}
