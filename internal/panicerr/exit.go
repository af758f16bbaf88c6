package panicerr

import (
	"errors"
	"fmt"
)

// recoverExitError is the outer deferred recover in Recover's goroutine:
// it runs after recoverPanicError and only fires if the evaluation
// goroutine called runtime.Goexit directly (no interpreter builtin does
// this today, but a future native extension might).
func recoverExitError(name string, errch chan<- error) {
	select {
	case errch <- exitError(name):
	default:
		// the f() call above already sent its own (possibly nil) result
	}
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// IsExit reports whether err indicates the evaluation goroutine ended via
// runtime.Goexit rather than a normal return or panic.
func IsExit(err error) bool {
	var xe exitError
	return errors.As(err, &xe)
}
