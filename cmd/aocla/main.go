// Command aocla is the read-eval-print loop and file-loader entry point for
// the aocla language: run with no arguments for an interactive REPL, or
// with a file path (and optional extra arguments pushed onto the stack
// before evaluation) to run a program non-interactively.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jcorbin/aocla"
	"github.com/jcorbin/aocla/internal/logio"
)

func main() {
	var (
		timeout time.Duration
		trace   bool
		dump    bool
		color   bool
	)
	flag.DurationVar(&timeout, "timeout", 0, "evaluation time limit (0 disables)")
	flag.BoolVar(&trace, "trace", false, "enable trace logging to stderr")
	flag.BoolVar(&dump, "dump", false, "print a context dump after execution")
	flag.BoolVar(&color, "color", false, "colorize printed stack values")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	opts := []aocla.Option{
		aocla.WithOutput(os.Stdout),
		aocla.WithColor(color),
	}
	if trace {
		opts = append(opts, aocla.WithLogf(func(mark, mess string, args ...interface{}) {
			log.Printf("TRACE", mark+" "+mess, args...)
		}))
	}

	ctx := aocla.New(opts...)
	defer ctx.Close()
	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		defer ctx.Dump(lw)
	}

	var runErr error
	if flag.NArg() == 0 {
		runErr = repl(ctx, timeout, &log)
	} else {
		runErr = runFile(ctx, flag.Args(), timeout)
	}
	if runErr != nil {
		log.Errorf("%v", runErr)
	}
}

// repl reads lines from stdin, wraps each as `[ line ]`, evaluates it
// against ctx, and shows the resulting stack -- per the no-argument
// invocation mode. A per-line error is logged but never aborts the loop or
// causes a non-zero exit.
func repl(ctx *aocla.Context, timeout time.Duration, log *logio.Logger) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		program, err := aocla.ParseProgram(scanner.Bytes())
		if err != nil {
			log.Printf("ERROR", "%v", err)
			continue
		}
		if err := evalWithTimeout(ctx, program, timeout); err != nil {
			log.Printf("ERROR", "%v", err)
		}
		ctx.Show(os.Stdout)
	}
	return scanner.Err()
}

// runFile reads args[0] as a source file, wraps its contents as `[ … ]`,
// parses and pushes each remaining argument onto the stack, then evaluates
// the program -- per the file-mode invocation.
func runFile(ctx *aocla.Context, args []string, timeout time.Duration) error {
	body, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	program, err := aocla.ParseProgram(body)
	if err != nil {
		return err
	}

	for _, arg := range args[1:] {
		v, err := aocla.Parse([]byte(arg))
		if err != nil {
			return err
		}
		ctx.Push(v)
	}

	return evalWithTimeout(ctx, program, timeout)
}

func evalWithTimeout(ctx *aocla.Context, program *aocla.Value, timeout time.Duration) error {
	runCtx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, timeout)
		defer cancel()
	}
	return aocla.Run(runCtx, ctx, program)
}
