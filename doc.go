/*
Package aocla implements the core of a small concatenative, stack-based
programming language in the Joy/Forth tradition.

A program is a sequence of literal values and symbols. Execution threads a
single operand stack: literals push themselves, and symbols either capture
locals into the current call frame or dispatch to a procedure -- built-in or
user defined. There is no separate expression grammar; control flow,
data construction, and procedure definition are all just symbols operating
on quoted lists sitting on the stack.

	5 3 + .            => 8
	[1 2 3] [dup *] map => [1 4 9]

Values are shared by reference-counted handle so that a list can be pushed
onto the stack, aliased, and walked by multiple procedures without being
copied; any builtin that needs to mutate a value first calls EnsureExclusive
to get a uniquely-held copy, which is the only place copy-on-write happens.

This package is the interpreter core only: reading a program from bytes,
evaluating it against a Context, and the builtin procedure library. The
read-eval-print loop and the file-loading entry point live in
cmd/aocla, which is the only thing that knows about os.Stdin, file paths,
and process exit codes.
*/
package aocla
