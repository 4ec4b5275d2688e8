package builtins

import "github.com/cwbudde/golox/internal/interp/runtime"

// clockArity is zero: `clock()` takes no arguments.
const clockArity = 0

// Clock returns the number of seconds since the Unix epoch as a Lox
// number, the same quantity the book's native clock() reports.
func Clock(ctx Context, args []runtime.Value) (runtime.Value, error) {
	seconds := float64(ctx.Now().UnixNano()) / 1e9
	return runtime.Number(seconds), nil
}

// ClockArity reports clock's arity for the caller's arity check before
// it invokes Clock.
func ClockArity() int { return clockArity }
