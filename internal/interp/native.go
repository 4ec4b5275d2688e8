package interp

import (
	"github.com/cwbudde/golox/internal/builtins"
	"github.com/cwbudde/golox/internal/interp/runtime"
)

// nativeFunction adapts a Go closure to runtime.Callable so natives can
// sit in the global environment next to user-defined functions and
// classes without the caller needing to tell them apart.
type nativeFunction struct {
	name  string
	arity int
	asCls bool // true for the list constructor, which prints as a native class
	fn    func(args []runtime.Value) (runtime.Value, error)
}

func newNative(name string, arity int, fn func(args []runtime.Value) (runtime.Value, error)) *nativeFunction {
	return &nativeFunction{name: name, arity: arity, fn: fn}
}

func newNativeClass(name string, arity int, fn func(args []runtime.Value) (runtime.Value, error)) *nativeFunction {
	return &nativeFunction{name: name, arity: arity, asCls: true, fn: fn}
}

func (*nativeFunction) Type() string { return "native function" }
func (n *nativeFunction) String() string {
	if n.asCls {
		return "<native class>"
	}
	return "<native fn>"
}
func (n *nativeFunction) Arity() int { return n.arity }

func (n *nativeFunction) Call(args []runtime.Value) (runtime.Value, error) {
	return n.fn(args)
}

// callClock and callList bridge the Interpreter, which implements
// builtins.Context, to the builtins package's Context-taking functions.
func callClock(ctx builtins.Context, args []runtime.Value) (runtime.Value, error) {
	return builtins.Clock(ctx, args)
}

func callList(ctx builtins.Context, args []runtime.Value) (runtime.Value, error) {
	return builtins.NewList(ctx, args)
}
