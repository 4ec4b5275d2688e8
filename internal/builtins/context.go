// Package builtins implements Lox's two standard-library natives,
// `clock` and `list`, behind a narrow Context interface so this package
// only ever imports internal/interp/runtime, never internal/interp —
// the interpreter wires these natives into the global environment, not
// the other way around.
package builtins

import "time"

// Context is the capability surface a native function needs from its
// caller. Keeping it this narrow is what lets builtins avoid depending
// on the interpreter package at all.
type Context interface {
	Now() time.Time
}
