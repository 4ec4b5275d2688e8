package builtins

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/golox/internal/interp/runtime"
)

// listArity is zero: `list()` takes no constructor arguments.
const listArity = 0

// NewList constructs an empty list instance, the value `list()` returns.
func NewList(ctx Context, args []runtime.Value) (runtime.Value, error) {
	return &ListInstance{}, nil
}

// ListArity reports list's constructor arity.
func ListArity() int { return listArity }

// ListInstance is a native growable array, the one compound data
// structure the standard library provides alongside classes. Its
// methods are exposed through GetProperty rather than a method table,
// since a native type has no class declaration to look them up in.
type ListInstance struct {
	items []runtime.Value
}

func (*ListInstance) Type() string { return "list" }

func (l *ListInstance) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(runtime.Stringify(v))
	}
	b.WriteByte(']')
	return b.String()
}

// GetProperty resolves a list method by name, binding it to this
// instance. Unknown names fail the same way an unknown field access on
// a class instance does. add/clear/remove/set return the list instance
// itself so calls can chain; get/length/toString return the value they
// compute instead.
func (l *ListInstance) GetProperty(name string) (runtime.Value, bool) {
	switch name {
	case "add":
		return nativeMethod(1, func(args []runtime.Value) (runtime.Value, error) {
			l.items = append(l.items, args[0])
			return l, nil
		}), true
	case "clear":
		return nativeMethod(0, func(args []runtime.Value) (runtime.Value, error) {
			l.items = nil
			return l, nil
		}), true
	case "get":
		return nativeMethod(1, func(args []runtime.Value) (runtime.Value, error) {
			i, err := listIndex(args[0], len(l.items))
			if err != nil {
				return nil, err
			}
			return l.items[i], nil
		}), true
	case "length":
		return nativeMethod(0, func(args []runtime.Value) (runtime.Value, error) {
			return runtime.Number(len(l.items)), nil
		}), true
	case "remove":
		return nativeMethod(1, func(args []runtime.Value) (runtime.Value, error) {
			i, err := listIndex(args[0], len(l.items))
			if err != nil {
				return nil, err
			}
			l.items = append(l.items[:i], l.items[i+1:]...)
			return l, nil
		}), true
	case "set":
		return nativeMethod(2, func(args []runtime.Value) (runtime.Value, error) {
			i, err := listIndex(args[0], len(l.items))
			if err != nil {
				return nil, err
			}
			l.items[i] = args[1]
			return l, nil
		}), true
	case "toString":
		return nativeMethod(0, func(args []runtime.Value) (runtime.Value, error) {
			return runtime.String(l.String()), nil
		}), true
	}
	return nil, false
}

// SetProperty always refuses: a list-instance has no settable fields,
// only the fixed method surface GetProperty exposes.
func (l *ListInstance) SetProperty(name string, v runtime.Value) bool {
	return false
}

func listIndex(v runtime.Value, length int) (int, error) {
	n, ok := v.(runtime.Number)
	if !ok || float64(n) != math.Trunc(float64(n)) {
		return 0, fmt.Errorf("List index must be an integer.")
	}
	i := int(n)
	if i < 0 || i >= length {
		return 0, fmt.Errorf("List index out of range.")
	}
	return i, nil
}

// nativeBoundMethod is a method already bound to its receiving
// ListInstance via closure capture, implementing runtime.Callable.
type nativeBoundMethod struct {
	arity int
	fn    func(args []runtime.Value) (runtime.Value, error)
}

func nativeMethod(arity int, fn func(args []runtime.Value) (runtime.Value, error)) *nativeBoundMethod {
	return &nativeBoundMethod{arity: arity, fn: fn}
}

func (*nativeBoundMethod) Type() string     { return "native function" }
func (*nativeBoundMethod) String() string   { return "<native fn>" }
func (m *nativeBoundMethod) Arity() int     { return m.arity }
func (m *nativeBoundMethod) Call(args []runtime.Value) (runtime.Value, error) {
	return m.fn(args)
}
