// Package interp walks a resolved AST and executes it, implementing
// Lox's dynamic semantics: arithmetic and string concatenation rules,
// closures, classes with single inheritance, and non-local return.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/builtins"
	loxerrors "github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/interp/runtime"
	"github.com/cwbudde/golox/internal/resolver"
)

// Interpreter holds the mutable execution state for one Lox program: the
// global scope, the current lexical environment, and the resolver's
// scope-distance side table for the program currently running.
type Interpreter struct {
	globals *runtime.Environment
	env     *runtime.Environment
	locals  resolver.Locals
	out     io.Writer
}

// New constructs an Interpreter that writes `print` output to out and
// wires the two standard-library natives into the global scope.
func New(out io.Writer) *Interpreter {
	i := &Interpreter{globals: runtime.NewEnvironment(), out: out}
	i.env = i.globals
	registerNatives(i, i.globals)
	return i
}

// Now implements builtins.Context so native functions read the current
// time through the Context rather than calling time.Now themselves.
func (i *Interpreter) Now() time.Time { return time.Now() }

// Interpret runs a fully parsed and resolved program. locals is the side
// table Resolve produced; it stays fixed for the lifetime of this call.
func (i *Interpreter) Interpret(stmts []ast.Stmt, locals resolver.Locals) error {
	i.locals = locals
	for _, stmt := range stmts {
		if err := i.exec(stmt); err != nil {
			return toRuntimeError(err)
		}
	}
	return nil
}

func toRuntimeError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*loxerrors.RuntimeError); ok {
		return err
	}
	if le, ok := err.(*loxRuntimeError); ok {
		return &loxerrors.RuntimeError{Line: le.line, Message: le.Error()}
	}
	return err
}

// loxRuntimeError carries the line a runtime failure occurred on before
// it's translated into the public errors.RuntimeError wire format.
type loxRuntimeError struct {
	line    int
	message string
}

func (e *loxRuntimeError) Error() string { return e.message }

func newRuntimeError(line int, format string, args ...any) *loxRuntimeError {
	return &loxRuntimeError{line: line, message: fmt.Sprintf(format, args...)}
}

// returnSignal unwinds the Go call stack from a `return` statement back
// up to the enclosing LoxFunction.Call, which recovers it. This mirrors
// the teacher's boolean-flag control-flow propagation but must cross
// arbitrarily many nested blocks in one step, which a flag checked after
// every statement cannot do without one test per nesting level.
type returnSignal struct {
	value runtime.Value
}

// exec executes a single statement, relying on Go's panic/recover to
// implement non-local return: a bare `return` inside nested blocks and
// loops unwinds straight back to the call site.
func (i *Interpreter) exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return i.ExecuteBlock(s.Statements, runtime.NewEnclosed(i.env))

	case *ast.Class:
		return i.execClass(s)

	case *ast.ExpressionStmt:
		_, err := i.Eval(s.Expression)
		return err

	case *ast.Function:
		fn := NewFunction(s, i.env, false, i)
		i.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.If:
		cond, err := i.Eval(s.Condition)
		if err != nil {
			return err
		}
		if runtime.IsTruthy(cond) {
			return i.exec(s.ThenBranch)
		} else if s.ElseBranch != nil {
			return i.exec(s.ElseBranch)
		}
		return nil

	case *ast.Print:
		v, err := i.Eval(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, runtime.Stringify(v))
		return nil

	case *ast.Return:
		var value runtime.Value = runtime.NilValue
		if s.Value != nil {
			v, err := i.Eval(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		panic(returnSignal{value: value})

	case *ast.Var:
		var value runtime.Value = runtime.NilValue
		if s.Initializer != nil {
			v, err := i.Eval(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.While:
		for {
			cond, err := i.Eval(s.Condition)
			if err != nil {
				return err
			}
			if !runtime.IsTruthy(cond) {
				return nil
			}
			if err := i.exec(s.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExecuteBlock runs statements in env, always restoring the previous
// environment afterward, including when a panic unwinds through it.
func (i *Interpreter) ExecuteBlock(statements []ast.Stmt, env *runtime.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		if err := i.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func registerNatives(i *Interpreter, globals *runtime.Environment) {
	globals.Define("clock", newNative("clock", builtins.ClockArity(), func(args []runtime.Value) (runtime.Value, error) {
		return callClock(i, args)
	}))
	globals.Define("list", newNativeClass("list", builtins.ListArity(), func(args []runtime.Value) (runtime.Value, error) {
		return callList(i, args)
	}))
}
