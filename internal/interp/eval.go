package interp

import (
	"github.com/cwbudde/golox/internal/ast"
	loxerrors "github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/interp/runtime"
	"github.com/cwbudde/golox/internal/token"
)

// Eval evaluates a single expression to a runtime value.
func (i *Interpreter) Eval(expr ast.Expr) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Assign:
		value, err := i.Eval(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := i.locals[e]; ok {
			i.env.AssignAt(distance, e.Name.Lexeme, value)
		} else if err := i.globals.Assign(e.Name.Lexeme, value); err != nil {
			return nil, newRuntimeError(e.Name.Line(), "%s", err.Error())
		}
		return value, nil

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Get:
		object, err := i.Eval(e.Object)
		if err != nil {
			return nil, err
		}
		getter, ok := object.(runtime.PropertyGetter)
		if !ok {
			return nil, newRuntimeError(e.Name.Line(), "Only instances have properties.")
		}
		v, ok := getter.GetProperty(e.Name.Lexeme)
		if !ok {
			return nil, newRuntimeError(e.Name.Line(), "Undefined property '%s'.", e.Name.Lexeme)
		}
		return v, nil

	case *ast.Grouping:
		return i.Eval(e.Expression)

	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Logical:
		left, err := i.Eval(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Type == token.Or {
			if runtime.IsTruthy(left) {
				return left, nil
			}
		} else {
			if !runtime.IsTruthy(left) {
				return left, nil
			}
		}
		return i.Eval(e.Right)

	case *ast.Set:
		object, err := i.Eval(e.Object)
		if err != nil {
			return nil, err
		}
		setter, ok := object.(runtime.PropertySetter)
		if !ok {
			return nil, newRuntimeError(e.Name.Line(), "Only instances have fields.")
		}
		value, err := i.Eval(e.Value)
		if err != nil {
			return nil, err
		}
		if !setter.SetProperty(e.Name.Lexeme, value) {
			return nil, newRuntimeError(e.Name.Line(), "Can't set properties on a native instance.")
		}
		return value, nil

	case *ast.Super:
		return i.evalSuper(e)

	case *ast.This:
		return i.lookupVariable(e.Keyword.Lexeme, e, e.Keyword.Line())

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Variable:
		return i.lookupVariable(e.Name.Lexeme, e, e.Name.Line())
	}
	return runtime.NilValue, nil
}

// literalValue converts the interface{} the parser stashed in a Literal
// node into a runtime.Value.
func literalValue(v any) runtime.Value {
	switch val := v.(type) {
	case nil:
		return runtime.NilValue
	case bool:
		return runtime.Bool(val)
	case float64:
		return runtime.Number(val)
	case string:
		return runtime.String(val)
	default:
		return runtime.NilValue
	}
}

func (i *Interpreter) lookupVariable(name string, expr ast.Expr, line int) (runtime.Value, error) {
	if distance, ok := i.locals[expr]; ok {
		v, err := i.env.GetAt(distance, name)
		if err != nil {
			return nil, newRuntimeError(line, "%s", err.Error())
		}
		return v, nil
	}
	v, err := i.globals.Get(name)
	if err != nil {
		return nil, newRuntimeError(line, "%s", err.Error())
	}
	return v, nil
}

func (i *Interpreter) evalUnary(e *ast.Unary) (runtime.Value, error) {
	right, err := i.Eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Lexeme {
	case "-":
		n, ok := right.(runtime.Number)
		if !ok {
			return nil, newRuntimeError(e.Operator.Line(), "Operand must be a number.")
		}
		return -n, nil
	case "!":
		return runtime.Bool(!runtime.IsTruthy(right)), nil
	}
	return nil, newRuntimeError(e.Operator.Line(), "Unknown unary operator '%s'.", e.Operator.Lexeme)
}

func (i *Interpreter) evalBinary(e *ast.Binary) (runtime.Value, error) {
	left, err := i.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.Eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Lexeme {
	case "+":
		if ln, ok := left.(runtime.Number); ok {
			if rn, ok := right.(runtime.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(runtime.String); ok {
			if rs, ok := right.(runtime.String); ok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.Operator.Line(), "Operands must be two numbers or two strings.")
	case "-":
		ln, rn, err := numberOperands(e, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case "*":
		ln, rn, err := numberOperands(e, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case "/":
		ln, rn, err := numberOperands(e, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil
	case ">":
		ln, rn, err := numberOperands(e, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(ln > rn), nil
	case ">=":
		ln, rn, err := numberOperands(e, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(ln >= rn), nil
	case "<":
		ln, rn, err := numberOperands(e, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(ln < rn), nil
	case "<=":
		ln, rn, err := numberOperands(e, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(ln <= rn), nil
	case "==":
		return runtime.Bool(runtime.IsEqual(left, right)), nil
	case "!=":
		return runtime.Bool(!runtime.IsEqual(left, right)), nil
	}
	return nil, newRuntimeError(e.Operator.Line(), "Unknown binary operator '%s'.", e.Operator.Lexeme)
}

func numberOperands(e *ast.Binary, left, right runtime.Value) (runtime.Number, runtime.Number, error) {
	ln, lok := left.(runtime.Number)
	rn, rok := right.(runtime.Number)
	if !lok || !rok {
		return 0, 0, newRuntimeError(e.Operator.Line(), "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (i *Interpreter) evalCall(e *ast.Call) (runtime.Value, error) {
	callee, err := i.Eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		v, err := i.Eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(runtime.Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren.Line(), "Can only call functions and classes.")
	}

	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.Paren.Line(), "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	result, err := callable.Call(args)
	if err != nil {
		return nil, attachLine(err, e.Paren.Line())
	}
	return result, nil
}

// attachLine wraps a plain error (e.g. one a native function returns via
// fmt.Errorf) in a loxRuntimeError carrying line, so it renders the
// `MESSAGE\n[line L]` wire format. Errors that already carry their own
// line (a user function's body raised them further down the call stack)
// pass through unchanged.
func attachLine(err error, line int) error {
	switch err.(type) {
	case *loxRuntimeError, *loxerrors.RuntimeError:
		return err
	default:
		return newRuntimeError(line, "%s", err.Error())
	}
}

func (i *Interpreter) evalSuper(e *ast.Super) (runtime.Value, error) {
	distance, ok := i.locals[e]
	if !ok {
		return nil, newRuntimeError(e.Keyword.Line(), "Undefined variable 'super'.")
	}

	superVal, err := i.env.GetAt(distance, "super")
	if err != nil {
		return nil, newRuntimeError(e.Keyword.Line(), "%s", err.Error())
	}
	superclass, ok := superVal.(*LoxClass)
	if !ok {
		return nil, newRuntimeError(e.Keyword.Line(), "'super' is not a class.")
	}

	thisVal, err := i.env.GetAt(distance-1, "this")
	if err != nil {
		return nil, newRuntimeError(e.Keyword.Line(), "%s", err.Error())
	}
	instance, ok := thisVal.(*LoxInstance)
	if !ok {
		return nil, newRuntimeError(e.Keyword.Line(), "'this' is not an instance.")
	}

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Method.Line(), "Undefined property '%s'.", e.Method.Lexeme)
	}

	return method.Bind(instance), nil
}

func (i *Interpreter) execClass(s *ast.Class) error {
	var superclass *LoxClass
	if s.Superclass != nil {
		v, err := i.Eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*LoxClass)
		if !ok {
			return newRuntimeError(s.Superclass.Name.Line(), "Superclass must be a class.")
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, runtime.NilValue)

	env := i.env
	if superclass != nil {
		env = runtime.NewEnclosed(i.env)
		env.Define("super", superclass)
	}

	methods := make(map[string]*LoxFunction, len(s.Methods))
	for _, m := range s.Methods {
		isInit := m.Name.Lexeme == "init"
		methods[m.Name.Lexeme] = NewFunction(m, env, isInit, i)
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)

	if err := i.env.Assign(s.Name.Lexeme, class); err != nil {
		return newRuntimeError(s.Name.Line(), "%s", err.Error())
	}
	return nil
}
