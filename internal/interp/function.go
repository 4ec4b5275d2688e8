package interp

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/interp/runtime"
)

// LoxFunction is a user-defined function or method value: the parsed
// declaration plus the environment that was live when it was defined.
// Capturing that environment by pointer, rather than copying it, is
// what makes closures see later mutations of their captured variables.
type LoxFunction struct {
	declaration   *ast.Function
	closure       *runtime.Environment
	isInitializer bool
	interp        *Interpreter
}

// NewFunction wraps a parsed function declaration as a callable value.
func NewFunction(decl *ast.Function, closure *runtime.Environment, isInitializer bool, i *Interpreter) *LoxFunction {
	return &LoxFunction{declaration: decl, closure: closure, isInitializer: isInitializer, interp: i}
}

func (*LoxFunction) Type() string { return "function" }
func (f *LoxFunction) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

// Arity is the declared parameter count.
func (f *LoxFunction) Arity() int {
	return len(f.declaration.Params)
}

// Bind returns a new LoxFunction identical to f except its closure gains
// one more enclosing scope binding `this` to instance. Used when a
// method is looked up off an instance, so the method body can refer to
// `this` and, via the resolver's fixed distance, to `super`.
func (f *LoxFunction) Bind(instance *LoxInstance) *LoxFunction {
	env := runtime.NewEnclosed(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer, f.interp)
}

// Call runs the function body in a fresh scope enclosing its closure,
// binding each parameter to its argument. A `return` statement anywhere
// in the body — however deeply nested — unwinds here via panic/recover.
func (f *LoxFunction) Call(args []runtime.Value) (result runtime.Value, err error) {
	env := runtime.NewEnclosed(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.isInitializer {
				result, err = f.closure.GetAt(0, "this")
				return
			}
			result, err = sig.value, nil
		}
	}()

	if execErr := f.interp.ExecuteBlock(f.declaration.Body, env); execErr != nil {
		return nil, execErr
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this")
	}
	return runtime.NilValue, nil
}
