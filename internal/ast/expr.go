package ast

import "github.com/cwbudde/golox/internal/token"

// Assign is `name = value`. The resolver records which scope declares
// Name in its side table, keyed by this node's identity.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Assign) exprNode() {}

// Binary is a two-operand infix expression: arithmetic, comparison or
// equality.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*Binary) exprNode() {}

// Call is a function or method invocation, `callee(args...)`.
type Call struct {
	Callee    Expr
	Paren     token.Token // used to report the call's line on arity errors
	Arguments []Expr
}

func (*Call) exprNode() {}

// Get is a property access, `object.name`.
type Get struct {
	Object Expr
	Name   token.Token
}

func (*Get) exprNode() {}

// Grouping is a parenthesized expression, kept distinct so the printer
// can reproduce the source grouping.
type Grouping struct {
	Expression Expr
}

func (*Grouping) exprNode() {}

// Literal is a Nil, bool, number, or string constant.
type Literal struct {
	Value any
}

func (*Literal) exprNode() {}

// Logical is `and`/`or`, kept distinct from Binary because both
// short-circuit instead of always evaluating both operands.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*Logical) exprNode() {}

// Set is a property assignment, `object.name = value`.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (*Set) exprNode() {}

// Super is a `super.method` reference inside a subclass method body.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (*Super) exprNode() {}

// This is a `this` reference inside a method body.
type This struct {
	Keyword token.Token
}

func (*This) exprNode() {}

// Unary is a single-operand prefix expression: `-x` or `!x`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (*Unary) exprNode() {}

// Variable is a bare identifier reference.
type Variable struct {
	Name token.Token
}

func (*Variable) exprNode() {}
