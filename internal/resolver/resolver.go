// Package resolver performs a single static pass over the AST that
// resolves every variable reference to a scope distance before the
// interpreter ever runs, and rejects a handful of statically-detectable
// misuses (returning from top level, `this` outside a method, a class
// inheriting from itself, and so on).
package resolver

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Locals maps an expression node (by identity) to the number of
// enclosing environments between its use and the scope that declares
// it. An expression absent from the map is resolved as global.
type Locals map[ast.Expr]int

// Resolver walks a parsed program once, building a Locals side table
// and reporting scope errors to a shared Reporter.
type Resolver struct {
	report  *errors.Reporter
	locals  Locals
	scopes  []map[string]bool
	fnType  functionType
	clsType classType
}

// New constructs a Resolver reporting errors to rep.
func New(rep *errors.Reporter) *Resolver {
	return &Resolver{report: rep, locals: make(Locals)}
}

// Resolve walks an entire program and returns the resulting Locals
// side table.
func (r *Resolver) Resolve(stmts []ast.Stmt) Locals {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.Class:
		r.resolveClass(s)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)

	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *ast.Print:
		r.resolveExpr(s.Expression)

	case *ast.Return:
		if r.fnType == functionNone {
			r.report.ReportAt(s.Keyword.Line(), s.Keyword.Lexeme, false,
				"Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.fnType == functionInitializer {
				r.report.ReportAt(s.Keyword.Line(), s.Keyword.Lexeme, false,
					"Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	}
}

func (r *Resolver) resolveClass(s *ast.Class) {
	enclosingClass := r.clsType
	r.clsType = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.report.ReportAt(s.Superclass.Name.Line(), s.Superclass.Name.Lexeme, false,
				"A class can't inherit from itself.")
		} else {
			r.clsType = classSubclass
			r.resolveExpr(s.Superclass)
		}

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		fnType := functionMethod
		if method.Name.Lexeme == "init" {
			fnType = functionInitializer
		}
		r.resolveFunction(method, fnType)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.clsType = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.Function, typ functionType) {
	enclosingFn := r.fnType
	r.fnType = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.fnType = enclosingFn
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Super:
		if r.clsType == classNone {
			r.report.ReportAt(e.Keyword.Line(), e.Keyword.Lexeme, false,
				"Can't use 'super' outside of a class.")
		} else if r.clsType != classSubclass {
			r.report.ReportAt(e.Keyword.Line(), e.Keyword.Lexeme, false,
				"Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.This:
		if r.clsType == classNone {
			r.report.ReportAt(e.Keyword.Line(), e.Keyword.Lexeme, false,
				"Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.report.ReportAt(e.Name.Line(), e.Name.Lexeme, false,
					"Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	}
}

func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any scope: treat as global, leave out of the table
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.report.ReportAt(name.Line(), name.Lexeme, false,
			"Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}
