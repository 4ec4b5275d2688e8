// Package printer renders Lox AST nodes back into a parenthesized
// Lisp-like textual form, used by the CLI's -p/--print flag and by
// tests that want a stable textual fingerprint of a parsed tree.
package printer

import (
	"fmt"
	"strings"

	"github.com/cwbudde/golox/internal/ast"
)

// Print renders a single expression as `(operator operand...)`.
func Print(e ast.Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

// PrintStmt renders a single statement.
func PrintStmt(s ast.Stmt) string {
	var b strings.Builder
	writeStmt(&b, s)
	return b.String()
}

func parenthesize(b *strings.Builder, name string, parts ...any) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, p := range parts {
		b.WriteByte(' ')
		switch v := p.(type) {
		case ast.Expr:
			writeExpr(b, v)
		case ast.Stmt:
			writeStmt(b, v)
		case string:
			b.WriteString(v)
		default:
			fmt.Fprintf(b, "%v", v)
		}
	}
	b.WriteByte(')')
}

func writeExpr(b *strings.Builder, e ast.Expr) {
	switch n := e.(type) {
	case nil:
		b.WriteString("nil")
	case *ast.Assign:
		parenthesize(b, "= "+n.Name.Lexeme, n.Value)
	case *ast.Binary:
		parenthesize(b, n.Operator.Lexeme, n.Left, n.Right)
	case *ast.Call:
		args := make([]any, 0, len(n.Arguments)+1)
		args = append(args, n.Callee)
		for _, a := range n.Arguments {
			args = append(args, a)
		}
		parenthesize(b, "call", args...)
	case *ast.Get:
		parenthesize(b, "get "+n.Name.Lexeme, n.Object)
	case *ast.Grouping:
		parenthesize(b, "group", n.Expression)
	case *ast.Literal:
		b.WriteString(literalString(n.Value))
	case *ast.Logical:
		parenthesize(b, n.Operator.Lexeme, n.Left, n.Right)
	case *ast.Set:
		parenthesize(b, "set "+n.Name.Lexeme, n.Object, n.Value)
	case *ast.Super:
		b.WriteString("(super " + n.Method.Lexeme + ")")
	case *ast.This:
		b.WriteString("this")
	case *ast.Unary:
		parenthesize(b, n.Operator.Lexeme, n.Right)
	case *ast.Variable:
		b.WriteString(n.Name.Lexeme)
	default:
		fmt.Fprintf(b, "<unknown expr %T>", e)
	}
}

func literalString(v any) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}

func writeStmt(b *strings.Builder, s ast.Stmt) {
	switch n := s.(type) {
	case nil:
		b.WriteString("nil")
	case *ast.Block:
		b.WriteString("(block")
		for _, st := range n.Statements {
			b.WriteByte(' ')
			writeStmt(b, st)
		}
		b.WriteByte(')')
	case *ast.Class:
		b.WriteString("(class " + n.Name.Lexeme)
		if n.Superclass != nil {
			b.WriteString(" < " + n.Superclass.Name.Lexeme)
		}
		for _, m := range n.Methods {
			b.WriteByte(' ')
			writeStmt(b, m)
		}
		b.WriteByte(')')
	case *ast.ExpressionStmt:
		parenthesize(b, ";", n.Expression)
	case *ast.Function:
		b.WriteString("(fun " + n.Name.Lexeme + " (")
		for i, p := range n.Params {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(p.Lexeme)
		}
		b.WriteString(")")
		for _, st := range n.Body {
			b.WriteByte(' ')
			writeStmt(b, st)
		}
		b.WriteByte(')')
	case *ast.If:
		if n.ElseBranch != nil {
			parenthesize(b, "if-else", n.Condition, n.ThenBranch, n.ElseBranch)
		} else {
			parenthesize(b, "if", n.Condition, n.ThenBranch)
		}
	case *ast.Print:
		parenthesize(b, "print", n.Expression)
	case *ast.Return:
		if n.Value != nil {
			parenthesize(b, "return", n.Value)
		} else {
			b.WriteString("(return)")
		}
	case *ast.Var:
		if n.Initializer != nil {
			parenthesize(b, "var "+n.Name.Lexeme, n.Initializer)
		} else {
			b.WriteString("(var " + n.Name.Lexeme + ")")
		}
	case *ast.While:
		parenthesize(b, "while", n.Condition, n.Body)
	default:
		fmt.Fprintf(b, "<unknown stmt %T>", s)
	}
}
