// Package ast defines the node types produced by the parser and walked
// by the resolver and interpreter. Each node kind is its own struct
// rather than a shared visitor interface; dispatch happens by type
// switch in the resolver and interpreter.
package ast

// Expr is any expression node. Resolver and interpreter dispatch on the
// concrete type with a type switch.
type Expr interface {
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}
