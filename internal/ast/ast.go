// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the resolver and evaluator.
//
// Nodes are tagged variants (plain structs implementing small marker
// interfaces) rather than a class hierarchy with virtual dispatch: the
// resolver and evaluator switch on the concrete Go type. The compiler
// does not check those switches for exhaustiveness; each one panics on a
// node type it does not handle.
package ast

import "github.com/loxlang/golox/internal/token"

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Position
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}
