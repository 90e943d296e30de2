package ast

import "github.com/loxlang/golox/internal/token"

// ExpressionStmt is an expression evaluated for its side effects.
type ExpressionStmt struct {
	Expr Expr
}

func (s *ExpressionStmt) stmtNode()          {}
func (s *ExpressionStmt) Pos() token.Position { return s.Expr.Pos() }

// VarDeclItem is one "ident (= initializer)?" entry in a VarDecl list.
type VarDeclItem struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

// VarDecl is "let a = 1, b, c = 3;".
type VarDecl struct {
	Items []VarDeclItem
	Loc   token.Position // position of the 'let' keyword
}

func (s *VarDecl) stmtNode()          {}
func (s *VarDecl) Pos() token.Position { return s.Loc }

// Block is "{ stmt* }".
type Block struct {
	Stmts []Stmt
	Loc   token.Position // position of the '{'
}

func (s *Block) stmtNode()          {}
func (s *Block) Pos() token.Position { return s.Loc }

// If is "if (cond) then (else else)?".
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
	Loc  token.Position
}

func (s *If) stmtNode()          {}
func (s *If) Pos() token.Position { return s.Loc }

// While is "while (cond) body".
type While struct {
	Cond Expr
	Body Stmt
	Loc  token.Position
}

func (s *While) stmtNode()          {}
func (s *While) Pos() token.Position { return s.Loc }

// FunctionDecl is "function name(params) body", also used unchanged as the
// shape of a class method.
type FunctionDecl struct {
	Name   token.Token
	Params []token.Token
	Body   *Block
}

func (s *FunctionDecl) stmtNode()          {}
func (s *FunctionDecl) Pos() token.Position { return s.Name.Pos }

// Return is "return expr?;".
type Return struct {
	Value Expr // nil if absent
	Loc   token.Position // position of the 'return' keyword
}

func (s *Return) stmtNode()          {}
func (s *Return) Pos() token.Position { return s.Loc }

// ClassDecl is "class Name (extends Super)? { method* }".
type ClassDecl struct {
	Name       token.Token
	Superclass *Literal // IDENT literal, nil if no "extends" clause
	Methods    []*FunctionDecl
}

func (s *ClassDecl) stmtNode()          {}
func (s *ClassDecl) Pos() token.Position { return s.Name.Pos }
