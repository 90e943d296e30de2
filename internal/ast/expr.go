package ast

import "github.com/loxlang/golox/internal/token"

// Literal covers numbers, strings, true/false/none, and identifier
// references: anything that reads as a single token in primary().
// Kind mirrors Token.Kind: token.NUMBER, token.STRING, token.TRUE,
// token.FALSE, token.NONE, or token.IDENT.
//
// Hops is populated by the resolver for IDENT literals: nil means
// "resolve as global", otherwise it is the number of enclosing
// environments to skip to reach the declaring scope.
type Literal struct {
	Token token.Token
	Hops  *int
}

func (l *Literal) exprNode()          {}
func (l *Literal) Pos() token.Position { return l.Token.Pos }

// Grouping is a parenthesized expression, kept as its own node so that
// "(a, b)"-shaped lvalue mistakes and similar can be reported precisely.
type Grouping struct {
	Inner Expr
	Loc   token.Position
}

func (g *Grouping) exprNode()          {}
func (g *Grouping) Pos() token.Position { return g.Loc }

// Unary is a prefix or postfix "-", "+", "!", "++", "--" application.
type Unary struct {
	Op        token.Token
	Operand   Expr
	IsPostfix bool
}

func (u *Unary) exprNode()          {}
func (u *Unary) Pos() token.Position { return u.Op.Pos }

// Binary is a left-op-right expression for the arithmetic, comparison and
// equality operators.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (b *Binary) exprNode()          {}
func (b *Binary) Pos() token.Position { return b.Op.Pos }

// Ternary is "cond ? then : else".
type Ternary struct {
	Cond, Then, Else Expr
	Loc              token.Position
}

func (t *Ternary) exprNode()          {}
func (t *Ternary) Pos() token.Position { return t.Loc }

// Assignment is "lvalue = rvalue". LValue is either a *Literal carrying an
// IDENT token, or an *InstanceGet.
type Assignment struct {
	LValue Expr
	RValue Expr
	Eq     token.Token
}

func (a *Assignment) exprNode()          {}
func (a *Assignment) Pos() token.Position { return a.Eq.Pos }

// Call is "callee(args...)".
type Call struct {
	Callee Expr
	Args   []Expr
	Loc    token.Position // position of the opening '('
}

func (c *Call) exprNode()          {}
func (c *Call) Pos() token.Position { return c.Loc }

// InstanceGet is "instance.property".
type InstanceGet struct {
	Instance Expr
	Property token.Token
}

func (g *InstanceGet) exprNode()          {}
func (g *InstanceGet) Pos() token.Position { return g.Property.Pos }

// ClassInstantiation is the desugaring of "new Callee(args)".
type ClassInstantiation struct {
	Call *Call
	Loc  token.Position // position of the 'new' keyword
}

func (n *ClassInstantiation) exprNode()          {}
func (n *ClassInstantiation) Pos() token.Position { return n.Loc }

// This is a "this" reference. Hops is populated by the resolver exactly
// like a Literal identifier reference to the reserved name "this".
type This struct {
	Loc  token.Position
	Hops *int
}

func (t *This) exprNode()          {}
func (t *This) Pos() token.Position { return t.Loc }

// Super is "super.property". Hops is resolved identically to a "this"
// reference: the evaluator walks Hops parents from the current
// environment to find the environment holding "this", then follows that
// instance's class to its superclass.
type Super struct {
	Loc      token.Position
	Property token.Token
	Hops     *int
}

func (s *Super) exprNode()          {}
func (s *Super) Pos() token.Position { return s.Loc }
