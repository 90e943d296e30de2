// Package resolver implements the static scope-resolution pass: a
// pre-order walk over the parsed AST that annotates every identifier
// reference (and "this" expression) with the number of enclosing
// environments ("hops") the evaluator must skip at runtime to reach its
// declaring scope.
//
// The walk keeps a stack of "declared but not yet defined" scope maps
// and resolves a reference by searching that stack top-down. Rather
// than keying a side-table by AST node identity, resolved hops are
// written directly onto the reference node (ast.Literal.Hops /
// ast.This.Hops), which keeps the evaluator from needing any lookup
// structure beyond the node itself.
package resolver

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/errors"
	"github.com/loxlang/golox/internal/token"
)

// scope maps a name to whether its declaration has finished (defined)
// or is still mid-initializer (declared only).
type scope map[string]bool

// Resolver performs the resolution pass over a parsed program.
type Resolver struct {
	scopes []scope
	errs   []*errors.SourceError
}

// New creates a Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve walks stmts in order and returns every resolution error found.
// It never stops at the first error: a self-initializing use is reported
// as a Syntax error here, but every other mistake is left for the
// evaluator to report at runtime, so the resolver collects everything it
// can before returning.
func (r *Resolver) Resolve(stmts []ast.Stmt) []*errors.SourceError {
	r.resolveStmts(stmts)
	return r.errs
}

func (r *Resolver) errorf(pos token.Position, format string, args ...any) {
	r.errs = append(r.errs, errors.New(errors.Syntax, pos, format, args...))
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveName searches the scope stack top-down for name and returns the
// hop count to reach it, or (0, false) if it resolves as global.
func (r *Resolver) resolveName(name string) (int, bool) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			return len(r.scopes) - 1 - i, true
		}
	}
	return 0, false
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.VarDecl:
		for i := range s.Items {
			r.declare(s.Items[i].Name.Lexeme)
			if s.Items[i].Initializer != nil {
				r.resolveExpr(s.Items[i].Initializer)
			}
			r.define(s.Items[i].Name.Lexeme)
		}

	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.If:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.While:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.FunctionDecl:
		r.define(s.Name.Lexeme)
		r.resolveFunction(s)

	case *ast.Return:
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}

	case *ast.ClassDecl:
		r.define(s.Name.Lexeme)
		if s.Superclass != nil {
			r.resolveExpr(s.Superclass)
		}
		r.beginScope()
		r.define("this")
		for _, method := range s.Methods {
			r.resolveFunction(method)
		}
		r.endScope()

	default:
		panic("resolver: unhandled statement type")
	}
}

// resolveFunction pushes the function's own parameter scope and walks its
// body, used identically for top-level functions and class methods.
func (r *Resolver) resolveFunction(fn *ast.FunctionDecl) {
	r.beginScope()
	for _, param := range fn.Params {
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body.Stmts)
	r.endScope()
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Literal:
		if e.Token.Kind != token.IDENT {
			return
		}
		r.resolveIdentRef(e.Token.Lexeme, e.Token.Pos, func(hops int) { e.Hops = &hops })

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Unary:
		r.resolveExpr(e.Operand)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Ternary:
		r.resolveExpr(e.Cond)
		r.resolveExpr(e.Then)
		r.resolveExpr(e.Else)

	case *ast.Assignment:
		if lit, ok := e.LValue.(*ast.Literal); ok {
			r.resolveIdentRef(lit.Token.Lexeme, lit.Token.Pos, func(hops int) { lit.Hops = &hops })
		} else {
			r.resolveExpr(e.LValue)
		}
		r.resolveExpr(e.RValue)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.InstanceGet:
		r.resolveExpr(e.Instance)

	case *ast.ClassInstantiation:
		r.resolveExpr(e.Call)

	case *ast.This:
		r.resolveIdentRef("this", e.Loc, func(hops int) { e.Hops = &hops })

	case *ast.Super:
		r.resolveIdentRef("this", e.Loc, func(hops int) { e.Hops = &hops })

	default:
		panic("resolver: unhandled expression type")
	}
}

// resolveIdentRef resolves one identifier reference at pos: it rejects
// self-initializing use ("let a = a;"), then, if the name resolves to a
// local scope, calls record with the hop count.
func (r *Resolver) resolveIdentRef(name string, pos token.Position, record func(hops int)) {
	if len(r.scopes) > 0 {
		if defined, declaredHere := r.scopes[len(r.scopes)-1][name]; declaredHere && !defined {
			r.errorf(pos, "cannot use same variable for initialization")
		}
	}
	if hops, ok := r.resolveName(name); ok {
		record(hops)
	}
}
