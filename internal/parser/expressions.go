package parser

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
)

// expression := assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// compoundOps maps a compound-assignment token kind to the binary operator
// it desugars into: "x += e" becomes "x = x + e".
var compoundOps = map[token.Kind]token.Kind{
	token.PLUS_EQUAL:  token.PLUS,
	token.MINUS_EQUAL: token.MINUS,
	token.STAR_EQUAL:  token.STAR,
	token.SLASH_EQUAL: token.SLASH,
}

// assignment := ternary ( ("=" | "+=" | "-=" | "*=" | "/=") assignment )?
// Right-associative; only an identifier literal or InstanceGet may appear
// as an lvalue.
func (p *Parser) assignment() ast.Expr {
	expr := p.ternary()

	if p.check(token.EQUAL) || p.check(token.PLUS_EQUAL) || p.check(token.MINUS_EQUAL) ||
		p.check(token.STAR_EQUAL) || p.check(token.SLASH_EQUAL) {
		opTok := p.advance()

		if !isValidLValue(expr) {
			p.throw(opTok.Pos, "invalid assignment target")
		}

		rvalue := p.assignment()

		if opTok.Kind == token.EQUAL {
			return &ast.Assignment{LValue: expr, RValue: rvalue, Eq: opTok}
		}

		binOpKind := compoundOps[opTok.Kind]
		synthesized := token.Token{
			Kind:   binOpKind,
			Lexeme: binOpKind.String(),
			Pos:    token.Position{Row: rvalue.Pos().Row, Col: rvalue.Pos().Col + 1},
		}
		desugaredRHS := &ast.Binary{Left: expr, Op: synthesized, Right: rvalue}
		return &ast.Assignment{LValue: expr, RValue: desugaredRHS, Eq: opTok}
	}

	return expr
}

func isValidLValue(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Token.Kind == token.IDENT
	case *ast.InstanceGet:
		return true
	default:
		return false
	}
}

// ternary := equality ("?" ternary ":" ternary)?
func (p *Parser) ternary() ast.Expr {
	cond := p.equality()
	if p.match(token.QUESTION) {
		loc := p.previous().Pos
		then := p.ternary()
		p.expect(token.COLON, "expected ':' in ternary expression")
		elseBranch := p.ternary()
		return &ast.Ternary{Cond: cond, Then: then, Else: elseBranch, Loc: loc}
	}
	return cond
}

// equality := comparison ( ("==" | "!=") comparison )*
func (p *Parser) equality() ast.Expr {
	return p.leftAssocBinary(p.comparison, token.EQUAL_EQUAL, token.BANG_EQUAL)
}

// comparison := term ( ("<" | "<=" | ">" | ">=") term )*
func (p *Parser) comparison() ast.Expr {
	return p.leftAssocBinary(p.term, token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL)
}

// term := factor ( ("+" | "-") factor )*
func (p *Parser) term() ast.Expr {
	return p.leftAssocBinary(p.factor, token.PLUS, token.MINUS)
}

// factor := power ( ("*" | "/") power )*
func (p *Parser) factor() ast.Expr {
	return p.leftAssocBinary(p.power, token.STAR, token.SLASH)
}

// power := unary ( "^" unary )*
func (p *Parser) power() ast.Expr {
	return p.leftAssocBinary(p.unary, token.CARET)
}

func (p *Parser) leftAssocBinary(operand func() ast.Expr, kinds ...token.Kind) ast.Expr {
	expr := operand()
	for p.match(kinds...) {
		op := p.previous()
		right := operand()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary := ident ("++"|"--")                          -- postfix
//        | ("-"|"+"|"!"|"++"|"--") unary
//        | classInstantiation
func (p *Parser) unary() ast.Expr {
	if p.check(token.IDENT) && (p.peekNextKind() == token.PLUS_PLUS || p.peekNextKind() == token.MINUS_MINUS) {
		name := p.advance()
		op := p.advance()
		return &ast.Unary{Op: op, Operand: &ast.Literal{Token: name}, IsPostfix: true}
	}

	if p.match(token.MINUS, token.PLUS, token.BANG, token.PLUS_PLUS, token.MINUS_MINUS) {
		op := p.previous()
		operand := p.unary()
		return &ast.Unary{Op: op, Operand: operand, IsPostfix: false}
	}

	return p.classInstantiation()
}

func (p *Parser) peekNextKind() token.Kind {
	if p.current+1 >= len(p.tokens) {
		return token.EOF
	}
	return p.tokens[p.current+1].Kind
}

// classInstantiation := "new" call | call
func (p *Parser) classInstantiation() ast.Expr {
	if p.match(token.NEW) {
		loc := p.previous().Pos
		expr := p.call()
		// "new" takes the innermost call of the chain: "new B().m()" is "(new B()).m()".
		var innerSlot *ast.Expr
		for slot := &expr; slot != nil; {
			switch n := (*slot).(type) {
			case *ast.Call:
				innerSlot, slot = slot, &n.Callee
			case *ast.InstanceGet:
				slot = &n.Instance
			default:
				slot = nil
			}
		}
		if innerSlot == nil {
			p.throw(loc, "'new' must be followed by a call expression")
		}
		*innerSlot = &ast.ClassInstantiation{Call: (*innerSlot).(*ast.Call), Loc: loc}
		return expr
	}
	return p.call()
}

// call := primary ( "(" args? ")" | "." ident )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.check(token.LPAREN):
			loc := p.advance().Pos
			var args []ast.Expr
			if !p.check(token.RPAREN) {
				for {
					args = append(args, p.expression())
					if !p.match(token.COMMA) {
						break
					}
				}
			}
			p.expect(token.RPAREN, "expected ')' after arguments")
			expr = &ast.Call{Callee: expr, Args: args, Loc: loc}
		case p.check(token.DOT):
			p.advance()
			prop := p.expect(token.IDENT, "expected property name after '.'")
			expr = &ast.InstanceGet{Instance: expr, Property: prop}
		default:
			return expr
		}
	}
}

// primary := NUMBER | STRING | TRUE | FALSE | NONE | IDENT
//          | "this" | "super" "." ident | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.NUMBER, token.STRING, token.TRUE, token.FALSE, token.NONE, token.IDENT):
		return &ast.Literal{Token: p.previous()}
	case p.match(token.THIS):
		return &ast.This{Loc: p.previous().Pos}
	case p.match(token.SUPER):
		loc := p.previous().Pos
		p.expect(token.DOT, "expected '.' after 'super'")
		prop := p.expect(token.IDENT, "expected superclass method name after 'super.'")
		return &ast.Super{Loc: loc, Property: prop}
	case p.match(token.LPAREN):
		loc := p.previous().Pos
		inner := p.expression()
		p.expect(token.RPAREN, "expected ')' after expression")
		return &ast.Grouping{Inner: inner, Loc: loc}
	}
	p.throw(p.peek().Pos, "expected expression, found %q", p.peek().Lexeme)
	panic("unreachable")
}
