package parser

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
)

// statement := classDecl | funcDecl | return | while | if | block
//            | varDecl | exprStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.check(token.CLASS):
		return p.classDecl()
	case p.check(token.FUNCTION):
		return p.funcDecl()
	case p.check(token.RETURN):
		return p.returnStmt()
	case p.check(token.WHILE):
		return p.whileStmt()
	case p.check(token.IF):
		return p.ifStmt()
	case p.check(token.LBRACE):
		return p.block()
	case p.check(token.LET):
		return p.varDecl()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON, "expected ';' after expression")
	return &ast.ExpressionStmt{Expr: expr}
}

// varDecl := "let" declList ";"
// declList := ident ("=" expression)? ("," ident ("=" expression)?)*
func (p *Parser) varDecl() ast.Stmt {
	loc := p.advance().Pos // consume 'let'
	decl := &ast.VarDecl{Loc: loc}
	for {
		name := p.expect(token.IDENT, "expected variable name")
		item := ast.VarDeclItem{Name: name}
		if p.match(token.EQUAL) {
			item.Initializer = p.expression()
		}
		decl.Items = append(decl.Items, item)
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.SEMICOLON, "expected ';' after variable declaration")
	return decl
}

// block := "{" statement* "}"
func (p *Parser) block() *ast.Block {
	loc := p.expect(token.LBRACE, "expected '{'").Pos
	blk := &ast.Block{Loc: loc}
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		stmt, ok := p.safeStatement()
		if ok {
			blk.Stmts = append(blk.Stmts, stmt)
		}
	}
	p.expect(token.RBRACE, "expected '}' to close block")
	return blk
}

// if := "if" "(" expression ")" statement ("else" statement)?
func (p *Parser) ifStmt() ast.Stmt {
	loc := p.advance().Pos // 'if'
	p.expect(token.LPAREN, "expected '(' after 'if'")
	cond := p.expression()
	p.expect(token.RPAREN, "expected ')' after if condition")
	then := p.statement()
	stmt := &ast.If{Cond: cond, Then: then, Loc: loc}
	if p.match(token.ELSE) {
		stmt.Else = p.statement()
	}
	return stmt
}

// while := "while" "(" expression ")" statement
func (p *Parser) whileStmt() ast.Stmt {
	loc := p.advance().Pos // 'while'
	p.expect(token.LPAREN, "expected '(' after 'while'")
	cond := p.expression()
	p.expect(token.RPAREN, "expected ')' after while condition")
	body := p.statement()
	return &ast.While{Cond: cond, Body: body, Loc: loc}
}

// funcDecl := "function" ident "(" params? ")" block
func (p *Parser) funcDecl() ast.Stmt {
	p.advance() // 'function'
	return p.functionRest()
}

// functionRest parses "ident ( params? ) block", shared between
// top-level function declarations and class methods, which have
// identical shape.
func (p *Parser) functionRest() *ast.FunctionDecl {
	name := p.expect(token.IDENT, "expected a name")
	p.expect(token.LPAREN, "expected '(' after name")
	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			params = append(params, p.expect(token.IDENT, "expected parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "expected ')' after parameters")
	body := p.block()
	return &ast.FunctionDecl{Name: name, Params: params, Body: body}
}

// return := "return" expression? ";"
func (p *Parser) returnStmt() ast.Stmt {
	loc := p.advance().Pos // 'return'
	stmt := &ast.Return{Loc: loc}
	if !p.check(token.SEMICOLON) {
		stmt.Value = p.expression()
	}
	p.expect(token.SEMICOLON, "expected ';' after return value")
	return stmt
}

// classDecl := "class" ident ("extends" ident)? "{" method* "}"
func (p *Parser) classDecl() ast.Stmt {
	p.advance() // 'class'
	name := p.expect(token.IDENT, "expected class name")
	decl := &ast.ClassDecl{Name: name}
	if p.match(token.EXTENDS) {
		superName := p.expect(token.IDENT, "expected superclass name")
		decl.Superclass = &ast.Literal{Token: superName}
	}
	p.expect(token.LBRACE, "expected '{' before class body")
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		decl.Methods = append(decl.Methods, p.functionRest())
	}
	p.expect(token.RBRACE, "expected '}' after class body")
	return decl
}
