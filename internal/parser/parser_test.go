package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, lexErrs := lexer.New(src).Scan()
	require.Empty(t, lexErrs)
	stmts, errs := parser.New(toks).Parse()
	require.Empty(t, errs, "unexpected parse errors")
	return stmts
}

func TestParseVarDeclMultiple(t *testing.T) {
	stmts := parse(t, "let a = 1, b, c = 3;")
	require.Len(t, stmts, 1)
	decl := stmts[0].(*ast.VarDecl)
	require.Len(t, decl.Items, 3)
	assert.Equal(t, "a", decl.Items[0].Name.Lexeme)
	assert.NotNil(t, decl.Items[0].Initializer)
	assert.Nil(t, decl.Items[1].Initializer)
	assert.NotNil(t, decl.Items[2].Initializer)
}

func TestCompoundAssignmentDesugars(t *testing.T) {
	stmts := parse(t, "x += 1;")
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	assign := exprStmt.Expr.(*ast.Assignment)
	bin := assign.RValue.(*ast.Binary)
	assert.Equal(t, "x", assign.LValue.(*ast.Literal).Token.Lexeme)
	assert.Equal(t, "+", bin.Op.Lexeme)
	left := bin.Left.(*ast.Literal)
	assert.Equal(t, "x", left.Token.Lexeme)
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	stmts := parse(t, "a = b = 1;")
	assign := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.Assignment)
	assert.Equal(t, "a", assign.LValue.(*ast.Literal).Token.Lexeme)
	inner := assign.RValue.(*ast.Assignment)
	assert.Equal(t, "b", inner.LValue.(*ast.Literal).Token.Lexeme)
}

func TestInvalidAssignmentTargetIsSyntaxError(t *testing.T) {
	toks, _ := lexer.New("1 = 2;").Scan()
	_, errs := parser.New(toks).Parse()
	require.Len(t, errs, 1)
}

func TestTernaryPrecedenceOverEquality(t *testing.T) {
	stmts := parse(t, "a == b ? 1 : 2;")
	tern := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.Ternary)
	_, ok := tern.Cond.(*ast.Binary)
	assert.True(t, ok)
}

func TestPowerIsLeftOfUnary(t *testing.T) {
	stmts := parse(t, "-a^2;")
	bin := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.Binary)
	assert.Equal(t, "^", bin.Op.Lexeme)
	_, ok := bin.Left.(*ast.Unary)
	assert.True(t, ok, "(-a)^2, unary minus binds tighter than power")
}

func TestPostfixIncrement(t *testing.T) {
	stmts := parse(t, "x++;")
	un := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.Unary)
	assert.True(t, un.IsPostfix)
	assert.Equal(t, "++", un.Op.Lexeme)
}

func TestPrefixDecrement(t *testing.T) {
	stmts := parse(t, "--x;")
	un := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.Unary)
	assert.False(t, un.IsPostfix)
	assert.Equal(t, "--", un.Op.Lexeme)
}

func TestNewRequiresCallExpression(t *testing.T) {
	toks, _ := lexer.New("new 1;").Scan()
	_, errs := parser.New(toks).Parse()
	require.Len(t, errs, 1)
}

func TestClassDeclWithExtends(t *testing.T) {
	stmts := parse(t, `class B extends A { greet() { return 1; } }`)
	decl := stmts[0].(*ast.ClassDecl)
	require.NotNil(t, decl.Superclass)
	assert.Equal(t, "A", decl.Superclass.Token.Lexeme)
	require.Len(t, decl.Methods, 1)
	assert.Equal(t, "greet", decl.Methods[0].Name.Lexeme)
}

func TestMethodNamedConstructorIsOrdinary(t *testing.T) {
	stmts := parse(t, `class C { constructor() { return 1; } }`)
	decl := stmts[0].(*ast.ClassDecl)
	assert.Equal(t, "constructor", decl.Methods[0].Name.Lexeme)
}

func TestSuperPropertyAccess(t *testing.T) {
	stmts := parse(t, `super.greet();`)
	call := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.Call)
	sup := call.Callee.(*ast.Super)
	assert.Equal(t, "greet", sup.Property.Lexeme)
}

func TestPanicModeRecoversAtSemicolon(t *testing.T) {
	toks, _ := lexer.New("let = ; let a = 1;").Scan()
	stmts, errs := parser.New(toks).Parse()
	require.NotEmpty(t, errs)
	require.Len(t, stmts, 1)
	decl := stmts[0].(*ast.VarDecl)
	assert.Equal(t, "a", decl.Items[0].Name.Lexeme)
}

func TestPanicModeRecoversAtBrace(t *testing.T) {
	toks, _ := lexer.New("{ let = ; } let a = 1;").Scan()
	stmts, errs := parser.New(toks).Parse()
	require.NotEmpty(t, errs)
	require.Len(t, stmts, 2)
}
