package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanEndsInSingleEOF(t *testing.T) {
	toks, errs := lexer.New("let a = 1;").Scan()
	require.Empty(t, errs)
	require.NotEmpty(t, toks)
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)

	count := 0
	for _, tk := range toks {
		if tk.Kind == token.EOF {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one EOF token")
}

func TestOperatorsMatchedGreedily(t *testing.T) {
	toks, errs := lexer.New("a++ b-- c+=1 d-=1 e*=2 f/=2 g<=h g>=h i==j i!=j").Scan()
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.IDENT, token.PLUS_PLUS,
		token.IDENT, token.MINUS_MINUS,
		token.IDENT, token.PLUS_EQUAL, token.NUMBER,
		token.IDENT, token.MINUS_EQUAL, token.NUMBER,
		token.IDENT, token.STAR_EQUAL, token.NUMBER,
		token.IDENT, token.SLASH_EQUAL, token.NUMBER,
		token.IDENT, token.LESS_EQUAL, token.IDENT,
		token.IDENT, token.GREATER_EQUAL, token.IDENT,
		token.IDENT, token.EQUAL_EQUAL, token.IDENT,
		token.IDENT, token.BANG_EQUAL, token.IDENT,
		token.EOF,
	}, kinds(toks))
}

func TestRowColTracking(t *testing.T) {
	toks, errs := lexer.New("let a = 1;\nlet b = 2;").Scan()
	require.Empty(t, errs)

	var bTok token.Token
	for _, tk := range toks {
		if tk.Kind == token.IDENT && tk.Lexeme == "b" {
			bTok = tk
		}
	}
	assert.Equal(t, 2, bTok.Pos.Row)
	assert.Equal(t, 5, bTok.Pos.Col)
}

func TestConstructorIsOrdinaryIdentifier(t *testing.T) {
	toks, errs := lexer.New("constructor").Scan()
	require.Empty(t, errs)
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENT, toks[0].Kind)
}

func TestUnterminatedStringIsError(t *testing.T) {
	toks, errs := lexer.New(`"hello`).Scan()
	require.Len(t, errs, 1)
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
}

func TestBlockCommentSpansLines(t *testing.T) {
	toks, errs := lexer.New("let a/* comment\nspanning lines */= 1;").Scan()
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{token.LET, token.IDENT, token.EQUAL, token.NUMBER, token.SEMICOLON, token.EOF}, kinds(toks))
}

func TestHashAndSlashSlashComments(t *testing.T) {
	toks, errs := lexer.New("let a = 1; // c1\n# c2\nlet b = 2;").Scan()
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.LET, token.IDENT, token.EQUAL, token.NUMBER, token.SEMICOLON,
		token.LET, token.IDENT, token.EQUAL, token.NUMBER, token.SEMICOLON,
		token.EOF,
	}, kinds(toks))
}

func TestNumberLiteral(t *testing.T) {
	toks, errs := lexer.New("3.1415").Scan()
	require.Empty(t, errs)
	require.Equal(t, token.NUMBER, toks[0].Kind)
	assert.InDelta(t, 3.1415, toks[0].Literal.(float64), 1e-9)
}

func TestUnexpectedCharacterReportsAndContinues(t *testing.T) {
	toks, errs := lexer.New("let a = @1;").Scan()
	require.Len(t, errs, 1)
	assert.Equal(t, []token.Kind{token.LET, token.IDENT, token.EQUAL, token.ILLEGAL, token.NUMBER, token.SEMICOLON, token.EOF}, kinds(toks))
}
