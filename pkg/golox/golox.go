// Package golox is the public facade over the language pipeline: lex,
// parse, resolve, evaluate. It gives callers (the cmd/golox CLI, and
// test harnesses) a single entry point instead of having to wire the
// internal/* packages together themselves.
package golox

import (
	"io"

	"github.com/loxlang/golox/internal/errors"
	"github.com/loxlang/golox/internal/interp"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
)

// Option configures the interpreter used by Run; it is a thin re-export of
// interp.Option so callers never need to import internal/interp directly.
type Option = interp.Option

// WithStdout overrides where the print() native writes.
func WithStdout(w io.Writer) Option { return interp.WithStdout(w) }

// WithClock overrides the clock() native's time source.
func WithClock(clock func() float64) Option { return interp.WithClock(clock) }

// Result reports every diagnostic produced while running a source file,
// grouped by the pipeline stage that produced it.
type Result struct {
	SyntaxErrors  []*errors.SourceError
	RuntimeErrors []*errors.SourceError
}

// HasErrors reports whether any diagnostic was produced.
func (r Result) HasErrors() bool {
	return len(r.SyntaxErrors) > 0 || len(r.RuntimeErrors) > 0
}

// Run executes source through the full pipeline. If any syntax error is
// found during lexing or parsing, resolution and evaluation are skipped
// entirely and Result.SyntaxErrors alone is populated.
func Run(source string, opts ...Option) Result {
	toks, lexErrs := lexer.New(source).Scan()

	var result Result
	for _, e := range lexErrs {
		result.SyntaxErrors = append(result.SyntaxErrors, errors.New(errors.Syntax, e.Pos, "%s", e.Message))
	}

	stmts, parseErrs := parser.New(toks).Parse()
	result.SyntaxErrors = append(result.SyntaxErrors, parseErrs...)
	if len(result.SyntaxErrors) > 0 {
		return result
	}

	resolveErrs := resolver.New().Resolve(stmts)
	result.SyntaxErrors = append(result.SyntaxErrors, resolveErrs...)
	if len(result.SyntaxErrors) > 0 {
		return result
	}

	interpreter := interp.New(io.Discard, opts...)
	result.RuntimeErrors = interpreter.Interpret(stmts)
	return result
}
