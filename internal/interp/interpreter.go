// Package interp implements the evaluator: a post-resolution walk over
// the AST against a chain of Environments, consulting the hops recorded
// by the resolver to skip exactly the right number of enclosing scopes
// on every identifier read/write.
//
// The "current environment" is threaded explicitly as a parameter on
// every exec*/eval* method rather than kept as interpreter-instance or
// process-wide mutable state, so nested calls and closures can never
// clobber each other's scope.
package interp

import (
	"io"
	"time"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/errors"
	"github.com/loxlang/golox/internal/token"
)

// Interpreter holds the global environment and the external collaborators
// the native functions depend on: the output sink and the clock source.
type Interpreter struct {
	Globals *Environment
	out     io.Writer
	clock   func() float64
}

// Option configures an Interpreter at construction time, following the
// functional-options idiom so callers only need to name the settings
// they want to override.
type Option func(*Interpreter)

// WithStdout overrides the writer print() writes to (default: the writer
// passed to New).
func WithStdout(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithClock overrides the function backing clock() (default time.Now,
// reported in milliseconds). Tests substitute a deterministic clock.
func WithClock(clock func() float64) Option {
	return func(i *Interpreter) { i.clock = clock }
}

// New constructs an Interpreter with the global environment pre-populated
// with the clock, print, and str natives.
func New(out io.Writer, opts ...Option) *Interpreter {
	interp := &Interpreter{
		Globals: NewGlobalEnvironment(),
		out:     out,
		clock:   func() float64 { return float64(time.Now().UnixMilli()) },
	}
	for _, opt := range opts {
		opt(interp)
	}
	interp.installNatives()
	return interp
}

// Interpret executes every top-level statement. Each statement is
// executed independently: a runtime error during one is reported and
// execution continues with the next. A "return" signal that escapes
// every function frame (i.e. occurs at top level) is reported as a
// Runtime error at the return token's location.
func (interp *Interpreter) Interpret(stmts []ast.Stmt) []*errors.SourceError {
	var errs []*errors.SourceError
	for _, stmt := range stmts {
		if err := interp.execTopLevel(stmt); err != nil {
			errs = append(errs, interp.asSourceError(err))
		}
	}
	return errs
}

func (interp *Interpreter) execTopLevel(stmt ast.Stmt) error {
	sig, err := interp.execStmt(stmt, interp.Globals)
	if err != nil {
		return err
	}
	if sig != nil && sig.kind == signalReturn {
		return runtimeErrorf(stmt.Pos(), "'return' outside of a function")
	}
	return nil
}

func (interp *Interpreter) asSourceError(err error) *errors.SourceError {
	if se, ok := err.(*errors.SourceError); ok {
		return se
	}
	return errors.New(errors.Runtime, token.Position{}, "%s", err.Error())
}

func runtimeErrorf(pos token.Position, format string, args ...any) error {
	return errors.New(errors.Runtime, pos, format, args...)
}
