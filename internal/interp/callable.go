package interp

import "github.com/loxlang/golox/internal/ast"

// Callable is implemented by every invocable Value: user-defined
// functions/methods and native functions.
type Callable interface {
	Value
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
}

// Function is a user-defined function or method value: an AST body
// paired with the environment captured at its creation site, its
// closure. The closure keeps the declaring scope alive for as long as
// any value referencing it survives.
type Function struct {
	Decl      *ast.FunctionDecl
	Closure   *Environment
	isMethod  bool
	isInitCtr bool // true if this is a class's "constructor" method
}

func (*Function) isValue() {}

func (f *Function) Arity() int { return len(f.Decl.Params) }

// Call creates the call-frame environment: its parent is the closure
// environment (or, for a bound method, the "this" environment layered on
// top of the closure, see bind below), each parameter is defined there,
// and the body statements execute directly inside it. There is no
// further nested block environment for the body, matching the resolver,
// which resolves a function body's statements in the same scope as its
// parameters.
func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	frame := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Decl.Params {
		frame.DefineOrOverwrite(param.Lexeme, args[i])
	}

	sig, err := interp.execBlockStmts(f.Decl.Body.Stmts, frame)
	if err != nil {
		return nil, err
	}
	if sig != nil && sig.kind == signalReturn {
		return sig.value, nil
	}
	return noneValue, nil
}

// bind produces a method value bound to instance: a new Function whose
// closure is a fresh environment, parented at the unbound method's own
// closure, with "this" defined in it. This is why a "this" reference
// inside a method body resolves with hops == 1: one environment (this
// one) separates the call frame from the class's original closure.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.DefineOrOverwrite("this", instance)
	return &Function{Decl: f.Decl, Closure: env, isMethod: true, isInitCtr: f.isInitCtr}
}

// NativeFunction wraps a Go function as a callable Value, used for the
// clock(), print(), and str() builtins.
type NativeFunction struct {
	name  string
	arity int
	fn    func(interp *Interpreter, args []Value) (Value, error)
}

func (*NativeFunction) isValue() {}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(interp *Interpreter, args []Value) (Value, error) {
	return n.fn(interp, args)
}
