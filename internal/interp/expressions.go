package interp

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
)

// eval evaluates expr against env, consulting the resolver's recorded
// hops wherever a node carries them.
func (interp *Interpreter) eval(expr ast.Expr, env *Environment) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return interp.evalLiteral(e, env)

	case *ast.Grouping:
		return interp.eval(e.Inner, env)

	case *ast.Unary:
		return interp.evalUnary(e, env)

	case *ast.Binary:
		return interp.evalBinary(e, env)

	case *ast.Ternary:
		cond, err := interp.eval(e.Cond, env)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return interp.eval(e.Then, env)
		}
		return interp.eval(e.Else, env)

	case *ast.Assignment:
		return interp.evalAssignment(e, env)

	case *ast.Call:
		return interp.evalCall(e, env)

	case *ast.InstanceGet:
		return interp.evalInstanceGet(e, env)

	case *ast.ClassInstantiation:
		return interp.evalClassInstantiation(e, env)

	case *ast.This:
		val, ok := interp.readByHops(e.Hops, "this", e.Loc, env)
		if !ok {
			return nil, runtimeErrorf(e.Loc, "'this' used outside of a method")
		}
		return val, nil

	case *ast.Super:
		return interp.evalSuper(e, env)

	default:
		panic("interp: unhandled expression type")
	}
}

// evalLiteral handles the Literal variant's double duty: NUMBER/STRING/
// TRUE/FALSE/NONE tokens carry their value directly, while an IDENT token
// is a variable reference resolved through the environment chain.
func (interp *Interpreter) evalLiteral(lit *ast.Literal, env *Environment) (Value, error) {
	switch lit.Token.Kind {
	case token.NUMBER:
		return Number(lit.Token.Literal.(float64)), nil
	case token.STRING:
		return String(lit.Token.Literal.(string)), nil
	case token.TRUE:
		return Bool(true), nil
	case token.FALSE:
		return Bool(false), nil
	case token.NONE:
		return noneValue, nil
	case token.IDENT:
		val, ok := interp.readByHops(lit.Hops, lit.Token.Lexeme, lit.Token.Pos, env)
		if !ok {
			return nil, runtimeErrorf(lit.Token.Pos, "undefined variable '%s'", lit.Token.Lexeme)
		}
		return val, nil
	default:
		panic("interp: unhandled literal token kind")
	}
}

// readByHops implements the variable lookup rule: with a recorded hop
// count, walk exactly that many parents from env and read there;
// without one, the reference is global.
func (interp *Interpreter) readByHops(hops *int, name string, pos token.Position, env *Environment) (Value, bool) {
	if hops != nil {
		return env.GetAt(*hops, name)
	}
	return env.GetGlobal(name)
}

func (interp *Interpreter) evalUnary(u *ast.Unary, env *Environment) (Value, error) {
	switch u.Op.Kind {
	case token.PLUS_PLUS, token.MINUS_MINUS:
		return interp.evalIncDec(u, env)
	}

	operand, err := interp.eval(u.Operand, env)
	if err != nil {
		return nil, err
	}

	switch u.Op.Kind {
	case token.BANG:
		if truthy(operand) {
			return Bool(false), nil
		}
		return Bool(true), nil
	case token.MINUS:
		n, ok := operand.(Number)
		if !ok {
			return nil, runtimeErrorf(u.Op.Pos, "unary '-' requires a number operand")
		}
		return -n, nil
	case token.PLUS:
		n, ok := operand.(Number)
		if !ok {
			return nil, runtimeErrorf(u.Op.Pos, "unary '+' requires a number operand")
		}
		return n, nil
	default:
		panic("interp: unhandled unary operator")
	}
}

// evalIncDec implements prefix/postfix ++/--. The operand must be an
// identifier literal; it is read, adjusted by 1, written back through
// the same hops-aware assignment path as a normal assignment, and
// either the new (prefix) or old (postfix) value is returned.
func (interp *Interpreter) evalIncDec(u *ast.Unary, env *Environment) (Value, error) {
	lit, ok := u.Operand.(*ast.Literal)
	if !ok || lit.Token.Kind != token.IDENT {
		return nil, runtimeErrorf(u.Op.Pos, "'%s' requires an identifier operand", u.Op.Lexeme)
	}

	oldVal, ok := interp.readByHops(lit.Hops, lit.Token.Lexeme, lit.Token.Pos, env)
	if !ok {
		return nil, runtimeErrorf(lit.Token.Pos, "undefined variable '%s'", lit.Token.Lexeme)
	}
	oldNum, ok := oldVal.(Number)
	if !ok {
		return nil, runtimeErrorf(u.Op.Pos, "'%s' requires a numeric operand", u.Op.Lexeme)
	}

	delta := Number(1)
	if u.Op.Kind == token.MINUS_MINUS {
		delta = -1
	}
	newNum := oldNum + delta

	if err := interp.assignByHops(lit.Hops, lit.Token.Lexeme, lit.Token.Pos, newNum, env); err != nil {
		return nil, err
	}

	if u.IsPostfix {
		return oldNum, nil
	}
	return newNum, nil
}

func (interp *Interpreter) evalBinary(b *ast.Binary, env *Environment) (Value, error) {
	left, err := interp.eval(b.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := interp.eval(b.Right, env)
	if err != nil {
		return nil, err
	}
	return applyBinaryOp(b.Op, left, right)
}

func (interp *Interpreter) evalAssignment(a *ast.Assignment, env *Environment) (Value, error) {
	val, err := interp.eval(a.RValue, env)
	if err != nil {
		return nil, err
	}

	switch lvalue := a.LValue.(type) {
	case *ast.Literal:
		if err := interp.assignByHops(lvalue.Hops, lvalue.Token.Lexeme, lvalue.Token.Pos, val, env); err != nil {
			return nil, err
		}
		return val, nil

	case *ast.InstanceGet:
		instanceVal, err := interp.eval(lvalue.Instance, env)
		if err != nil {
			return nil, err
		}
		instance, ok := instanceVal.(*Instance)
		if !ok {
			return nil, runtimeErrorf(lvalue.Property.Pos, "cannot set property '%s' on a non-instance value", lvalue.Property.Lexeme)
		}
		instance.Set(lvalue.Property.Lexeme, val)
		return val, nil

	default:
		return nil, runtimeErrorf(a.Eq.Pos, "invalid assignment target")
	}
}

// assignByHops implements the variable assignment rule: with recorded
// hops, write directly at that ancestor; otherwise the target must
// already exist at the global root or it is an "undefined variable"
// error.
func (interp *Interpreter) assignByHops(hops *int, name string, pos token.Position, val Value, env *Environment) error {
	if hops != nil {
		env.AssignAt(*hops, name, val)
		return nil
	}
	if !env.AssignGlobal(name, val) {
		return runtimeErrorf(pos, "undefined variable '%s'", name)
	}
	return nil
}

func (interp *Interpreter) evalCall(c *ast.Call, env *Environment) (Value, error) {
	callee, err := interp.eval(c.Callee, env)
	if err != nil {
		return nil, err
	}

	args, err := interp.evalArgs(c.Args, env)
	if err != nil {
		return nil, err
	}

	switch callable := callee.(type) {
	case Callable:
		if callable.Arity() != len(args) {
			return nil, runtimeErrorf(c.Loc, "expected %d argument(s) but got %d", callable.Arity(), len(args))
		}
		return callable.Call(interp, args)
	case *Class:
		return nil, runtimeErrorf(c.Loc, "can only be instantiated using the 'new' operator")
	default:
		return nil, runtimeErrorf(c.Loc, "value is not callable")
	}
}

func (interp *Interpreter) evalArgs(exprs []ast.Expr, env *Environment) ([]Value, error) {
	args := make([]Value, len(exprs))
	for i, argExpr := range exprs {
		val, err := interp.eval(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}
	return args, nil
}

func (interp *Interpreter) evalInstanceGet(g *ast.InstanceGet, env *Environment) (Value, error) {
	val, err := interp.eval(g.Instance, env)
	if err != nil {
		return nil, err
	}
	instance, ok := val.(*Instance)
	if !ok {
		return nil, runtimeErrorf(g.Property.Pos, "cannot read property '%s' of a non-instance value", g.Property.Lexeme)
	}
	prop, ok := instance.Get(g.Property.Lexeme)
	if !ok {
		return nil, runtimeErrorf(g.Property.Pos, "undefined property '%s'", g.Property.Lexeme)
	}
	return prop, nil
}

// evalClassInstantiation implements "new Callee(args)": the callee must
// evaluate to a Class, arity is checked against its constructor (0 if
// none), a fresh Instance is built, the constructor (if any) runs bound
// to it with its return value discarded, and the instance is the
// expression's result.
func (interp *Interpreter) evalClassInstantiation(n *ast.ClassInstantiation, env *Environment) (Value, error) {
	calleeVal, err := interp.eval(n.Call.Callee, env)
	if err != nil {
		return nil, err
	}
	class, ok := calleeVal.(*Class)
	if !ok {
		return nil, runtimeErrorf(n.Loc, "'new' target is not a class")
	}

	args, err := interp.evalArgs(n.Call.Args, env)
	if err != nil {
		return nil, err
	}

	if arity := class.constructorArity(); arity != len(args) {
		return nil, runtimeErrorf(n.Call.Loc, "expected %d argument(s) but got %d", arity, len(args))
	}

	instance := newInstance(class)
	if ctor, ok := class.findMethod("constructor"); ok {
		if _, err := ctor.bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// evalSuper implements "super.method()": the enclosing "this" is looked
// up through the hops recorded identically to a This node, its class's
// superclass supplies the method, and the method is bound to that same
// "this" instance, never to the superclass. Note that this walks the
// runtime instance's own class chain rather than the lexically
// enclosing class, so it resolves correctly for direct (2-level)
// inheritance but can pick the wrong method in a 3-or-more level
// hierarchy where a class overrides a method and a deeper subclass
// calls super on an inherited method of its own.
func (interp *Interpreter) evalSuper(s *ast.Super, env *Environment) (Value, error) {
	thisVal, ok := interp.readByHops(s.Hops, "this", s.Loc, env)
	if !ok {
		return nil, runtimeErrorf(s.Loc, "'super' used outside of a method")
	}
	instance, ok := thisVal.(*Instance)
	if !ok {
		return nil, runtimeErrorf(s.Loc, "'super' used outside of a method")
	}
	if instance.Class.Superclass == nil {
		return nil, runtimeErrorf(s.Loc, "class '%s' has no superclass", instance.Class.Name)
	}
	method, ok := instance.Class.Superclass.findMethod(s.Property.Lexeme)
	if !ok {
		return nil, runtimeErrorf(s.Property.Pos, "undefined property '%s'", s.Property.Lexeme)
	}
	return method.bind(instance), nil
}
