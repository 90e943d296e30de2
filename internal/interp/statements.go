package interp

import "github.com/loxlang/golox/internal/ast"

// execStmt executes one statement against env, returning a non-nil
// signal only when a "return" is unwinding through it.
func (interp *Interpreter) execStmt(stmt ast.Stmt, env *Environment) (*signal, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := interp.eval(s.Expr, env)
		return nil, err

	case *ast.VarDecl:
		for _, item := range s.Items {
			val := Value(noneValue)
			if item.Initializer != nil {
				v, err := interp.eval(item.Initializer, env)
				if err != nil {
					return nil, err
				}
				val = v
			}
			if err := env.Define(item.Name.Lexeme, val); err != nil {
				return nil, runtimeErrorf(item.Name.Pos, "%s", err.Error())
			}
		}
		return nil, nil

	case *ast.Block:
		return interp.execBlockStmts(s.Stmts, NewEnclosedEnvironment(env))

	case *ast.If:
		cond, err := interp.eval(s.Cond, env)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return interp.execStmt(s.Then, env)
		}
		if s.Else != nil {
			return interp.execStmt(s.Else, env)
		}
		return nil, nil

	case *ast.While:
		for {
			cond, err := interp.eval(s.Cond, env)
			if err != nil {
				return nil, err
			}
			if !truthy(cond) {
				return nil, nil
			}
			sig, err := interp.execStmt(s.Body, env)
			if err != nil || sig != nil {
				return sig, err
			}
		}

	case *ast.FunctionDecl:
		fn := &Function{Decl: s, Closure: env}
		if err := env.Define(s.Name.Lexeme, fn); err != nil {
			return nil, runtimeErrorf(s.Name.Pos, "%s", err.Error())
		}
		return nil, nil

	case *ast.Return:
		val := Value(noneValue)
		if s.Value != nil {
			v, err := interp.eval(s.Value, env)
			if err != nil {
				return nil, err
			}
			val = v
		}
		return &signal{kind: signalReturn, value: val}, nil

	case *ast.ClassDecl:
		return nil, interp.execClassDecl(s, env)

	default:
		panic("interp: unhandled statement type")
	}
}

// execBlockStmts runs stmts in order against env, already the block's
// own scope (see execStmt's *ast.Block case and Function.Call, which set
// up env differently but both call this), stopping early on error or a
// return signal.
func (interp *Interpreter) execBlockStmts(stmts []ast.Stmt, env *Environment) (*signal, error) {
	for _, stmt := range stmts {
		sig, err := interp.execStmt(stmt, env)
		if err != nil || sig != nil {
			return sig, err
		}
	}
	return nil, nil
}

// execClassDecl evaluates a class declaration: each method becomes a
// Function closing over env (the environment active at the class
// declaration site), and the resulting Class is bound under its own name
// in env.
func (interp *Interpreter) execClassDecl(decl *ast.ClassDecl, env *Environment) error {
	var super *Class
	if decl.Superclass != nil {
		val, err := interp.evalLiteral(decl.Superclass, env)
		if err != nil {
			return err
		}
		class, ok := val.(*Class)
		if !ok {
			return runtimeErrorf(decl.Superclass.Pos(), "superclass '%s' is not a class", decl.Superclass.Token.Lexeme)
		}
		super = class
	}

	class := &Class{Name: decl.Name.Lexeme, Superclass: super, methods: make(map[string]*Function)}
	for _, methodDecl := range decl.Methods {
		method := &Function{Decl: methodDecl, Closure: env, isMethod: true, isInitCtr: methodDecl.Name.Lexeme == "constructor"}
		class.methods[methodDecl.Name.Lexeme] = method
		class.methodList = append(class.methodList, methodDecl.Name.Lexeme)
	}

	if err := env.Define(decl.Name.Lexeme, class); err != nil {
		return runtimeErrorf(decl.Name.Pos, "%s", err.Error())
	}
	return nil
}
