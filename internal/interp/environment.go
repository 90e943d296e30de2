package interp

import "fmt"

// Environment is a mutable map from names to runtime values, optionally
// chained to a parent environment. One is created for the global scope,
// and another for each block, function call, and method call. Lookup is
// resolver-driven: a reference carries the exact number of parents to
// skip, rather than searching every ancestor in turn.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewGlobalEnvironment creates the root environment with no parent.
func NewGlobalEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a new environment chained to parent, used
// for block entry, function invocation, and method invocation.
func NewEnclosedEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]Value), parent: parent}
}

// ancestor walks exactly hops parents up the chain from e.
func (e *Environment) ancestor(hops int) *Environment {
	env := e
	for i := 0; i < hops; i++ {
		env = env.parent
	}
	return env
}

// Define binds name to val in this environment's own scope. Used for
// "let", function and class declarations. Returns an error if name is
// already declared in this exact (non-global) scope: redeclaration within
// the same scope is rejected, while at the global scope an existing
// binding is overwritten.
func (e *Environment) Define(name string, val Value) error {
	if e.parent != nil {
		if _, exists := e.values[name]; exists {
			return fmt.Errorf("'%s' is already declared in this scope", name)
		}
	}
	e.values[name] = val
	return nil
}

// DefineOrOverwrite binds name to val without the same-scope redeclaration
// check. Used for parameter binding and the reserved "this" slot, which
// may legitimately be (re)bound once per call frame.
func (e *Environment) DefineOrOverwrite(name string, val Value) {
	e.values[name] = val
}

// GetAt reads name from the environment reached by walking hops parents
// from e. The resolver guarantees the binding exists there.
func (e *Environment) GetAt(hops int, name string) (Value, bool) {
	val, ok := e.ancestor(hops).values[name]
	return val, ok
}

// AssignAt writes name in the environment reached by walking hops parents
// from e. The resolver guarantees the binding exists there.
func (e *Environment) AssignAt(hops int, name string, val Value) {
	e.ancestor(hops).values[name] = val
}

// GetGlobal reads name from the root of e's chain.
func (e *Environment) GetGlobal(name string) (Value, bool) {
	val, ok := e.root().values[name]
	return val, ok
}

// AssignGlobal writes name at the root of e's chain if it already
// exists there, returning false otherwise. Assigning an undeclared
// global is an "undefined variable" error, not an implicit declaration.
func (e *Environment) AssignGlobal(name string, val Value) bool {
	root := e.root()
	if _, exists := root.values[name]; !exists {
		return false
	}
	root.values[name] = val
	return true
}

func (e *Environment) root() *Environment {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env
}
