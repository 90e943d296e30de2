package interp

import "fmt"

// installNatives pre-populates the global environment with clock(),
// print(), and the str() string-coercion helper.
func (interp *Interpreter) installNatives() {
	interp.Globals.DefineOrOverwrite("clock", &NativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(interp *Interpreter, args []Value) (Value, error) {
			return Number(interp.clock()), nil
		},
	})

	interp.Globals.DefineOrOverwrite("print", &NativeFunction{
		name:  "print",
		arity: 1,
		fn: func(interp *Interpreter, args []Value) (Value, error) {
			fmt.Fprintln(interp.out, stringify(args[0]))
			return noneValue, nil
		},
	})

	interp.Globals.DefineOrOverwrite("str", &NativeFunction{
		name:  "str",
		arity: 1,
		fn: func(interp *Interpreter, args []Value) (Value, error) {
			return String(stringify(args[0])), nil
		},
	})
}
