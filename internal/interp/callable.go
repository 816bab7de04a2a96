/*
File    : golox/internal/interp/callable.go
*/

package interp

// Callable is implemented by every value that can appear as the callee of
// a call expression: user-defined functions and methods (*Function),
// classes (*Class, whose call constructs an instance), and natives
// (*NativeFunction).
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
	String() string
}

// NativeFunction wraps a Go function as a callable golox value, the way
// the globals environment's `clock` is installed.
type NativeFunction struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []Value) (Value, error)
}

// NewNativeFunction builds a native callable bound under name.
func NewNativeFunction(name string, arity int, fn func(in *Interpreter, args []Value) (Value, error)) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.fn(in, args)
}

func (n *NativeFunction) String() string {
	return "<native fn>"
}
