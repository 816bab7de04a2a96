/*
File    : golox/internal/interp/function.go
*/

package interp

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/ast"
)

// Function is a user-defined function or method: an AST declaration
// closed over the environment that was active when it was declared.
// Every closure created from the same *ast.Function shares that
// declaration but owns its own closure environment, which is how two
// calls to the same factory function produce functions with independent
// captured state (§4.5).
type Function struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

// NewFunction builds a top-level or method Function. isInitializer marks
// a class's `init` method, which gets its return-value coercion (§4.6).
func NewFunction(declaration *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.declaration.Params) }

// Call runs the function body in a fresh environment enclosed by its
// closure, with parameters bound to args. A `return` inside the body
// unwinds to here via controlReturn; falling off the end of the body is
// equivalent to `return nil;`, except that an initializer always yields
// the instance it was bound to regardless of what (if anything) it
// explicitly returns (§4.6).
func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(f.declaration.Body, env)
	if ret, ok := err.(*controlReturn); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// bind returns a new Function whose closure additionally defines `this`
// as instance, the mechanism by which `instance.method` produces a
// callable with the receiver already attached (§4.6).
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}
