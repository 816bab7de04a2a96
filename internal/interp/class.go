/*
File    : golox/internal/interp/class.go
*/

package interp

// Class is a golox class: a name, an optional superclass to fall back to
// for method lookup, and its own method table. Classes are themselves
// callable — calling one constructs and returns a new Instance (§4.6).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass builds a class with the given method table. methods maps a
// method name to its still-unbound Function (bound per-instance lazily,
// on property access, via findMethod + bind).
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// findMethod looks up name in this class's own method table, falling
// back to the superclass chain. It returns the unbound Function; callers
// bind it to a receiving instance themselves.
func (c *Class) findMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil, false
}

// Arity is the arity of the class's `init` method, or 0 if it has none.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance of c and, if c defines (or inherits) an
// `init` method, runs it bound to the new instance before returning it.
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return c.Name
}
