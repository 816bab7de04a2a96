/*
File    : golox/internal/interp/instance.go
*/

package interp

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/loxerr"
	"github.com/akashmaji946/golox/internal/token"
)

// Instance is a runtime object produced by calling a Class: its class
// reference plus a bag of fields assigned to it after construction.
type Instance struct {
	class  *Class
	fields map[string]Value
}

// NewInstance creates an instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

// Get reads a property, checking fields before methods — a field can
// shadow a method of the same name, never the reverse (§4.6). A method
// hit is bound to this instance before being returned so the returned
// callable already knows its receiver.
func (i *Instance) Get(name token.Token) (Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if m, ok := i.class.findMethod(name.Lexeme); ok {
		return m.bind(i), nil
	}
	return nil, loxerr.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// Set assigns a field on the instance unconditionally — golox has no
// declared-field list, so any property write is legal and silently
// creates the field if it didn't already exist.
func (i *Instance) Set(name token.Token, value Value) {
	i.fields[name.Lexeme] = value
}

func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.class.Name)
}
