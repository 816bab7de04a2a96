/*
File    : golox/internal/interp/environment.go
*/

package interp

import (
	"github.com/akashmaji946/golox/internal/loxerr"
	"github.com/akashmaji946/golox/internal/token"
)

// Environment is a single lexical scope: a name-to-value map plus an
// optional link to the enclosing scope (§3). Environments are shared by
// reference — closures and bound methods keep a pointer to the
// environment captured at their definition site alive for as long as they
// exist, independent of whether the block that created it has exited.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a scope enclosed by parent. Pass nil to create
// the distinguished globals environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: parent}
}

// Define binds name to value in this environment, overwriting any existing
// binding of the same name in this environment only. The resolver rejects
// a second declaration of a name in one local scope; the global scope is
// not checked, so redeclaring a global simply overwrites it here.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get reads name, searching outward through enclosing scopes. It is only
// used for globals lookups once the resolver has run — every local read
// goes through GetAt instead.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, loxerr.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign updates an existing binding of name, searching outward until it
// is found. It never creates a new binding.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return loxerr.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// GetAt reads name from the environment exactly `distance` enclosing
// links away. The resolver guarantees the name is present there, so no
// further walking or existence check is needed (§3 invariant).
func (e *Environment) GetAt(distance int, name string) Value {
	return e.ancestor(distance).values[name]
}

// AssignAt writes name in the environment exactly `distance` enclosing
// links away.
func (e *Environment) AssignAt(distance int, name token.Token, value Value) {
	e.ancestor(distance).values[name.Lexeme] = value
}

// ancestor walks `distance` enclosing links outward from e.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}
