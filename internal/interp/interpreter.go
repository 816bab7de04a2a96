/*
File    : golox/internal/interp/interpreter.go
*/

// Package interp implements the tree-walking evaluator: the Environment
// chain, the runtime Value kinds (Function, Class, Instance, native
// callables), and the Interpreter itself, which executes a resolved
// program statement by statement.
//
// Interpreter satisfies resolver.Binder, so a single *resolver.Resolver
// can be pointed at it directly; the locals side-table it fills in is
// consulted by every variable read/write instead of walking the
// Environment chain outward one link at a time.
package interp

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/loxerr"
	"github.com/akashmaji946/golox/internal/token"
)

// Interpreter walks a resolved program and evaluates it, one top-level
// statement at a time.
type Interpreter struct {
	Globals *Environment
	env     *Environment
	locals  map[int]int
	out     io.Writer
}

// New builds an Interpreter that writes `print` output to out (os.Stdout
// when out is nil) and installs the native globals (currently `clock`).
func New(out io.Writer) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	globals := NewEnvironment(nil)
	in := &Interpreter{Globals: globals, env: globals, locals: make(map[int]int), out: out}
	in.defineNatives()
	return in
}

func (in *Interpreter) defineNatives() {
	in.Globals.Define("clock", NewNativeFunction("clock", 0, func(_ *Interpreter, _ []Value) (Value, error) {
		return float64(time.Now().UnixNano()) / float64(time.Second), nil
	}))
}

// Resolve implements resolver.Binder: it records that the expression node
// with the given identity resolves `depth` enclosing scopes away from
// wherever it is evaluated.
func (in *Interpreter) Resolve(node ast.Expr, depth int) {
	in.locals[node.ID()] = depth
}

// Interpret runs a resolved program to completion, reporting the first
// runtime error it hits to reporter and stopping there — golox does not
// attempt to recover and continue after a runtime error (§7).
func (in *Interpreter) Interpret(stmts []ast.Stmt, reporter *loxerr.Reporter) {
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			if rerr, ok := err.(*loxerr.RuntimeError); ok {
				reporter.ReportRuntime(rerr)
			} else {
				reporter.ReportRuntime(loxerr.NewRuntimeError(token.Token{Line: 0}, "%s", err.Error()))
			}
			return
		}
	}
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := in.evaluate(s.Expr)
		return err
	case *ast.Print:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, stringify(v))
		return nil
	case *ast.Var:
		var value Value
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil
	case *ast.Block:
		return in.executeBlock(s.Statements, NewEnvironment(in.env))
	case *ast.If:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil
	case *ast.While:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}
	case *ast.Function:
		fn := NewFunction(s, in.env, false)
		in.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.Return:
		var value Value
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &controlReturn{value: value}
	case *ast.Class:
		return in.executeClass(s)
	}
	return nil
}

func (in *Interpreter) executeClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return loxerr.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.env.Define(s.Name.Lexeme, nil)

	if s.Superclass != nil {
		in.env = NewEnvironment(in.env)
		in.env.Define("super", superclass)
	}

	methods := make(map[string]*Function)
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = NewFunction(method, in.env, method.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)

	if s.Superclass != nil {
		in.env = in.env.enclosing
	}

	return in.env.Assign(s.Name, class)
}

// executeBlock runs stmts with env installed as the current environment,
// restoring the previous environment on both normal and erroring exit
// (§4.4) — deferred so a `return`, a runtime error, or reaching the end
// all unwind the same way.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return in.evaluate(e.Inner)
	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)
	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e.ID()]; ok {
			in.env.AssignAt(distance, e.Name, value)
		} else if err := in.Globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil
	case *ast.Logical:
		return in.evaluateLogical(e)
	case *ast.Unary:
		return in.evaluateUnary(e)
	case *ast.Binary:
		return in.evaluateBinary(e)
	case *ast.Call:
		return in.evaluateCall(e)
	case *ast.Get:
		return in.evaluateGet(e)
	case *ast.Set:
		return in.evaluateSet(e)
	case *ast.This:
		return in.lookUpVariable(e.Keyword, e)
	case *ast.Super:
		return in.evaluateSuper(e)
	}
	return nil, fmt.Errorf("interp: unhandled expression node %T", expr)
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (Value, error) {
	if distance, ok := in.locals[expr.ID()]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	return in.Globals.Get(name)
}

func (in *Interpreter) evaluateLogical(e *ast.Logical) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.Or {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evaluateUnary(e *ast.Unary) (Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.Bang:
		return !isTruthy(right), nil
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, loxerr.NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	}
	return nil, loxerr.NewRuntimeError(e.Operator, "Unknown unary operator '%s'.", e.Operator.Lexeme)
}

func (in *Interpreter) evaluateBinary(e *ast.Binary) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.Plus:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
		}
		return nil, loxerr.NewRuntimeError(e.Operator, "Operands must be two numbers or two strings.")
	case token.Minus:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case token.Star:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case token.Slash:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil
	case token.Greater:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil
	case token.GreaterEqual:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil
	case token.Less:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil
	case token.LessEqual:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil
	case token.BangEqual:
		return !isEqual(left, right), nil
	case token.EqualEqual:
		return isEqual(left, right), nil
	}
	return nil, loxerr.NewRuntimeError(e.Operator, "Unknown binary operator '%s'.", e.Operator.Lexeme)
}

func numberOperands(op token.Token, left, right Value) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, loxerr.NewRuntimeError(op, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (in *Interpreter) evaluateCall(e *ast.Call) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, loxerr.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evaluateGet(e *ast.Get) (Value, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	return instance.Get(e.Name)
}

func (in *Interpreter) evaluateSet(e *ast.Set) (Value, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, value)
	return value, nil
}

func (in *Interpreter) evaluateSuper(e *ast.Super) (Value, error) {
	distance := in.locals[e.ID()]
	superclass := in.env.GetAt(distance, "super").(*Class)
	object := in.env.GetAt(distance-1, "this").(*Instance)

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.bind(object), nil
}
