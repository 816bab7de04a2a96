/*
File    : golox/internal/resolver/resolver.go
*/

// Package resolver implements the static resolution pass described in §3
// and §4.3 of the interpreter's design: a single walk over the parsed AST
// that computes, for every variable-referencing expression, the lexical
// hop-count to the environment that will hold its value at runtime.
//
// The resolver records these hop-counts into an Interpreter's locals
// side-table (keyed by each expression node's stable ast.NewID identity)
// rather than mutating the AST, so the same tree could in principle be
// resolved more than once. It also enforces the language's static rules:
// duplicate declarations in one scope, reading a local in its own
// initializer, returning from top-level code or from an initializer with
// a value, and this/super used outside their legal contexts.
package resolver

import (
	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/loxerr"
	"github.com/akashmaji946/golox/internal/token"
)

// functionKind tracks what kind of function body the resolver is
// currently inside, used to validate `return`.
type functionKind int

const (
	fkNone functionKind = iota
	fkFunction
	fkMethod
	fkInitializer
)

// classKind tracks whether the resolver is currently inside a class body,
// and whether that class has a superclass, used to validate `this` and
// `super`.
type classKind int

const (
	ckNone classKind = iota
	ckClass
	ckSubclass
)

// Binder receives the hop-counts the resolver computes. internal/interp's
// Interpreter implements this so the resolver can feed it directly; it is
// a separate interface (rather than a concrete *interp.Interpreter
// dependency) so the resolver package does not need to import the
// interpreter package.
type Binder interface {
	Resolve(node ast.Expr, depth int)
}

// scope maps a name to whether its initializer has finished evaluating.
// A name present with value false is "declared but not yet defined" —
// reading it from its own initializer is a static error.
type scope map[string]bool

// Resolver walks a parsed program and annotates it via Binder.
type Resolver struct {
	binder   Binder
	reporter *loxerr.Reporter
	scopes   []scope
	curFunc  functionKind
	curClass classKind
}

// New creates a Resolver that reports hop-counts to binder and static
// errors to reporter.
func New(binder Binder, reporter *loxerr.Reporter) *Resolver {
	return &Resolver{binder: binder, reporter: reporter}
}

// ResolveProgram resolves every top-level statement. The global scope is
// implicit and never pushed onto the scope stack (§4.3): a name resolved
// against no scope at all is left unannotated, which the interpreter
// treats as "look it up in globals".
func (r *Resolver) ResolveProgram(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(n.Statements)
		r.endScope()
	case *ast.Var:
		r.declare(n.Name)
		if n.Initializer != nil {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name)
	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, fkFunction)
	case *ast.Class:
		r.resolveClass(n)
	case *ast.Expression:
		r.resolveExpr(n.Expr)
	case *ast.Print:
		r.resolveExpr(n.Expr)
	case *ast.If:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}
	case *ast.While:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Body)
	case *ast.Return:
		r.resolveReturn(n)
	}
}

func (r *Resolver) resolveReturn(n *ast.Return) {
	if r.curFunc == fkNone {
		r.reporter.ReportAt(n.Keyword, "Cannot return from top-level code.")
	}
	if n.Value != nil {
		if r.curFunc == fkInitializer {
			r.reporter.ReportAt(n.Keyword, "Cannot return a value from an initializer.")
		}
		r.resolveExpr(n.Value)
	}
}

func (r *Resolver) resolveClass(n *ast.Class) {
	enclosingClass := r.curClass
	r.curClass = ckClass

	r.declare(n.Name)
	r.define(n.Name)

	if n.Superclass != nil && n.Superclass.Name.Lexeme == n.Name.Lexeme {
		r.reporter.ReportAt(n.Superclass.Name, "A class cannot inherit from itself.")
	}

	if n.Superclass != nil {
		r.curClass = ckSubclass
		r.resolveExpr(n.Superclass)
	}

	if n.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range n.Methods {
		kind := fkMethod
		if method.Name.Lexeme == "init" {
			kind = fkInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if n.Superclass != nil {
		r.endScope()
	}

	r.curClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFunc := r.curFunc
	r.curFunc = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.curFunc = enclosingFunc
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; ok && !defined {
				r.reporter.ReportAt(n.Name, "Cannot read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n, n.Name)
	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name)
	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Unary:
		r.resolveExpr(n.Right)
	case *ast.Grouping:
		r.resolveExpr(n.Inner)
	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, arg := range n.Args {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(n.Object)
	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)
	case *ast.This:
		if r.curClass == ckNone {
			r.reporter.ReportAt(n.Keyword, "Cannot use 'this' outside of a class.")
			return
		}
		r.resolveLocal(n, n.Keyword)
	case *ast.Super:
		if r.curClass == ckNone {
			r.reporter.ReportAt(n.Keyword, "Cannot use 'super' outside of a class.")
		} else if r.curClass != ckSubclass {
			r.reporter.ReportAt(n.Keyword, "Cannot use 'super' in a class with no superclass.")
		}
		r.resolveLocal(n, n.Keyword)
	case *ast.Literal:
		// Nothing to resolve.
	}
}

// resolveLocal scans the scope stack from innermost to outermost; the
// first scope containing name yields the hop-count (0 = innermost). A
// name found in no scope is left unannotated and resolves against globals
// at runtime.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.binder.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	s := r.scopes[len(r.scopes)-1]
	if _, ok := s[name.Lexeme]; ok {
		r.reporter.ReportAt(name, "Variable with this name already declared in this scope.")
	}
	s[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}
