/*
File    : golox/internal/ast/printer.go
*/

package ast

import (
	"fmt"
	"strings"
)

// Printer renders an expression tree as a fully-parenthesized Lisp-like
// string, e.g. `(* (- 123) (group 45.67))`. It is used by the `--print-ast`
// debug flag on cmd/golox and mirrors the teacher's PrintingVisitor, whose
// job is the same: make the shape of a parsed tree visible without running
// it.
type Printer struct{}

// Print renders a single expression.
func (p Printer) Print(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case *Grouping:
		return p.parenthesize("group", n.Inner)
	case *Unary:
		return p.parenthesize(n.Operator.Lexeme, n.Right)
	case *Binary:
		return p.parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Logical:
		return p.parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return p.parenthesize("= "+n.Name.Lexeme, n.Value)
	case *Call:
		return p.parenthesize("call "+p.Print(n.Callee), n.Args...)
	case *Get:
		return fmt.Sprintf("(. %s %s)", p.Print(n.Object), n.Name.Lexeme)
	case *Set:
		return fmt.Sprintf("(= (. %s %s) %s)", p.Print(n.Object), n.Name.Lexeme, p.Print(n.Value))
	case *This:
		return "this"
	case *Super:
		return "(super " + n.Method.Lexeme + ")"
	default:
		return "<unknown-expr>"
	}
}

func (p Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(p.Print(e))
	}
	b.WriteString(")")
	return b.String()
}

// PrintProgram renders every top-level expression statement and print
// statement in a program, one line each; all other statements are skipped.
func (p Printer) PrintProgram(stmts []Stmt) string {
	var lines []string
	for _, s := range stmts {
		switch st := s.(type) {
		case *Expression:
			lines = append(lines, p.Print(st.Expr))
		case *Print:
			lines = append(lines, p.parenthesize("print", st.Expr))
		}
	}
	return strings.Join(lines, "\n")
}
