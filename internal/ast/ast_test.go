/*
File    : golox/internal/ast/ast_test.go
*/

package ast

import (
	"testing"

	"github.com/akashmaji946/golox/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestNewID_IsUniquePerNode(t *testing.T) {
	a := NewLiteral(1.0)
	b := NewLiteral(1.0)
	assert.NotEqual(t, a.ID(), b.ID(), "structurally identical nodes must still have distinct identities")
}

func TestPrinter_Print(t *testing.T) {
	// -123 * (45.67)
	expr := NewBinary(
		NewUnary(token.New(token.Minus, "-", 1), NewLiteral(123.0)),
		token.New(token.Star, "*", 1),
		NewGrouping(NewLiteral(45.67)),
	)

	got := Printer{}.Print(expr)
	assert.Equal(t, "(* (- 123) (group 45.67))", got)
}

func TestPrinter_NilLiteral(t *testing.T) {
	assert.Equal(t, "nil", Printer{}.Print(NewLiteral(nil)))
}

func TestPrinter_PrintProgram(t *testing.T) {
	stmts := []Stmt{
		&Print{Expr: NewLiteral(1.0)},
		&Expression{Expr: NewLiteral(2.0)},
	}
	got := Printer{}.PrintProgram(stmts)
	assert.Equal(t, "(print 1)\n2", got)
}
