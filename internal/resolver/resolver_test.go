/*
File    : golox/internal/resolver/resolver_test.go
*/

package resolver

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/lexer"
	"github.com/akashmaji946/golox/internal/loxerr"
	"github.com/akashmaji946/golox/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBinder captures every Resolve call so tests can assert on the
// computed hop-counts without depending on internal/interp.
type recordingBinder struct {
	depths map[int]int
}

func newRecordingBinder() *recordingBinder {
	return &recordingBinder{depths: make(map[int]int)}
}

func (b *recordingBinder) Resolve(node ast.Expr, depth int) {
	b.depths[node.ID()] = depth
}

func resolveSource(t *testing.T, source string) (*recordingBinder, []ast.Stmt, *loxerr.Reporter) {
	t.Helper()
	var out bytes.Buffer
	reporter := loxerr.NewReporter(&out)
	tokens := lexer.New(source, reporter).ScanTokens()
	stmts := parser.New(tokens, reporter).Parse()
	require.False(t, reporter.HadError, "unexpected parse error: %s", out.String())

	binder := newRecordingBinder()
	New(binder, reporter).ResolveProgram(stmts)
	return binder, stmts, reporter
}

func TestResolve_LocalVariableGetsHopCountZero(t *testing.T) {
	binder, stmts, reporter := resolveSource(t, `
		{
			var a = 1;
			print a;
		}
	`)
	require.False(t, reporter.HadError)

	block := stmts[0].(*ast.Block)
	printStmt := block.Statements[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)

	assert.Equal(t, 0, binder.depths[variable.ID()])
}

func TestResolve_OuterBlockVariableGetsPositiveHopCount(t *testing.T) {
	binder, stmts, reporter := resolveSource(t, `
		{
			var a = 1;
			{
				print a;
			}
		}
	`)
	require.False(t, reporter.HadError)

	outer := stmts[0].(*ast.Block)
	inner := outer.Statements[1].(*ast.Block)
	printStmt := inner.Statements[0].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)

	assert.Equal(t, 1, binder.depths[variable.ID()])
}

func TestResolve_GlobalReferenceIsLeftUnannotated(t *testing.T) {
	binder, stmts, reporter := resolveSource(t, `
		var a = 1;
		print a;
	`)
	require.False(t, reporter.HadError)

	printStmt := stmts[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)

	_, ok := binder.depths[variable.ID()]
	assert.False(t, ok, "a global read should not appear in the locals table")
}

func TestResolve_ReadingLocalInItsOwnInitializerIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, `
		var a = "outer";
		{
			var a = a;
		}
	`)
	assert.True(t, reporter.HadError)
}

func TestResolve_DuplicateDeclarationInSameScopeIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	assert.True(t, reporter.HadError)
}

func TestResolve_ReturnFromTopLevelIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, `return 1;`)
	assert.True(t, reporter.HadError)
}

func TestResolve_ReturnValueFromInitializerIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, `
		class Box {
			init() {
				return 1;
			}
		}
	`)
	assert.True(t, reporter.HadError)
}

func TestResolve_ThisOutsideClassIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, `print this;`)
	assert.True(t, reporter.HadError)
}

func TestResolve_SuperWithoutSuperclassIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, `
		class Box {
			describe() {
				return super.describe();
			}
		}
	`)
	assert.True(t, reporter.HadError)
}

func TestResolve_ClassCannotInheritFromItself(t *testing.T) {
	_, _, reporter := resolveSource(t, `class Box < Box {}`)
	assert.True(t, reporter.HadError)
}
