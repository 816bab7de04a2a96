/*
File    : golox/internal/interp/interp_test.go
*/

package interp

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/internal/lexer"
	"github.com/akashmaji946/golox/internal/loxerr"
	"github.com/akashmaji946/golox/internal/parser"
	"github.com/akashmaji946/golox/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSource lexes, parses, resolves, and interprets source against a
// fresh Interpreter, returning everything `print` wrote plus the
// reporter's final error flags.
func runSource(t *testing.T, source string) (string, *loxerr.Reporter) {
	t.Helper()
	var out bytes.Buffer
	reporter := loxerr.NewReporter(&out)

	lx := lexer.New(source, reporter)
	tokens := lx.ScanTokens()
	p := parser.New(tokens, reporter)
	stmts := p.Parse()
	require.False(t, reporter.HadError, "unexpected parse error: %s", out.String())

	in := New(&out)
	res := resolver.New(in, reporter)
	res.ResolveProgram(stmts)
	require.False(t, reporter.HadError, "unexpected resolve error: %s", out.String())

	in.Interpret(stmts, reporter)
	return out.String(), reporter
}

func TestInterpret_ArithmeticAndPrint(t *testing.T) {
	out, reporter := runSource(t, `print 1 + 2 * 3;`)
	assert.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_IntegralFloatPrintsWithoutTrailingZero(t *testing.T) {
	out, _ := runSource(t, `print 6 / 2;`)
	assert.Equal(t, "3\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, _ := runSource(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_TruthinessOfZeroAndEmptyString(t *testing.T) {
	out, _ := runSource(t, `
		if (0) print "zero is truthy"; else print "unreachable";
		if ("") print "empty string is truthy"; else print "unreachable";
	`)
	assert.Equal(t, "zero is truthy\nempty string is truthy\n", out)
}

func TestInterpret_EqualityIsCrossTagFalseAndNilEqualsNil(t *testing.T) {
	out, _ := runSource(t, `
		print nil == nil;
		print 0 == "0";
		print false == nil;
	`)
	assert.Equal(t, "true\nfalse\nfalse\n", out)
}

func TestInterpret_ClosuresCaptureIndependentState(t *testing.T) {
	out, _ := runSource(t, `
		fun makeCounter() {
			var count = 0;
			fun counter() {
				count = count + 1;
				return count;
			}
			return counter;
		}
		var a = makeCounter();
		var b = makeCounter();
		print a();
		print a();
		print b();
	`)
	assert.Equal(t, "1\n2\n1\n", out)
}

func TestInterpret_ClassesInheritanceSuperAndThis(t *testing.T) {
	out, reporter := runSource(t, `
		class Pastry {
			cook() {
				return "cooking " + this.name();
			}
			name() {
				return "pastry";
			}
		}
		class Croissant < Pastry {
			name() {
				return "croissant";
			}
			describe() {
				return super.cook();
			}
		}
		var c = Croissant();
		print c.describe();
	`)
	require.False(t, reporter.HadRuntimeError, out)
	assert.Equal(t, "cooking croissant\n", out)
}

func TestInterpret_InitializerAlwaysReturnsInstance(t *testing.T) {
	out, reporter := runSource(t, `
		class Box {
			init(value) {
				this.value = value;
			}
		}
		var b = Box(42);
		print b.value;
	`)
	require.False(t, reporter.HadRuntimeError, out)
	assert.Equal(t, "42\n", out)
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, reporter := runSource(t, `print missing;`)
	assert.True(t, reporter.HadRuntimeError)
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, reporter := runSource(t, `
		var x = 1;
		x();
	`)
	assert.True(t, reporter.HadRuntimeError)
}

func TestInterpret_ArityMismatchIsRuntimeError(t *testing.T) {
	_, reporter := runSource(t, `
		fun f(a, b) { return a + b; }
		f(1);
	`)
	assert.True(t, reporter.HadRuntimeError)
}

func TestInterpret_ShadowedCallSitesResolveIndependently(t *testing.T) {
	// The read of `a` inside showA resolves to the binding visible where
	// showA is declared (the global), so both calls print "global" even
	// after a local `a` is declared later in the same block.
	out, reporter := runSource(t, `
		var a = "global";
		{
			fun showA() {
				print a;
			}
			showA();
			var a = "block";
			showA();
		}
	`)
	require.False(t, reporter.HadRuntimeError, out)
	assert.Equal(t, "global\nglobal\n", out)
}
