/*
File    : golox/internal/interp/run.go
*/

package interp

import (
	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/lexer"
	"github.com/akashmaji946/golox/internal/loxerr"
	"github.com/akashmaji946/golox/internal/parser"
	"github.com/akashmaji946/golox/internal/resolver"
)

// Run drives one source string through the full lexer → parser →
// resolver → evaluator pipeline against in, reporting to reporter and
// stopping at the first stage that sets an error flag — lexical/syntax
// errors and resolve errors both prevent evaluation from starting at all
// (§4, §7).
func Run(in *Interpreter, source string, reporter *loxerr.Reporter) []ast.Stmt {
	lx := lexer.New(source, reporter)
	tokens := lx.ScanTokens()

	p := parser.New(tokens, reporter)
	stmts := p.Parse()
	if reporter.HadError {
		return stmts
	}

	res := resolver.New(in, reporter)
	res.ResolveProgram(stmts)
	if reporter.HadError {
		return stmts
	}

	in.Interpret(stmts, reporter)
	return stmts
}
