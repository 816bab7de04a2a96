/*
File    : golox/internal/loxerr/loxerr.go
*/

// Package loxerr defines typed errors for the pipeline's stages, along
// with the reporter that the driver uses to track the had-error /
// had-runtime-error flags described by the language's error model. The
// lexer, parser, and resolver report their errors straight to a Reporter;
// RuntimeError is the only type here that the pipeline constructs (in the
// interpreter).
package loxerr

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/golox/internal/token"
)

// SyntaxError is a lexical or parse-time error tied to a source line,
// optionally carrying the offending token. The lexer and parser do not
// construct it; they call Reporter.Report / Reporter.ReportAt instead.
type SyntaxError struct {
	Line    int
	Token   *token.Token // nil for pure lexer errors (no token yet)
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

// ResolveError is a static semantic error (duplicate declaration, illegal
// return, this/super misuse, self-inheritance, ...). It formats exactly
// like a SyntaxError but is a distinct type so the two stages can be told
// apart. The resolver does not construct it; it calls Reporter.ReportAt.
type ResolveError struct {
	Token   token.Token
	Message string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Token.Line, e.Message)
}

// RuntimeError is raised by the interpreter during evaluation. It carries
// the offending token so the top-level driver can print the line number.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// NewRuntimeError constructs a RuntimeError with a formatted message.
func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Reporter accumulates the had-error and had-runtime-error flags the driver
// uses to decide whether to skip resolution/evaluation and what exit code
// to use, per the language's error model (lexical/syntactic and resolution
// errors share one flag; runtime errors set a second, independent flag).
type Reporter struct {
	HadError        bool
	HadRuntimeError bool
	Writer          io.Writer // destination for formatted error text; defaults to os.Stderr
}

// NewReporter builds a Reporter that writes to w. Passing a nil w defaults
// to os.Stderr, matching the driver's default error destination.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{Writer: w}
}

// Report records a line-only error (used by the lexer, which has no token
// context yet) in the form "[line L] Error: <message>".
func (r *Reporter) Report(line int, message string) {
	r.report(line, "", message)
}

// ReportAt records an error tied to a specific token, rendering the
// "<where>" clause as " at end" or " at '<lexeme>'" per the language's
// error-output contract.
func (r *Reporter) ReportAt(tok token.Token, message string) {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Type == token.EOF {
		where = " at end"
	}
	r.report(tok.Line, where, message)
}

func (r *Reporter) report(line int, where, message string) {
	r.HadError = true
	fmt.Fprintf(r.writer(), "[line %d] Error%s: %s\n", line, where, message)
}

// ReportRuntime prints a runtime error as "<message>\n[line L]" and sets the
// runtime-error flag, per the language's error-output contract.
func (r *Reporter) ReportRuntime(err *RuntimeError) {
	r.HadRuntimeError = true
	fmt.Fprintf(r.writer(), "%s\n[line %d]\n", err.Message, err.Token.Line)
}

func (r *Reporter) writer() io.Writer {
	if r.Writer == nil {
		return os.Stderr
	}
	return r.Writer
}

// Reset clears the had-error flag between REPL lines; had-runtime-error is
// intentionally left untouched by Reset, matching the reference REPL's
// behavior of never using it to abort the prompt loop.
func (r *Reporter) Reset() {
	r.HadError = false
}
