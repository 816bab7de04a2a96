/*
File    : golox/internal/repl/repl.go
*/

// Package repl implements golox's interactive Read-Eval-Print Loop,
// grounded on the teacher's repl package: the same readline-backed line
// editor, the same banner/prompt shape, the same colored error output
// (statement results are not echoed), driving golox's lexer-parser-resolver-interpreter pipeline
// instead of go-mix's evaluator.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/golox/internal/interp"
	"github.com/akashmaji946/golox/internal/loxerr"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor  = color.New(color.FgBlue)
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl holds the display configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner, version string, separator
// line, and prompt.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// colorWriter forwards every Write to an underlying writer through a
// fatih/color color, so loxerr.Reporter (which only knows how to write
// plain text) still produces colored error output in an interactive
// terminal.
type colorWriter struct {
	c *color.Color
	w io.Writer
}

func (cw *colorWriter) Write(p []byte) (int, error) {
	return cw.c.Fprint(cw.w, string(p))
}

// printBanner writes the startup banner to writer.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "golox "+r.Version+" — Ctrl-D or 'exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop, reading lines via readline until EOF or an
// explicit exit command and writing results/errors to writer. reader is
// accepted for parity with a socket-backed session (server mode hands it
// the same net.Conn as writer) but, as in the teacher's repl package,
// readline always reads from the process's own stdin rather than reader —
// a remote REPL session only truly works when stdin is itself the
// connection, e.g. piped over the connection by the caller.
//
// Each line runs against the same Interpreter, so top-level variable and
// function declarations persist across lines — the REPL is one long,
// incrementally-typed program.
//
// A line's had-error flag is reset before the next line is read, but
// had-runtime-error is left alone: neither flag ever stops the loop here,
// mirroring the reference REPL's exception-tolerant prompt (§9).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	in := interp.New(writer)
	reporter := loxerr.NewReporter(&colorWriter{c: redColor, w: writer})

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == ".exit" {
			return
		}

		rl.SaveHistory(line)
		reporter.Reset()
		interp.Run(in, line, reporter)
	}
}
