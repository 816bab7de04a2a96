/*
File    : golox/cmd/golox/main.go
*/

// Command golox is the entry point for the interpreter. It provides three
// modes of operation, dispatched the same way the teacher's main package
// dispatches them:
//  1. REPL mode (default): interactive read-eval-print loop
//  2. File mode: execute a golox source file given as an argument
//  3. Server mode: accept TCP connections, each given its own REPL session
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/interp"
	"github.com/akashmaji946/golox/internal/lexer"
	"github.com/akashmaji946/golox/internal/loxerr"
	"github.com/akashmaji946/golox/internal/parser"
	"github.com/akashmaji946/golox/internal/repl"
	"github.com/fatih/color"
)

// VERSION is the interpreter's version string.
var VERSION = "v1.0.0"

// PROMPT is the REPL's command prompt.
var PROMPT = "golox> "

// LINE is the separator line used in banners.
var LINE = "----------------------------------------------------------------"

// BANNER is the ASCII logo shown at REPL startup.
var BANNER = `
   ____  ___    __  ____  _  __
  / __ \/ _ \  / / / / / (_)/ /_
 / /_/ / // / / /_/ / _ \/ / __/
 \__, /\___/  \____/_//_/_/\__/
/____/
`

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

// Exit codes per the language's error model (§7): 0 success, 65 a
// lexical/syntax/resolve error, 70 a runtime error, 2 a usage error.
const (
	exitOK       = 0
	exitDataErr  = 65
	exitRuntime  = 70
	exitUsageErr = 2
)

func main() {
	if len(os.Args) <= 1 {
		startRepl()
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
		os.Exit(exitOK)
	case "--version", "-v":
		showVersion()
		os.Exit(exitOK)
	case "server":
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "Usage: golox server <port>")
			os.Exit(exitUsageErr)
		}
		startServer(os.Args[2])
	default:
		printAST := false
		path := arg
		if arg == "--print-ast" {
			printAST = true
			if len(os.Args) < 3 {
				redColor.Fprintln(os.Stderr, "Usage: golox --print-ast <file>")
				os.Exit(exitUsageErr)
			}
			path = os.Args[2]
		}
		os.Exit(runFile(path, printAST))
	}
}

func showHelp() {
	cyanColor.Println("golox - a tree-walking interpreter")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	yellowColor.Println("  golox                    Start the interactive REPL")
	yellowColor.Println("  golox <path>             Run a golox source file")
	yellowColor.Println("  golox --print-ast <path> Print the parsed AST instead of running it")
	yellowColor.Println("  golox server <port>      Serve REPL sessions over TCP")
	yellowColor.Println("  golox --help             Show this message")
	yellowColor.Println("  golox --version          Show version information")
}

func showVersion() {
	cyanColor.Printf("golox %s\n", VERSION)
}

// runFile reads and runs a golox source file, returning the process exit
// code the language's error model assigns to what happened (§7).
func runFile(path string, printAST bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return exitUsageErr
	}

	reporter := loxerr.NewReporter(os.Stderr)

	if printAST {
		lx := lexer.New(string(source), reporter)
		p := parser.New(lx.ScanTokens(), reporter)
		stmts := p.Parse()
		if reporter.HadError {
			return exitDataErr
		}
		fmt.Fprintln(os.Stdout, ast.Printer{}.PrintProgram(stmts))
		return exitOK
	}

	in := interp.New(os.Stdout)
	interp.Run(in, string(source), reporter)

	if reporter.HadError {
		return exitDataErr
	}
	if reporter.HadRuntimeError {
		return exitRuntime
	}
	return exitOK
}

func startRepl() {
	r := repl.New(BANNER, VERSION, LINE, PROMPT)
	r.Start(os.Stdin, os.Stdout)
}

// startServer listens on port, handing each accepted connection its own
// REPL session that writes to the connection; input is read as
// repl.Repl.Start describes (from the process's stdin, not the connection).
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Failed to start server on port %s: %v\n", port, err)
		os.Exit(exitUsageErr)
	}
	defer listener.Close()
	cyanColor.Printf("golox REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	r := repl.New(BANNER, VERSION, LINE, PROMPT)
	r.Start(conn, conn)
}
