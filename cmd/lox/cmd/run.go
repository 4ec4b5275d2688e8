package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
	"github.com/cwbudde/golox/pkg/printer"
)

// runSourceOnce scans, parses, resolves and interprets source in a
// fresh interpreter, for one-shot script execution.
func runSourceOnce(source string) (hadError, hadRuntimeError bool) {
	it := interp.New(os.Stdout)
	return runSource(it, source)
}

// runSource drives one program through the full pipeline against an
// existing interpreter, so the REPL can reuse one interpreter (and
// therefore one global environment) across prompts.
func runSource(it *interp.Interpreter, source string) (hadError, hadRuntimeError bool) {
	rep := errors.NewReporter()

	toks := lexer.New(source, rep).ScanTokens()

	p := parser.New(toks, rep)
	stmts := p.Parse()

	if rep.HadError() {
		printDiagnostics(rep)
		return true, false
	}

	locals := resolver.New(rep).Resolve(stmts)

	if rep.HadError() {
		printDiagnostics(rep)
		return true, false
	}

	if err := it.Interpret(stmts, locals); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false, true
	}

	return false, false
}

func printDiagnostics(rep *errors.Reporter) {
	for _, d := range rep.Diagnostics() {
		fmt.Fprintln(os.Stderr, d.Error())
	}
}

// printProgram implements -p/--print: scan and parse only, then emit one
// parenthesized line per top-level statement.
func printProgram(source string) error {
	rep := errors.NewReporter()
	toks := lexer.New(source, rep).ScanTokens()

	p := parser.New(toks, rep)
	stmts := p.Parse()

	if rep.HadError() {
		printDiagnostics(rep)
		exitCode = 64
		return nil
	}

	for _, s := range stmts {
		fmt.Println(printer.PrintStmt(s))
	}
	exitCode = 0
	return nil
}

// runRepl reads one line at a time from stdin, running each against a
// long-lived interpreter so variables and functions persist across
// prompts. Scan/parse/resolve/runtime errors are printed but never end
// the session; only EOF does, with exit code 0.
func runRepl() {
	it := interp.New(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		runSource(it, line)
		fmt.Print("> ")
	}
	fmt.Println()
	exitCode = 0
}
