package parser

import (
	"strings"
	"testing"

	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/pkg/printer"
)

func parse(t *testing.T, source string) ([]string, *errors.Reporter) {
	t.Helper()
	rep := errors.NewReporter()
	toks := lexer.New(source, rep).ScanTokens()
	stmts := New(toks, rep).Parse()
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = printer.PrintStmt(s)
	}
	return out, rep
}

func TestParseArithmeticPrecedence(t *testing.T) {
	out, rep := parse(t, "1 + 2 * 3;")
	if rep.HadError() {
		t.Fatalf("unexpected errors: %v", rep.Diagnostics())
	}
	want := "(; (+ 1 (* 2 3)))"
	if out[0] != want {
		t.Errorf("got %q, want %q", out[0], want)
	}
}

func TestParseGrouping(t *testing.T) {
	out, rep := parse(t, "(1 + 2) * 3;")
	if rep.HadError() {
		t.Fatalf("unexpected errors: %v", rep.Diagnostics())
	}
	want := "(; (* (group (+ 1 2)) 3))"
	if out[0] != want {
		t.Errorf("got %q, want %q", out[0], want)
	}
}

func TestParseForLoopDesugarsToWhile(t *testing.T) {
	out, rep := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if rep.HadError() {
		t.Fatalf("unexpected errors: %v", rep.Diagnostics())
	}
	if !strings.Contains(out[0], "(while (< i 3)") {
		t.Errorf("got %q, expected a desugared while loop", out[0])
	}
}

func TestParseClassWithSuperclass(t *testing.T) {
	out, rep := parse(t, "class B < A { init() {} }")
	if rep.HadError() {
		t.Fatalf("unexpected errors: %v", rep.Diagnostics())
	}
	if !strings.Contains(out[0], "(class B < A") {
		t.Errorf("got %q", out[0])
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, rep := parse(t, "1 + 2 = 3;")
	if !rep.HadError() {
		t.Fatal("expected an error for an invalid assignment target")
	}
}

func TestParseMissingSemicolonSynchronizes(t *testing.T) {
	// The first statement is missing a semicolon. The error is reported at
	// the following `var`, which synchronize then discards along with the
	// rest of that declaration, so parsing still runs to completion.
	_, rep := parse(t, "var a = 1\nvar b = 2;")
	if !rep.HadError() {
		t.Fatal("expected a syntax error")
	}
}

func TestParseTooManyArguments(t *testing.T) {
	var b strings.Builder
	b.WriteString("f(")
	for i := 0; i < 256; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("1")
	}
	b.WriteString(");")

	_, rep := parse(t, b.String())
	if !rep.HadError() {
		t.Fatal("expected an arity-limit error")
	}
	found := false
	for _, d := range rep.Diagnostics() {
		if strings.Contains(d.Error(), "Can't have more than 255 arguments.") {
			found = true
		}
	}
	if !found {
		t.Fatalf("got %v", rep.Diagnostics())
	}
}

func TestParseUnterminatedErrorReportsAtEnd(t *testing.T) {
	_, rep := parse(t, "print")
	if !rep.HadError() {
		t.Fatal("expected an error")
	}
	if got := rep.Diagnostics()[0].Error(); !strings.Contains(got, "Error at end") {
		t.Fatalf("got %q", got)
	}
}
