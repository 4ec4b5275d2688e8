// Package errors formats and accumulates Lox diagnostics. Scanning,
// parsing and resolving all report through a shared Reporter rather than
// halting on the first problem.
package errors

import "fmt"

// Diagnostic is a single reported problem, carrying enough context to
// render any of the wire formats the CLI front-end expects.
type Diagnostic struct {
	Line    int
	Where   string // the offending lexeme; "" for a message-only or at-end diagnostic
	Message string
	AtEnd   bool
	HasLoc  bool // false for scan errors, which have no lexeme/end context
}

// Error renders the diagnostic using the compile-time wire format:
//
//	[line L] Error at end: MESSAGE
//	[line L] Error at 'LEXEME': MESSAGE
//	[line L] Error: MESSAGE
func (d Diagnostic) Error() string {
	switch {
	case !d.HasLoc:
		return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message)
	case d.AtEnd:
		return fmt.Sprintf("[line %d] Error at end: %s", d.Line, d.Message)
	default:
		return fmt.Sprintf("[line %d] Error at '%s': %s", d.Line, d.Where, d.Message)
	}
}

// RuntimeError is raised by the interpreter during execution. It renders
// as MESSAGE followed by a newline and the offending line, per spec.
type RuntimeError struct {
	Line    int
	Message string
}

func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", r.Message, r.Line)
}

// Reporter accumulates diagnostics across a compilation phase. A phase
// never stops at the first error: scanning, parsing and resolving all
// keep going and report everything they find.
type Reporter struct {
	diagnostics []Diagnostic
}

// NewReporter returns an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report records a plain message-only diagnostic (used by the scanner,
// which has no token to anchor the error to).
func (r *Reporter) Report(line int, message string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{Line: line, Message: message, HasLoc: false})
}

// ReportAt records a diagnostic anchored to a lexeme, or to "end" when
// atEnd is true.
func (r *Reporter) ReportAt(line int, lexeme string, atEnd bool, message string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{
		Line: line, Where: lexeme, Message: message, AtEnd: atEnd, HasLoc: true,
	})
}

// HadError reports whether any diagnostic has been recorded.
func (r *Reporter) HadError() bool {
	return len(r.diagnostics) > 0
}

// Diagnostics returns the diagnostics recorded so far, in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Reset clears all recorded diagnostics, readying the Reporter for reuse
// across REPL prompts.
func (r *Reporter) Reset() {
	r.diagnostics = r.diagnostics[:0]
}
