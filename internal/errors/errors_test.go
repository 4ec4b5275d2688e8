package errors

import "testing"

func TestDiagnosticMessageOnlyFormat(t *testing.T) {
	d := Diagnostic{Line: 3, Message: "Unexpected character.", HasLoc: false}
	want := "[line 3] Error: Unexpected character."
	if got := d.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDiagnosticAtEndFormat(t *testing.T) {
	d := Diagnostic{Line: 5, AtEnd: true, HasLoc: true, Message: "Expect expression."}
	want := "[line 5] Error at end: Expect expression."
	if got := d.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDiagnosticAtLexemeFormat(t *testing.T) {
	d := Diagnostic{Line: 7, Where: "+", HasLoc: true, Message: "Expect expression."}
	want := "[line 7] Error at '+': Expect expression."
	if got := d.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRuntimeErrorFormat(t *testing.T) {
	err := &RuntimeError{Line: 12, Message: "Undefined variable 'x'."}
	want := "Undefined variable 'x'.\n[line 12]"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReporterAccumulatesAndResets(t *testing.T) {
	rep := NewReporter()
	if rep.HadError() {
		t.Fatal("fresh reporter should have no error")
	}

	rep.Report(1, "first")
	rep.ReportAt(2, "x", false, "second")
	if !rep.HadError() {
		t.Fatal("expected HadError after reporting")
	}
	if len(rep.Diagnostics()) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(rep.Diagnostics()))
	}

	rep.Reset()
	if rep.HadError() {
		t.Fatal("expected HadError to be false after Reset")
	}
	if len(rep.Diagnostics()) != 0 {
		t.Fatalf("got %d diagnostics after Reset, want 0", len(rep.Diagnostics()))
	}
}
