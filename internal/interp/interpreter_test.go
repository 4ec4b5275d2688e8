package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
	"github.com/gkampitakis/go-snaps/snaps"
)

// run drives a full program through scan -> parse -> resolve -> interpret
// and returns its stdout, or the runtime error if one occurred.
func run(t *testing.T, source string) (string, error) {
	t.Helper()
	rep := errors.NewReporter()

	toks := lexer.New(source, rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	if rep.HadError() {
		t.Fatalf("unexpected compile errors: %v", rep.Diagnostics())
	}

	locals := resolver.New(rep).Resolve(stmts)
	if rep.HadError() {
		t.Fatalf("unexpected resolve errors: %v", rep.Diagnostics())
	}

	var out bytes.Buffer
	it := New(&out)
	err := it.Interpret(stmts, locals)
	return out.String(), err
}

func TestEndToEndPrintLiteral(t *testing.T) {
	out, err := run(t, `print "hello world";`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "hello world\n" {
		t.Errorf("got %q", out)
	}
}

func TestEndToEndBlockScoping(t *testing.T) {
	out, err := run(t, `var x = 1; { var x = 2; print x; } print x;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "2\n1\n" {
		t.Errorf("got %q", out)
	}
}

func TestEndToEndClosureCapturesSharedState(t *testing.T) {
	out, err := run(t, `
		fun make() {
			var i = 0;
			fun inc() {
				i = i + 1;
				return i;
			}
			return inc;
		}
		var f = make();
		print f();
		print f();
		print f();
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "1\n2\n3\n" {
		t.Errorf("got %q", out)
	}
}

func TestEndToEndMethodCall(t *testing.T) {
	out, err := run(t, `class A { greet() { print "hi"; } } A().greet();`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "hi\n" {
		t.Errorf("got %q", out)
	}
}

func TestEndToEndSuperclassInitChaining(t *testing.T) {
	out, err := run(t, `
		class A { init(n) { this.n = n; } }
		class B < A { init(n) { super.init(n); this.n = this.n + 1; } }
		print B(5).n;
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "6\n" {
		t.Errorf("got %q", out)
	}
}

func TestEndToEndTypeMismatchIsARuntimeError(t *testing.T) {
	_, err := run(t, `print 1 + "x";`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Operands must be two numbers or two strings.") {
		t.Errorf("got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "[line 1]") {
		t.Errorf("got %q, want a line marker", err.Error())
	}
}

func TestEndToEndListBuiltin(t *testing.T) {
	out, err := run(t, `
		var a = list();
		a.add(1);
		a.add(2);
		print a.toString();
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "[1, 2]\n" {
		t.Errorf("got %q", out)
	}
}

func TestEndToEndForLoop(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Errorf("got %q", out)
	}
}

func TestEndToEndListMutationMethods(t *testing.T) {
	out, err := run(t, `
		var a = list();
		a.add(10);
		a.add(20);
		a.add(30);
		a.set(1, 99);
		print a.get(1);
		a.remove(0);
		print a.length();
		print a.toString();
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "99\n2\n[99, 30]\n" {
		t.Errorf("got %q", out)
	}
}

func TestEndToEndListIndexOutOfRangeIsARuntimeError(t *testing.T) {
	_, err := run(t, `var a = list(); a.get(0);`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
}

func TestEndToEndNativeErrorCarriesLineMarker(t *testing.T) {
	_, err := run(t, "var a = list();\na.get(0);")
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "List index out of range.") {
		t.Errorf("got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "[line 2]") {
		t.Errorf("got %q, want a [line 2] marker like any other runtime error", err.Error())
	}
}

func TestEndToEndTruthiness(t *testing.T) {
	out, err := run(t, `
		if (nil) print "a"; else print "b";
		if (false) print "c"; else print "d";
		if (0) print "e"; else print "f";
		if ("") print "g"; else print "h";
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "b\nd\ne\ng\n" {
		t.Errorf("got %q", out)
	}
}

func TestEndToEndLogicalShortCircuit(t *testing.T) {
	out, err := run(t, `
		fun sideEffect(label, v) { print label; return v; }
		sideEffect("left", false) and sideEffect("right", true);
		sideEffect("left2", true) or sideEffect("right2", true);
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "left\nleft2\n" {
		t.Errorf("got %q", out)
	}
}

func TestEndToEndUndefinedVariableIsARuntimeError(t *testing.T) {
	_, err := run(t, "\nprint undeclared;")
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Undefined variable 'undeclared'.") {
		t.Errorf("got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "[line 2]") {
		t.Errorf("got %q, want the real offending line, not [line 0]", err.Error())
	}
}

func TestEndToEndSetOnNativeInstanceIsARuntimeError(t *testing.T) {
	_, err := run(t, `var a = list(); a.x = 1;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Can't set properties on a native instance.") {
		t.Errorf("got %q", err.Error())
	}
}

// TestProgramSnapshots runs a table of small programs end to end and
// snapshots their stdout, the way the teacher's fixture suite snapshots
// DWScript fixture output.
func TestProgramSnapshots(t *testing.T) {
	programs := []struct {
		name   string
		source string
	}{
		{
			name: "fibonacci",
			source: `
				fun fib(n) {
					if (n < 2) return n;
					return fib(n - 1) + fib(n - 2);
				}
				for (var i = 0; i < 8; i = i + 1) print fib(i);
			`,
		},
		{
			name: "class_hierarchy",
			source: `
				class Animal {
					init(name) { this.name = name; }
					speak() { print this.name + " makes a sound."; }
				}
				class Dog < Animal {
					speak() { print this.name + " barks."; }
				}
				var animals = list();
				animals.add(Animal("Generic"));
				animals.add(Dog("Rex"));
				animals.get(0).speak();
				animals.get(1).speak();
			`,
		},
		{
			name: "closures_and_scope",
			source: `
				var globalCounter = 0;
				fun counter() {
					var count = 0;
					fun next() {
						count = count + 1;
						globalCounter = globalCounter + 1;
						return count;
					}
					return next;
				}
				var a = counter();
				var b = counter();
				print a();
				print a();
				print b();
				print globalCounter;
			`,
		},
	}

	for _, p := range programs {
		t.Run(p.name, func(t *testing.T) {
			out, err := run(t, p.source)
			if err != nil {
				t.Fatalf("unexpected runtime error: %v", err)
			}
			snaps.MatchSnapshot(t, p.name+"_output", out)
		})
	}
}
