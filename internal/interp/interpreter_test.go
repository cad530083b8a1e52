package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/lox/internal/diagnostics"
	"github.com/cwbudde/lox/internal/lexer"
	"github.com/cwbudde/lox/internal/parser"
	"github.com/cwbudde/lox/internal/resolver"
)

// run is a minimal scan-parse-resolve-interpret pipeline used by this
// package's own tests, independent of the pkg/lox facade (which has its
// own end-to-end tests for the scenarios in spec.md §8).
func run(t *testing.T, source string) (stdout string, r *diagnostics.Reporter) {
	t.Helper()
	var diagBuf, outBuf bytes.Buffer
	rep := diagnostics.New(&diagBuf).WithSource(source, "<test>")

	tokens := lexer.New(source, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	if rep.HadError() {
		return "", rep
	}

	in := New(&outBuf, rep)
	resolver.New(in, rep).Resolve(stmts)
	if rep.HadError() {
		return "", rep
	}

	in.Interpret(stmts)
	return outBuf.String(), rep
}

func TestArithmeticAndPrint(t *testing.T) {
	out, r := run(t, `print "one"; print true; print 2 + 1;`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error(s): %v", r.Diagnostics())
	}
	if out != "one\ntrue\n3\n" {
		t.Fatalf("got %q", out)
	}
}

func TestFibonacciLoop(t *testing.T) {
	out, r := run(t, `fun fib(n){ if(n<2) return n; return fib(n-1)+fib(n-2);} for(var i=0;i<8;i=i+1) print fib(i);`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error(s): %v", r.Diagnostics())
	}
	want := "0\n1\n1\n2\n3\n5\n8\n13\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestBlockScopingRestoresShadowedBindings(t *testing.T) {
	out, r := run(t, `var a="global a"; { var a="outer a"; { var a="inner a"; print a; } print a; } print a;`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error(s): %v", r.Diagnostics())
	}
	want := "inner a\nouter a\nglobal a\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestSuperDispatchesToParentThenContinuesChild(t *testing.T) {
	out, r := run(t, `class A{method(){print "A";}} class B<A{method(){super.method(); print "B";}} B().method();`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error(s): %v", r.Diagnostics())
	}
	if out != "A\nB\n" {
		t.Fatalf("got %q", out)
	}
}

func TestThisBindsToReceiverAcrossFieldAndMethod(t *testing.T) {
	out, r := run(t, `class Cake{taste(){var adj="delicious"; print this.flavor+" cake is "+adj+"!";}} var c=Cake(); c.flavor="German chocolate"; c.taste();`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error(s): %v", r.Diagnostics())
	}
	if out != "German chocolate cake is delicious!\n" {
		t.Fatalf("got %q", out)
	}
}

func TestClosureCapturesSharedVariableAcrossCalls(t *testing.T) {
	out, r := run(t, `
fun makeCounter() {
  var count = 0;
  fun counter() {
    count = count + 1;
    print count;
  }
  return counter;
}
var c = makeCounter();
c();
c();
`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error(s): %v", r.Diagnostics())
	}
	if out != "1\n2\n" {
		t.Fatalf("got %q, want a counter that accumulates across calls", out)
	}
}

func TestWrongArityReportsRuntimeError(t *testing.T) {
	_, r := run(t, `fun f(a, b) { return a + b; } f(1);`)
	if !r.HadRuntimeError() {
		t.Fatalf("expected a runtime error for wrong arity")
	}
	msg := r.Diagnostics()[0].Message
	if !strings.Contains(msg, "Expected 2 arguments but got 1.") {
		t.Fatalf("got message %q", msg)
	}
}

func TestAddingNumberAndStringIsARuntimeError(t *testing.T) {
	_, r := run(t, `print 1 + "two";`)
	if !r.HadRuntimeError() {
		t.Fatalf("expected a runtime error adding a number and a string")
	}
}

func TestDividingByZeroProducesInfNotAnError(t *testing.T) {
	out, r := run(t, `print 1 / 0;`)
	if r.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", r.Diagnostics())
	}
	if out != "+Inf\n" {
		t.Fatalf("got %q", out)
	}
}

func TestUndefinedPropertyIsARuntimeError(t *testing.T) {
	_, r := run(t, `class Foo {} var f = Foo(); print f.bar;`)
	if !r.HadRuntimeError() {
		t.Fatalf("expected a runtime error for an undefined property")
	}
}

func TestInitializerImplicitlyReturnsThisOnBareReturn(t *testing.T) {
	out, r := run(t, `
class Foo {
  init(v) {
    this.v = v;
    return;
  }
}
var f = Foo(42);
print f.v;
`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error(s): %v", r.Diagnostics())
	}
	if out != "42\n" {
		t.Fatalf("got %q", out)
	}
}
