package lox

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func runSource(t *testing.T, source string) (string, *Result) {
	t.Helper()
	var out bytes.Buffer
	i := New(WithOutput(&out), WithColor(false))
	res := i.Run(source, "<test>")
	return out.String(), res
}

// TestEndToEndScenarios snapshots stdout for every literal scenario in
// spec.md §8's table, so a future regression shows up as a snapshot
// diff rather than a silent behavior change.
func TestEndToEndScenarios(t *testing.T) {
	scenarios := []struct {
		name   string
		source string
	}{
		{"literals_and_arithmetic", `print "one"; print true; print 2 + 1;`},
		{"variable_addition", `var a = 1; var b = 2; print a + b;`},
		{"fibonacci", `fun fib(n){ if(n<2) return n; return fib(n-1)+fib(n-2);} for(var i=0;i<8;i=i+1) print fib(i);`},
		{"nested_block_shadowing", `var a="global a"; { var a="outer a"; { var a="inner a"; print a; } print a; } print a;`},
		{"super_dispatch", `class A{method(){print "A";}} class B<A{method(){super.method(); print "B";}} B().method();`},
		{"this_and_fields", `class Cake{taste(){var adj="delicious"; print this.flavor+" cake is "+adj+"!";}} var c=Cake(); c.flavor="German chocolate"; c.taste();`},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			out, res := runSource(t, sc.source)
			if res.HadError || res.HadRuntimeError {
				t.Fatalf("unexpected error(s): %v", res.Diagnostics)
			}
			snaps.MatchSnapshot(t, out)
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Run("clean run exits 0", func(t *testing.T) {
		_, res := runSource(t, `print 1;`)
		if res.ExitCode() != 0 {
			t.Fatalf("got %d, want 0", res.ExitCode())
		}
	})
	t.Run("parse error exits 65", func(t *testing.T) {
		_, res := runSource(t, `var;`)
		if res.ExitCode() != 65 {
			t.Fatalf("got %d, want 65", res.ExitCode())
		}
	})
	t.Run("runtime error exits 70", func(t *testing.T) {
		_, res := runSource(t, `print 1 + "two";`)
		if res.ExitCode() != 70 {
			t.Fatalf("got %d, want 70", res.ExitCode())
		}
	})
}

func TestRunREPLLineClearsErrorBetweenLines(t *testing.T) {
	var out bytes.Buffer
	i := New(WithOutput(&out), WithColor(false))

	first := i.RunREPLLine(`print 1 + "two";`)
	if !first.HadRuntimeError {
		t.Fatalf("expected the first line to report a runtime error")
	}

	second := i.RunREPLLine(`print 42;`)
	if second.HadRuntimeError || second.HadError {
		t.Fatalf("expected the second line to run cleanly, got %v", second.Diagnostics)
	}
	if second.ExitCode() != 0 {
		t.Fatalf("got exit code %d, want 0 for a line following a cleared error", second.ExitCode())
	}
}

func TestRunREPLLinePersistsGlobalsAcrossLines(t *testing.T) {
	var out bytes.Buffer
	i := New(WithOutput(&out), WithColor(false))

	i.RunREPLLine(`var x = 10;`)
	i.RunREPLLine(`print x + 5;`)

	if out.String() != "15\n" {
		t.Fatalf("got %q, want the second line to see the first line's global", out.String())
	}
}
