package resolver

import (
	"bytes"
	"testing"

	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/diagnostics"
	"github.com/cwbudde/lox/internal/lexer"
	"github.com/cwbudde/lox/internal/parser"
)

// fakeBinder records every Resolve call so tests can assert on the
// depths computed for specific expression nodes without depending on
// internal/interp.
type fakeBinder struct {
	depths map[ast.Expr]int
}

func newFakeBinder() *fakeBinder { return &fakeBinder{depths: make(map[ast.Expr]int)} }

func (b *fakeBinder) Resolve(expr ast.Expr, depth int) { b.depths[expr] = depth }

func resolveSource(t *testing.T, source string) ([]ast.Stmt, *fakeBinder, *diagnostics.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	r := diagnostics.New(&buf)
	tokens := lexer.New(source, r).ScanTokens()
	stmts := parser.New(tokens, r).Parse()
	if r.HadError() {
		t.Fatalf("unexpected parse error(s) before resolving: %v", r.Diagnostics())
	}
	binder := newFakeBinder()
	New(binder, r).Resolve(stmts)
	return stmts, binder, r
}

func TestResolveLocalVariableDepth(t *testing.T) {
	stmts, binder, r := resolveSource(t, `
{
  var a = 1;
  {
    var b = a;
  }
}
`)
	if r.HadError() {
		t.Fatalf("unexpected resolution error(s): %v", r.Diagnostics())
	}
	outer := stmts[0].(*ast.BlockStmt)
	inner := outer.Statements[1].(*ast.BlockStmt)
	bDecl := inner.Statements[0].(*ast.VarStmt)
	aRef := bDecl.Initializer.(*ast.VariableExpr)

	depth, ok := binder.depths[aRef]
	if !ok {
		t.Fatalf("expected a recorded depth for the reference to 'a'")
	}
	if depth != 1 {
		t.Fatalf("expected 'a' to resolve one scope out, got depth %d", depth)
	}
}

func TestReadingLocalInOwnInitializerIsAnError(t *testing.T) {
	_, _, r := resolveSource(t, `
{
  var a = a;
}
`)
	if !r.HadError() {
		t.Fatalf("expected an error reading a local variable in its own initializer")
	}
}

func TestShadowingInSameScopeIsAnError(t *testing.T) {
	_, _, r := resolveSource(t, `
{
  var a = 1;
  var a = 2;
}
`)
	if !r.HadError() {
		t.Fatalf("expected an error redeclaring 'a' in the same scope")
	}
}

func TestReturnFromTopLevelIsAnError(t *testing.T) {
	_, _, r := resolveSource(t, `return 1;`)
	if !r.HadError() {
		t.Fatalf("expected an error returning from top-level code")
	}
}

func TestReturnValueFromInitializerIsAnError(t *testing.T) {
	_, _, r := resolveSource(t, `
class Foo {
  init() {
    return 1;
  }
}
`)
	if !r.HadError() {
		t.Fatalf("expected an error returning a value from an initializer")
	}
}

func TestThisOutsideClassIsAnError(t *testing.T) {
	_, _, r := resolveSource(t, `print this;`)
	if !r.HadError() {
		t.Fatalf("expected an error using 'this' outside of a class")
	}
}

func TestSuperWithoutSuperclassIsAnError(t *testing.T) {
	_, _, r := resolveSource(t, `
class Foo {
  bar() {
    super.bar();
  }
}
`)
	if !r.HadError() {
		t.Fatalf("expected an error using 'super' in a class with no superclass")
	}
}

func TestClassCannotInheritFromItself(t *testing.T) {
	_, _, r := resolveSource(t, `class Foo < Foo {}`)
	if !r.HadError() {
		t.Fatalf("expected an error when a class inherits from itself")
	}
}

func TestSuperResolvesToItsDeclaringScopeDepth(t *testing.T) {
	stmts, binder, r := resolveSource(t, `
class A {
  greet() { print "A"; }
}
class B < A {
  greet() {
    super.greet();
  }
}
`)
	if r.HadError() {
		t.Fatalf("unexpected resolution error(s): %v", r.Diagnostics())
	}
	classB := stmts[1].(*ast.ClassStmt)
	greet := classB.Methods[0]
	exprStmt := greet.Body[0].(*ast.ExpressionStmt)
	call := exprStmt.Expression.(*ast.CallExpr)
	superExpr := call.Callee.(*ast.SuperExpr)

	superDepth, ok := binder.depths[superExpr]
	if !ok {
		t.Fatalf("expected a recorded depth for the 'super' reference")
	}
	// scopes: [super, this, params] when resolving the call inside greet's
	// body, so 'super' (declared in the outermost of the three) resolves
	// two scopes out.
	if superDepth != 2 {
		t.Fatalf("expected 'super' at depth 2, got %d", superDepth)
	}
}
