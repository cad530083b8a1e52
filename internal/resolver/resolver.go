// Package resolver implements the static pre-execution pass of
// spec.md §4.4: binding every variable use to its exact enclosing-scope
// depth before the evaluator runs.
//
// Grounded on the scope-stack shape of the teacher's
// internal/semantic/analyze_classes*.go (push/pop scope, track a
// "current class" mode while walking declarations), generalized from
// DWScript's much larger semantic model down to this five-case protocol
// table. The bulk of internal/semantic (builtin type analyzers, enums,
// interfaces, records, generics, exceptions) has no Lox analogue and is
// not drawn on — see DESIGN.md.
package resolver

import (
	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/diagnostics"
	"github.com/cwbudde/lox/internal/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Binder is satisfied by *interp.Interpreter; kept as a narrow interface
// here so this package does not need to import interp.
type Binder interface {
	Resolve(expr ast.Expr, depth int)
}

// Resolver walks statements and expressions exactly once, recording
// `expression identity -> scope depth` into the bound Binder.
type Resolver struct {
	binder   Binder
	reporter *diagnostics.Reporter

	scopes          []map[string]bool
	currentFunction functionType
	currentClass    classType
}

func New(binder Binder, r *diagnostics.Reporter) *Resolver {
	return &Resolver{binder: binder, reporter: r}
}

// Resolve runs the pass over a parsed program.
func (res *Resolver) Resolve(statements []ast.Stmt) {
	res.resolveStatements(statements)
}

func (res *Resolver) resolveStatements(statements []ast.Stmt) {
	for _, s := range statements {
		res.resolveStmt(s)
	}
}

func (res *Resolver) resolveStmt(s ast.Stmt) { _ = s.Accept(res) }

func (res *Resolver) resolveExpr(e ast.Expr) { _, _ = e.Accept(res) }

func (res *Resolver) beginScope() { res.scopes = append(res.scopes, map[string]bool{}) }

func (res *Resolver) endScope() { res.scopes = res.scopes[:len(res.scopes)-1] }

// declare inserts name into the innermost scope marked "not yet ready".
// A name already present there is reported, not thrown — per spec.md §4.4.
func (res *Resolver) declare(name token.Token) {
	if len(res.scopes) == 0 {
		return
	}
	scope := res.scopes[len(res.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		res.reporter.ErrorAt(diagnostics.ResolutionError, name.Line, "", "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks name ready for use in the innermost scope.
func (res *Resolver) define(name token.Token) {
	if len(res.scopes) == 0 {
		return
	}
	res.scopes[len(res.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward; the first
// scope containing name yields its distance. Not found anywhere leaves
// the lookup to globals at run time (spec.md §4.4).
func (res *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(res.scopes) - 1; i >= 0; i-- {
		if _, ok := res.scopes[i][name.Lexeme]; ok {
			res.binder.Resolve(expr, len(res.scopes)-1-i)
			return
		}
	}
}

func (res *Resolver) resolveFunction(stmt *ast.FunctionStmt, kind functionType) {
	enclosingFunction := res.currentFunction
	res.currentFunction = kind

	res.beginScope()
	for _, param := range stmt.Params {
		res.declare(param)
		res.define(param)
	}
	res.resolveStatements(stmt.Body)
	res.endScope()

	res.currentFunction = enclosingFunction
}
