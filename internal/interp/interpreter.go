// Package interp implements the visitor-style evaluator and its runtime
// object model, per spec.md §4.5–§4.6.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/diagnostics"
	"github.com/cwbudde/lox/internal/token"
)

// Interpreter walks the AST, carrying the current environment and the
// global environment. had_error / had_runtime_error live on the
// supplied *diagnostics.Reporter, not as package-level state, so that
// multiple Interpreter values are safely embeddable in one process (the
// REDESIGN FLAG on process-wide error flags in spec.md §9).
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[ast.Expr]int // resolution side-table — Go pointer identity as key
	reporter    *diagnostics.Reporter
	out         io.Writer
	clockEpoch  time.Time
}

// New creates an Interpreter writing print output to out and reporting
// runtime errors through r. The clock() builtin is registered on the
// global environment immediately, per spec.md §4.6.
func New(out io.Writer, r *diagnostics.Reporter) *Interpreter {
	globals := NewEnvironment()
	in := &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		reporter:    r,
		out:         out,
		clockEpoch:  time.Now(),
	}
	globals.Define("clock", &NativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(*Interpreter, []interface{}) (interface{}, error) {
			return time.Since(in.clockEpoch).Seconds(), nil
		},
	})
	return in
}

// GlobalNames lists identifiers bound in the global environment — used
// by the REPL's .globals introspection command.
func (in *Interpreter) GlobalNames() []string { return in.globals.Names() }

// Globals exposes the global environment for read-only lookups by CLI
// tooling (e.g. formatting a global's current value).
func (in *Interpreter) Globals() *Environment { return in.globals }

// Resolve records the scope-depth binding computed by the resolver for
// a given expression identity — consulted by lookupVariable and by the
// Assign/Super/This visit methods.
func (in *Interpreter) Resolve(expr ast.Expr, depth int) {
	in.locals[expr] = depth
}

// Interpret runs every statement in order, aborting the list on the
// first runtime error (spec.md §4.5/§7).
func (in *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			in.reportRuntimeError(err)
			return
		}
	}
}

func (in *Interpreter) reportRuntimeError(err error) {
	if rerr, ok := err.(*RuntimeError); ok {
		line := rerr.Token.Line
		in.reporter.Report(diagnostics.Diagnostic{
			Kind:    diagnostics.RuntimeError,
			Line:    line,
			Message: fmt.Sprintf("%s\n[line %d]", rerr.Message, line),
		})
		return
	}
	in.reporter.Report(diagnostics.Diagnostic{Kind: diagnostics.RuntimeError, Message: err.Error()})
}

func (in *Interpreter) execute(stmt ast.Stmt) error { return stmt.Accept(in) }

func (in *Interpreter) evaluate(expr ast.Expr) (interface{}, error) { return expr.Accept(in) }

// executeBlock runs statements in env, restoring the prior environment
// on every exit path — including errors and the Return panic — per the
// invariant in spec.md §8 ("popping an entered block restores exactly
// the environment that was current before the block").
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) (err error) {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		if err = in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// lookupVariable resolves a Variable/This use via the side-table
// distance if present, else falls back to a global lookup, per
// spec.md §4.5.
func (in *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (interface{}, error) {
	if depth, ok := in.locals[expr]; ok {
		return in.environment.GetAt(depth, name.Lexeme), nil
	}
	if v, ok := in.globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, newRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}
