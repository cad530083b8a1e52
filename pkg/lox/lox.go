// Package lox is the embeddable facade over the scanner, parser,
// resolver and evaluator — one Lox per Interpreter value, safely
// embeddable multiple times in a single process per the REDESIGN FLAG
// on process-wide error flags in spec.md §9.
//
// Grounded on the functional-options constructor convention used
// throughout the teacher (internal/lexer.LexerOption); the facade shape
// itself (New(opts...), Run, SetOutput) has no surviving teacher source
// to copy from in this retrieval (pkg/dwscript kept only its tests — see
// DESIGN.md) and is authored fresh from that convention plus the general
// separation the teacher's cmd/dwscript/cmd/run.go makes between parse
// errors and runtime errors.
package lox

import (
	"io"
	"os"

	"github.com/cwbudde/lox/internal/diagnostics"
	"github.com/cwbudde/lox/internal/interp"
	"github.com/cwbudde/lox/internal/lexer"
	"github.com/cwbudde/lox/internal/parser"
	"github.com/cwbudde/lox/internal/resolver"
)

// Result is the outcome of one Run call.
type Result struct {
	HadError        bool
	HadRuntimeError bool
	Diagnostics     []diagnostics.Diagnostic
}

// ExitCode maps a Result onto the exit codes of spec.md §6.3.
func (r *Result) ExitCode() int {
	switch {
	case r.HadRuntimeError:
		return 70
	case r.HadError:
		return 65
	default:
		return 0
	}
}

// Interpreter is one embeddable Lox instance: its own output writer,
// diagnostics reporter and evaluator state (including globals), so
// running it repeatedly (as a REPL does) behaves like spec.md §6.3's
// "REPL sessions never exit with these codes based on a single input."
type Interpreter struct {
	out      io.Writer
	color    bool
	reporter *diagnostics.Reporter
	eval     *interp.Interpreter
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

func WithColor(on bool) Option {
	return func(i *Interpreter) { i.color = on }
}

// New creates an Interpreter writing to stdout with color enabled by
// default; apply Option values to override either.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{out: os.Stdout, color: true}
	for _, opt := range opts {
		opt(i)
	}
	i.reporter = diagnostics.New(os.Stderr).WithColor(i.color)
	i.eval = interp.New(i.out, i.reporter)
	return i
}

// SetOutput redirects subsequent `print` output.
func (i *Interpreter) SetOutput(w io.Writer) {
	i.out = w
	i.eval = interp.New(w, i.reporter)
}

// Run scans, parses, resolves and evaluates source in order, aborting
// at the first failing stage boundary, per spec.md §7's propagation
// policy. file is used only for diagnostic messages.
func (i *Interpreter) Run(source, file string) *Result {
	i.reporter.WithSource(source, file)

	l := lexer.New(source, i.reporter)
	tokens := l.ScanTokens()

	p := parser.New(tokens, i.reporter)
	statements := p.Parse()

	if i.reporter.HadError() {
		return i.result()
	}

	res := resolver.New(i.eval, i.reporter)
	res.Resolve(statements)

	if i.reporter.HadError() {
		return i.result()
	}

	i.eval.Interpret(statements)
	return i.result()
}

// RunREPLLine runs one REPL line of input. After each line both
// had_error and had_runtime_error are cleared, so one failing line does
// not mark the next; the globals environment persists across the session.
func (i *Interpreter) RunREPLLine(line string) *Result {
	defer i.reporter.ResetSession()
	return i.Run(line, "<repl>")
}

func (i *Interpreter) result() *Result {
	return &Result{
		HadError:        i.reporter.HadError(),
		HadRuntimeError: i.reporter.HadRuntimeError(),
		Diagnostics:     i.reporter.Diagnostics(),
	}
}

// Eval is a convenience wrapper returning only whether the run failed.
func (i *Interpreter) Eval(source string) error {
	r := i.Run(source, "")
	if r.HadError || r.HadRuntimeError {
		return errResult{r}
	}
	return nil
}

// GlobalNames lists identifiers bound at global scope, for REPL/CLI
// introspection.
func (i *Interpreter) GlobalNames() []string { return i.eval.GlobalNames() }

type errResult struct{ r *Result }

func (e errResult) Error() string {
	if len(e.r.Diagnostics) == 0 {
		return "lox: run failed"
	}
	return e.r.Diagnostics[len(e.r.Diagnostics)-1].Error()
}
