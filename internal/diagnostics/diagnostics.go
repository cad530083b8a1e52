// Package diagnostics implements the uniform error channel shared by the
// scanner, parser, resolver and evaluator, plus the had_error /
// had_runtime_error flags that gate the pipeline stage boundaries.
package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Kind distinguishes the error taxonomy in spec.md §7 for reporting and
// for callers that want to react differently to each stage's failures.
type Kind int

const (
	ScanError Kind = iota
	ParseError
	ResolutionError
	RuntimeError
)

func (k Kind) String() string {
	switch k {
	case ScanError:
		return "Scan error"
	case ParseError:
		return "Parse error"
	case ResolutionError:
		return "Resolution error"
	case RuntimeError:
		return "Runtime error"
	default:
		return "Error"
	}
}

// Diagnostic is a single reported problem, carrying enough context to
// render a one-line "[line L] Error AT: MESSAGE" form or, when the source
// text is available, a source-line-plus-caret rendering.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Where   string // e.g. " at 'foo'" or "" for scan errors with no token context
	Message string
	Source  string // full source text, optional — enables caret rendering
	File    string
}

// Error satisfies the error interface with the book's canonical one-line
// format: "[line L] Error AT: MESSAGE".
func (d Diagnostic) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Format renders the diagnostic. With a non-empty Source, it reproduces
// the offending source line with a caret beneath the start of that line;
// useColor only decides whether the header, caret and message are
// colorized the way the teacher's CompilerError.Format does.
func (d Diagnostic) Format(useColor bool) string {
	if d.Source == "" {
		return d.Error()
	}
	lines := strings.Split(d.Source, "\n")
	if d.Line < 1 || d.Line > len(lines) {
		return d.Error()
	}
	srcLine := lines[d.Line-1]

	header := fmt.Sprintf("%s in %s:%d", d.Kind, fileOr(d.File), d.Line)
	body := fmt.Sprintf("%4d | %s", d.Line, srcLine)
	// Token carries no column (spec.md §3), so the caret marks the start
	// of the line rather than the exact offending character.
	caretLine := "       ^"
	msg := d.Message

	if useColor {
		header = color.New(color.Bold).Sprint(header)
		caretLine = color.New(color.FgRed, color.Bold).Sprint(caretLine)
		msg = color.New(color.Bold).Sprint(msg)
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s", header, body, caretLine, msg)
}

func fileOr(f string) string {
	if f == "" {
		return "<input>"
	}
	return f
}

// Reporter accumulates diagnostics for one interpreter run. It is always
// instance-scoped — never package-level state — so that multiple
// interpreters can be embedded safely in one process.
type Reporter struct {
	out             io.Writer
	useColor        bool
	source          string
	file            string
	diagnostics     []Diagnostic
	hadError        bool
	hadRuntimeError bool
}

// New creates a Reporter writing formatted diagnostics to w.
func New(w io.Writer) *Reporter {
	return &Reporter{out: w}
}

// WithColor toggles ANSI coloring of reported diagnostics.
func (r *Reporter) WithColor(on bool) *Reporter {
	r.useColor = on
	return r
}

// WithSource attaches the current run's source text and file name so
// later diagnostics can render a caret line.
func (r *Reporter) WithSource(source, file string) *Reporter {
	r.source = source
	r.file = file
	return r
}

// Report records a diagnostic, sets the appropriate flag, and writes the
// formatted message to the reporter's writer.
func (r *Reporter) Report(d Diagnostic) {
	if d.Source == "" {
		d.Source = r.source
	}
	if d.File == "" {
		d.File = r.file
	}
	r.diagnostics = append(r.diagnostics, d)
	if d.Kind == RuntimeError {
		r.hadRuntimeError = true
	} else {
		r.hadError = true
	}
	if r.out != nil {
		fmt.Fprintln(r.out, d.Format(r.useColor))
	}
}

// Error is a convenience for the common "line + message" shape used by
// the scanner and parser.
func (r *Reporter) Error(kind Kind, line int, message string) {
	r.Report(Diagnostic{Kind: kind, Line: line, Message: message})
}

// ErrorAt reports an error anchored to a specific token-ish location,
// following the book's "at 'lexeme'" / "at end" convention.
func (r *Reporter) ErrorAt(kind Kind, line int, where, message string) {
	r.Report(Diagnostic{Kind: kind, Line: line, Where: where, Message: message})
}

// Reset clears accumulated diagnostics and had_error, but preserves
// had_runtime_error's independence. ResetSession builds on it and also
// clears had_runtime_error.
func (r *Reporter) Reset() {
	r.diagnostics = nil
	r.hadError = false
}

// ResetSession clears every per-line flag, including had_runtime_error —
// used by REPL front ends that want each line's status independent of
// the last, rather than a runtime error from one line permanently
// marking the whole session as failed.
func (r *Reporter) ResetSession() {
	r.Reset()
	r.hadRuntimeError = false
}

func (r *Reporter) HadError() bool        { return r.hadError }
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}
