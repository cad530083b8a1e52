package interp

import "github.com/cwbudde/lox/internal/token"

// RuntimeError is the evaluator's own error type (spec.md §4.7's
// "had_runtime_error" source). It carries the failing token when one is
// available so the top-level run loop can report "[line L]" underneath
// the message, per spec.md §4.7.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(tok token.Token, message string) error {
	return &RuntimeError{Token: tok, Message: message}
}
