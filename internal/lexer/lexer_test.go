package lexer

import (
	"bytes"
	"testing"

	"github.com/cwbudde/lox/internal/diagnostics"
	"github.com/cwbudde/lox/internal/token"
)

func scan(t *testing.T, source string) ([]token.Token, *diagnostics.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	r := diagnostics.New(&buf)
	l := New(source, r)
	return l.ScanTokens(), r
}

func TestSingleAndDoubleCharTokens(t *testing.T) {
	tokens, r := scan(t, "(){},.-+;*!= <= >= ==")

	expected := []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL, token.EQUAL_EQUAL,
		token.EOF,
	}

	if r.HadError() {
		t.Fatalf("unexpected scan error(s): %v", r.Diagnostics())
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(expected), tokens)
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Fatalf("tokens[%d] = %s, want %s", i, tokens[i].Type, tt)
		}
	}
}

func TestLineCommentsAreIgnored(t *testing.T) {
	tokens, r := scan(t, "1 // this is a comment\n2")
	if r.HadError() {
		t.Fatalf("unexpected scan error(s): %v", r.Diagnostics())
	}
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3 (NUMBER NUMBER EOF): %v", len(tokens), tokens)
	}
	if tokens[0].Literal.(float64) != 1 || tokens[1].Literal.(float64) != 2 {
		t.Fatalf("unexpected literals: %v %v", tokens[0].Literal, tokens[1].Literal)
	}
}

func TestStringLiteral(t *testing.T) {
	tokens, r := scan(t, `"hello world"`)
	if r.HadError() {
		t.Fatalf("unexpected scan error(s): %v", r.Diagnostics())
	}
	if tokens[0].Type != token.STRING {
		t.Fatalf("got %s, want STRING", tokens[0].Type)
	}
	if tokens[0].Literal.(string) != "hello world" {
		t.Fatalf("got literal %q, want %q", tokens[0].Literal, "hello world")
	}
}

func TestUnterminatedStringReportsError(t *testing.T) {
	_, r := scan(t, `"unterminated`)
	if !r.HadError() {
		t.Fatalf("expected a scan error for an unterminated string")
	}
}

func TestNumberLiteral(t *testing.T) {
	tokens, _ := scan(t, "123 45.67")
	if tokens[0].Literal.(float64) != 123 {
		t.Fatalf("got %v, want 123", tokens[0].Literal)
	}
	if tokens[1].Literal.(float64) != 45.67 {
		t.Fatalf("got %v, want 45.67", tokens[1].Literal)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	tokens, _ := scan(t, "class fun orchid while")
	expected := []token.Type{token.CLASS, token.FUN, token.IDENTIFIER, token.WHILE, token.EOF}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Fatalf("tokens[%d] = %s, want %s", i, tokens[i].Type, tt)
		}
	}
}

func TestUnexpectedCharacterReportsErrorButContinues(t *testing.T) {
	tokens, r := scan(t, "1 @ 2")
	if !r.HadError() {
		t.Fatalf("expected a scan error for '@'")
	}
	// The scanner should still have produced both numbers around the bad
	// character, matching the book's "report and continue" recovery.
	var sawOne, sawTwo bool
	for _, tok := range tokens {
		if tok.Type == token.NUMBER && tok.Literal.(float64) == 1 {
			sawOne = true
		}
		if tok.Type == token.NUMBER && tok.Literal.(float64) == 2 {
			sawTwo = true
		}
	}
	if !sawOne || !sawTwo {
		t.Fatalf("expected both numbers to still be scanned, got %v", tokens)
	}
}

func TestAlwaysEndsWithEOF(t *testing.T) {
	tokens, _ := scan(t, "")
	if len(tokens) != 1 || tokens[0].Type != token.EOF {
		t.Fatalf("empty source should scan to a single EOF token, got %v", tokens)
	}
}
