// Package lexer implements the Lox scanner: source text in, token stream
// out, per spec.md §4.1.
package lexer

import (
	"strconv"

	"github.com/cwbudde/lox/internal/diagnostics"
	"github.com/cwbudde/lox/internal/token"
	"golang.org/x/text/width"
)

// Lexer scans a complete source string into tokens. It never throws —
// lexical errors are reported through the shared diagnostics.Reporter
// and scanning continues, per spec.md §4.1.
type Lexer struct {
	source   string
	reporter *diagnostics.Reporter

	start   int
	current int
	line    int
}

// Option configures a Lexer at construction time, following the
// functional-options convention used throughout the teacher's codebase
// (internal/lexer.LexerOption in the original).
type Option func(*Lexer)

// WithNormalizedWidth folds fullwidth/halfwidth Unicode forms in the
// source to their canonical ASCII-range form before scanning begins,
// using golang.org/x/text/width — the teacher's own lexer worries about
// rune-width correctness for column tracking; Lox's simpler ASCII-biased
// grammar instead just normalizes fullwidth punctuation/digits so a
// pasted fullwidth `(` or `;` still scans as the ASCII token it visually
// resembles. Off unless this option is passed to New with enabled true.
func WithNormalizedWidth(enabled bool) Option {
	return func(l *Lexer) {
		if enabled {
			l.source = width.Narrow.String(l.source)
		}
	}
}

// New creates a Lexer over source, reporting scan errors through r.
func New(source string, r *diagnostics.Reporter, opts ...Option) *Lexer {
	l := &Lexer{source: source, reporter: r, line: 1}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var keywordsOK = token.LookupIdent // alias for readability at call sites

// ScanTokens scans the entire source and returns the resulting token
// list, always terminated by exactly one EOF token (spec.md invariant).
func (l *Lexer) ScanTokens() []token.Token {
	var tokens []token.Token
	for !l.isAtEnd() {
		l.start = l.current
		if tok, ok := l.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, token.New(token.EOF, "", nil, l.line))
	return tokens
}

func (l *Lexer) isAtEnd() bool { return l.current >= len(l.source) }

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) makeToken(typ token.Type) token.Token {
	return l.makeTokenWithLiteral(typ, nil)
}

func (l *Lexer) makeTokenWithLiteral(typ token.Type, literal interface{}) token.Token {
	text := l.source[l.start:l.current]
	return token.New(typ, text, literal, l.line)
}

// scanToken scans exactly one lexeme (or zero, for whitespace/comments)
// starting at l.start. ok is false when nothing should be emitted.
func (l *Lexer) scanToken() (token.Token, bool) {
	c := l.advance()
	switch c {
	case '(':
		return l.makeToken(token.LEFT_PAREN), true
	case ')':
		return l.makeToken(token.RIGHT_PAREN), true
	case '{':
		return l.makeToken(token.LEFT_BRACE), true
	case '}':
		return l.makeToken(token.RIGHT_BRACE), true
	case ',':
		return l.makeToken(token.COMMA), true
	case '.':
		return l.makeToken(token.DOT), true
	case '-':
		return l.makeToken(token.MINUS), true
	case '+':
		return l.makeToken(token.PLUS), true
	case ';':
		return l.makeToken(token.SEMICOLON), true
	case '*':
		return l.makeToken(token.STAR), true
	case '!':
		if l.match('=') {
			return l.makeToken(token.BANG_EQUAL), true
		}
		return l.makeToken(token.BANG), true
	case '=':
		if l.match('=') {
			return l.makeToken(token.EQUAL_EQUAL), true
		}
		return l.makeToken(token.EQUAL), true
	case '<':
		if l.match('=') {
			return l.makeToken(token.LESS_EQUAL), true
		}
		return l.makeToken(token.LESS), true
	case '>':
		if l.match('=') {
			return l.makeToken(token.GREATER_EQUAL), true
		}
		return l.makeToken(token.GREATER), true
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
			return token.Token{}, false
		}
		return l.makeToken(token.SLASH), true
	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		l.line++
		return token.Token{}, false
	case '"':
		return l.scanString()
	default:
		switch {
		case isDigit(c):
			return l.scanNumber(), true
		case isAlpha(c):
			return l.scanIdentifier(), true
		default:
			l.reporter.Error(diagnostics.ScanError, l.line, "Unexpected character.")
			return token.Token{}, false
		}
	}
}

func (l *Lexer) scanString() (token.Token, bool) {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.isAtEnd() {
		l.reporter.Error(diagnostics.ScanError, l.line, "Unterminated string.")
		return token.Token{}, false
	}
	l.advance() // closing quote
	// Slice out the contents without the surrounding quotes. Go's
	// half-open slicing (source[start:current]) is correct by
	// construction — there is no analogue of the reversed
	// Substring(start, start-current) bug noted in spec.md §9.
	value := l.source[l.start+1 : l.current-1]
	return l.makeTokenWithLiteral(token.STRING, value), true
}

func (l *Lexer) scanNumber() token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // consume '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	text := l.source[l.start:l.current]
	value, _ := strconv.ParseFloat(text, 64)
	return l.makeTokenWithLiteral(token.NUMBER, value)
}

func (l *Lexer) scanIdentifier() token.Token {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := l.source[l.start:l.current]
	return l.makeToken(keywordsOK(text))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
