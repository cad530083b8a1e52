package ast

import (
	"testing"

	"github.com/cwbudde/lox/internal/token"
)

func tok(typ token.Type, lexeme string) token.Token {
	return token.New(typ, lexeme, nil, 1)
}

func TestPrintBinaryExpression(t *testing.T) {
	expr := NewBinaryExpr(
		NewLiteralExpr(1.0),
		tok(token.PLUS, "+"),
		NewLiteralExpr(2.0),
	)
	stmt := NewExpressionStmt(expr)

	got := Print([]Stmt{stmt})
	want := "(expr (+ 1 2))\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintVarDeclarationWithoutInitializer(t *testing.T) {
	stmt := NewVarStmt(tok(token.IDENTIFIER, "x"), nil)
	got := Print([]Stmt{stmt})
	want := "(var x)\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintNilLiteral(t *testing.T) {
	stmt := NewExpressionStmt(NewLiteralExpr(nil))
	got := Print([]Stmt{stmt})
	want := "(expr nil)\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
