package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/lox/internal/diagnostics"
	"github.com/cwbudde/lox/internal/lexer"
	"github.com/cwbudde/lox/internal/parser"
)

func TestStatementsToJSONProducesOneEntryPerStatement(t *testing.T) {
	var buf bytes.Buffer
	r := diagnostics.New(&buf)
	tokens := lexer.New(`print 1; var x = 2;`, r).ScanTokens()
	stmts := parser.New(tokens, r).Parse()
	if r.HadError() {
		t.Fatalf("unexpected parse error(s): %v", r.Diagnostics())
	}

	doc, err := statementsToJSON(stmts)
	if err != nil {
		t.Fatalf("statementsToJSON failed: %v", err)
	}
	if !strings.Contains(doc, `"statements"`) {
		t.Fatalf("expected a statements array in the JSON document, got %s", doc)
	}
	if !strings.Contains(doc, `(print 1)`) || !strings.Contains(doc, `(var x 2)`) {
		t.Fatalf("expected both statement dumps present, got %s", doc)
	}
}
