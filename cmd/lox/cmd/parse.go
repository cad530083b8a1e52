package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/diagnostics"
	"github.com/cwbudde/lox/internal/lexer"
	"github.com/cwbudde/lox/internal/parser"
)

var (
	parseDumpAST bool
	parseJSON    bool
)

var debugParseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a Lox file and print the resulting AST",
	Long: `Run only the scanner and parser stages and print the statement list
they produce, as a parenthesized dump or as JSON.

Examples:
  # Print the parenthesized AST dump
  lox debug parse script.lox

  # Print the same tree as JSON
  lox debug parse --json script.lox`,
	Args: cobra.ExactArgs(1),
	RunE: runDebugParse,
}

func init() {
	debugCmd.AddCommand(debugParseCmd)

	debugParseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", true, "print the parenthesized AST dump")
	debugParseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the AST as JSON instead of the parenthesized dump")
}

func runDebugParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	reporter := diagnostics.New(os.Stderr).WithColor(!noColor).WithSource(source, filename)
	l := lexer.New(source, reporter)
	tokens := l.ScanTokens()

	p := parser.New(tokens, reporter)
	statements := p.Parse()

	if reporter.HadError() {
		return fmt.Errorf("parsing failed with %d error(s)", len(reporter.Diagnostics()))
	}

	if parseJSON {
		doc, err := statementsToJSON(statements)
		if err != nil {
			return err
		}
		fmt.Println(doc)
		return nil
	}

	if parseDumpAST {
		fmt.Print(ast.Print(statements))
	}
	return nil
}

// statementsToJSON builds a JSON document of the form
// {"statements": ["(print ...)", "(var x 1)", ...]} by setting each
// statement's parenthesized dump at its array index in turn, rather
// than marshaling the AST structs directly — this is the one place in
// the tree that exercises github.com/tidwall/sjson's incremental
// path-set API, a sibling to gjson's path-get used in internal/config.
func statementsToJSON(statements []ast.Stmt) (string, error) {
	doc := "{}"
	var err error
	for i, stmt := range statements {
		line := strings.TrimSpace(ast.Print([]ast.Stmt{stmt}))
		path := fmt.Sprintf("statements.%d", i)
		doc, err = sjson.Set(doc, path, line)
		if err != nil {
			return "", fmt.Errorf("failed to build AST JSON: %w", err)
		}
	}
	return doc, nil
}
