package cmd

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/diagnostics"
	"github.com/cwbudde/lox/internal/interp"
	"github.com/cwbudde/lox/internal/lexer"
	"github.com/cwbudde/lox/internal/parser"
	"github.com/cwbudde/lox/internal/resolver"
)

var (
	dumpAST bool
	trace   bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Lox script",
	Long: `Execute a Lox program read from a file.

Examples:
  # Run a script file
  lox run script.lox

  # Run with the parsed AST dumped first (for debugging)
  lox run --dump-ast script.lox

  # Print the global names (pretty-printed) before executing
  lox run --trace script.lox`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before executing")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print the pretty-printed global names to stderr before executing")
}

func runScript(_ *cobra.Command, args []string) error {
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
		os.Exit(65)
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(ast.Print(statements))
		fmt.Println()
	}

	evaluator := interp.New(os.Stdout, reporter)

	res := resolver.New(evaluator, reporter)
	res.Resolve(statements)

	if reporter.HadError() {
		os.Exit(65)
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[trace] globals before run: %# v\n", pretty.Formatter(evaluator.GlobalNames()))
	}

	evaluator.Interpret(statements)

	if reporter.HadRuntimeError() {
		os.Exit(70)
	}
	return nil
}
