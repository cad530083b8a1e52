package cmd

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/cwbudde/lox/internal/diagnostics"
	"github.com/cwbudde/lox/internal/lexer"
	"github.com/cwbudde/lox/internal/token"
)

var (
	showPos     bool
	onlyErrors  bool
	prettyLex   bool
)

var debugLexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a Lox file and print the resulting tokens",
	Long: `Run only the scanner stage and print the tokens it produces.

Examples:
  # Tokenize a script file
  lox debug lex script.lox

  # Show line numbers next to each token
  lox debug lex --show-pos script.lox

  # Show only scan errors (unterminated strings, unexpected characters)
  lox debug lex --only-errors script.lox`,
	Args: cobra.ExactArgs(1),
	RunE: runDebugLex,
}

func init() {
	debugCmd.AddCommand(debugLexCmd)

	debugLexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's source line")
	debugLexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "print only scan errors, not tokens")
	debugLexCmd.Flags().BoolVar(&prettyLex, "pretty", false, "render tokens with github.com/kr/pretty instead of the one-line form")
}

func runDebugLex(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	reporter := diagnostics.New(os.Stderr).WithColor(!noColor).WithSource(source, filename)
	l := lexer.New(source, reporter)
	tokens := l.ScanTokens()

	if onlyErrors {
		if reporter.HadError() {
			return fmt.Errorf("found %d scan error(s)", len(reporter.Diagnostics()))
		}
		return nil
	}

	for _, tok := range tokens {
		printToken(tok)
	}

	if reporter.HadError() {
		return fmt.Errorf("found %d scan error(s)", len(reporter.Diagnostics()))
	}
	return nil
}

func printToken(tok token.Token) {
	if prettyLex {
		fmt.Printf("%# v\n", pretty.Formatter(tok))
		return
	}
	if showPos {
		fmt.Printf("[line %d] %s\n", tok.Line, tok.String())
		return
	}
	fmt.Println(tok.String())
}
