// Command lox is the CLI front end for the interpreter: file execution,
// an interactive REPL, and lexer/parser debugging subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/lox/cmd/lox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
