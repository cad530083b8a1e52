package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	noColor    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "lox",
	Short: "Lox interpreter",
	Long: `lox is a tree-walking interpreter for the Lox language described in
Crafting Interpreters: a scanner, a recursive-descent parser, a static
resolver and a visitor-based evaluator, with a REPL and a pair of
debug subcommands for inspecting the lexer and parser stages directly.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a .loxrc.yaml (or .json) file")
}
