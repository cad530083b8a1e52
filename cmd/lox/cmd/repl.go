package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/lox/internal/config"
	"github.com/cwbudde/lox/internal/replterm"
	"github.com/cwbudde/lox/pkg/lox"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Lox session",
	Long:  `Start a read-eval-print loop over the evaluator, with line editing and history.`,
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(_ *cobra.Command, _ []string) error {
	cfg := config.LoadOrDefault(configPath)
	if noColor {
		cfg.Color = false
	}

	interpreter := lox.New(lox.WithOutput(os.Stdout), lox.WithColor(cfg.Color))
	term := replterm.New(cfg, interpreter, os.Stdout)
	os.Exit(term.Start())
	return nil
}
