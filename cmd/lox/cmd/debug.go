package cmd

import "github.com/spf13/cobra"

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Lexer/parser inspection subcommands",
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
