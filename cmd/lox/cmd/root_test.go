package cmd

import "testing"

func TestRootCommandRegistersExpectedSubcommands(t *testing.T) {
	want := map[string]bool{
		"run":     false,
		"repl":    false,
		"debug":   false,
		"version": false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected rootCmd to register a %q subcommand", name)
		}
	}
}

func TestDebugCommandRegistersLexAndParse(t *testing.T) {
	want := map[string]bool{"lex": false, "parse": false}
	for _, c := range debugCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected debugCmd to register a %q subcommand", name)
		}
	}
}
