// Package replterm implements the interactive REPL front end. It is
// external-collaborator plumbing per spec.md §1 ("the command-line
// front-end... REPL line editing" is out of core scope), but it is
// still built in the teacher's idiom rather than left as a bare
// bufio.Scanner loop.
//
// The teacher (CWBudde-go-dws) has no REPL at all — DWScript's CLI is
// file-mode or bytecode-compile only — so this package is grounded
// entirely on akashmaji946-go-mix/repl/repl.go: chzyer/readline for line
// editing and history, fatih/color for colored prompts/errors, and the
// ".exit"-style meta-command convention.
package replterm

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/maruel/natural"

	"github.com/cwbudde/lox/internal/config"
	"github.com/cwbudde/lox/pkg/lox"
)

var (
	promptColor = color.New(color.FgCyan, color.Bold)
	errorColor  = color.New(color.FgRed)
	bannerColor = color.New(color.FgYellow)
)

// REPL drives one interactive session over an *lox.Interpreter.
type REPL struct {
	cfg     *config.Config
	interp  *lox.Interpreter
	out     io.Writer
	useColor bool
}

func New(cfg *config.Config, interp *lox.Interpreter, out io.Writer) *REPL {
	return &REPL{cfg: cfg, interp: interp, out: out, useColor: cfg.Color}
}

// Start runs the read-eval-print loop until EOF, Ctrl-D, or the .exit
// meta-command. spec.md §6.3: "REPL sessions never exit with these
// codes based on a single input" — Start always returns 0.
func (r *REPL) Start() int {
	r.printBanner()

	prompt := r.cfg.Prompt
	if r.useColor {
		prompt = promptColor.Sprint(r.cfg.Prompt)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     r.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		fmt.Fprintln(r.out, "lox: could not start readline:", err)
		return 0
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return 0
		}
		if err != nil {
			return 0
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" || line == ".quit" {
			return 0
		}
		if r.handleMeta(line) {
			continue
		}

		result := r.interp.RunREPLLine(ensureTerminated(line))
		if result.HadError || result.HadRuntimeError {
			for _, d := range result.Diagnostics {
				msg := d.Error()
				if r.useColor {
					msg = errorColor.Sprint(msg)
				}
				fmt.Fprintln(r.out, msg)
			}
		}
	}
}

// handleMeta intercepts the REPL's own non-Lox introspection commands.
// Returns true if line was handled as a meta-command.
func (r *REPL) handleMeta(line string) bool {
	switch line {
	case ".globals":
		names := r.interp.GlobalNames()
		sort.Sort(natural.StringSlice(names))
		fmt.Fprintln(r.out, strings.Join(names, "\n"))
		return true
	default:
		return false
	}
}

func (r *REPL) printBanner() {
	if r.useColor {
		fmt.Fprintln(r.out, bannerColor.Sprint(r.cfg.Banner))
	} else {
		fmt.Fprintln(r.out, r.cfg.Banner)
	}
}

// ensureTerminated appends a trailing ';' to bare expressions typed at
// the REPL without one, a REPL-only convenience not part of the
// language grammar itself (statements still require ';' when run from
// a file).
func ensureTerminated(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return line
	}
	if strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "}") {
		return line
	}
	return line + ";"
}
