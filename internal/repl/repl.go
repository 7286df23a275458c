// Package repl runs the interactive session around the classifier:
// line editing, history, completion, and execution of lines that
// classify as shell commands.
package repl

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/shellsense/shellsense/internal/classify"
	"github.com/shellsense/shellsense/internal/config"
)

// Repl wires the classifier, runner, and renderer into a readline
// loop.
type Repl struct {
	cfg      config.Config
	cls      *classify.Classifier
	runner   *Runner
	renderer *Renderer
}

// New creates a Repl over an already-constructed classifier.
func New(cfg config.Config, cls *classify.Classifier) *Repl {
	return &Repl{
		cfg:      cfg,
		cls:      cls,
		runner:   NewRunner(),
		renderer: NewRenderer(false),
	}
}

// Run blocks until the user exits (EOF or "exit").
func (r *Repl) Run() error {
	var completer readline.AutoCompleter
	if r.cfg.Suggestions {
		completer = newInventoryCompleter(r.cls.Inventory())
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            r.prompt(),
		HistoryFile:       r.cfg.HistoryFile,
		HistorySearchFold: true,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		AutoComplete:      completer,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	r.renderer.Banner(r.cls.Inventory().Len())

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		switch {
		case input == "":
			continue
		case strings.EqualFold(input, "exit"):
			return nil
		case input == "history":
			r.renderer.History(r.runner.History())
			continue
		}

		if r.cls.IsShellCommand(input) {
			if err := r.runner.Run(input); err != nil {
				r.renderer.Error(err)
			}
			// cd may have moved us; refresh the prompt.
			rl.SetPrompt(r.prompt())
			continue
		}

		r.renderer.NaturalLanguage(input)
		r.hintNearMiss(input)
	}
}

// hintNearMiss prints a did-you-mean line when the rejected input
// opens with something close to a known command ("gti status" and the
// like).
func (r *Repl) hintNearMiss(input string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return
	}
	token := fields[0]
	if r.cls.Inventory().Contains(token) {
		// The command was fine; the arguments read as language.
		return
	}
	if name, ok := nearestCommand(r.cls.Inventory(), token); ok {
		r.renderer.DidYouMean(name)
	}
}

// prompt renders the configured prompt with the last element of the
// working directory.
func (r *Repl) prompt() string {
	base := filepath.Base(r.runner.Cwd())
	if !strings.Contains(r.cfg.Prompt, "%s") {
		return r.cfg.Prompt
	}
	return strings.Replace(r.cfg.Prompt, "%s", base, 1)
}
