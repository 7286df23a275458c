package repl

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/shellsense/shellsense/internal/classify"
	"github.com/shellsense/shellsense/internal/logging"
)

// Runner executes classified shell lines. It tracks the working
// directory (cd is handled in-process; a child process cannot change
// its parent's directory) and keeps the session's command history.
type Runner struct {
	cwd     string
	history []string
}

// NewRunner creates a Runner rooted at the current working directory.
func NewRunner() *Runner {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &Runner{cwd: cwd}
}

// Cwd returns the tracked working directory.
func (r *Runner) Cwd() string {
	return r.cwd
}

// History returns a copy of the commands run this session.
func (r *Runner) History() []string {
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// Run executes one line that has already been classified as a shell
// command. Execution errors are returned for rendering, never fatal.
func (r *Runner) Run(input string) error {
	tokens, err := classify.Tokenize(input)
	if err != nil || len(tokens) == 0 {
		return err
	}

	if tokens[0] == "cd" {
		if err := r.changeDir(tokens[1:]); err != nil {
			return err
		}
		r.history = append(r.history, input)
		return nil
	}

	cmd := exec.Command(tokens[0], tokens[1:]...)
	cmd.Dir = r.cwd
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return err
	}
	r.history = append(r.history, input)

	if err := cmd.Wait(); err != nil {
		logging.Debug().Str("command", tokens[0]).Err(err).Msg("command exited with error")
		// Non-zero exit is normal shell life, not a REPL error.
		if _, ok := err.(*exec.ExitError); ok {
			return nil
		}
		return err
	}
	return nil
}

// changeDir implements cd. No argument goes home; a lone "~" or a
// "~/..." prefix is expanded, since there is no shell in front of us
// to do it.
func (r *Runner) changeDir(args []string) error {
	target := ""
	if len(args) > 0 {
		target = args[0]
	}

	if target == "" || target == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cd: %w", err)
		}
		target = home
	} else if strings.HasPrefix(target, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cd: %w", err)
		}
		target = home + target[1:]
	}

	if err := os.Chdir(target); err != nil {
		return fmt.Errorf("cd: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cd: %w", err)
	}
	r.cwd = cwd
	return nil
}
