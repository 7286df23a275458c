package repl

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Renderer styles the REPL's own output so it stays distinguishable
// from child-process output.
type Renderer struct {
	out io.Writer
	err io.Writer

	dim    *color.Color
	notice *color.Color
	bad    *color.Color
}

// NewRenderer creates a Renderer writing to stdout/stderr.
func NewRenderer(noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	return &Renderer{
		out:    os.Stdout,
		err:    os.Stderr,
		dim:    color.New(color.FgHiBlack),
		notice: color.New(color.FgYellow),
		bad:    color.New(color.FgRed),
	}
}

// Banner prints the session header.
func (r *Renderer) Banner(commands int) {
	fmt.Fprintln(r.out, r.dim.Sprintf("shellsense: %d commands known. Type a command to run it, 'exit' to quit.", commands))
}

// NaturalLanguage reports that a line was classified as text, not a
// command.
func (r *Renderer) NaturalLanguage(input string) {
	fmt.Fprintln(r.out, r.notice.Sprint("not a shell command: "), input)
}

// DidYouMean prints a near-miss hint for an unknown leading token.
func (r *Renderer) DidYouMean(name string) {
	fmt.Fprintln(r.out, r.dim.Sprintf("did you mean %q?", name))
}

// History prints the session command history, oldest first.
func (r *Renderer) History(entries []string) {
	for i, entry := range entries {
		fmt.Fprintf(r.out, "%5d  %s\n", i+1, entry)
	}
}

// Error prints an execution error.
func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.err, r.bad.Sprint("error: "), err)
}
