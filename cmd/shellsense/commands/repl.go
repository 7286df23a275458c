package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shellsense/shellsense/internal/classify"
	"github.com/shellsense/shellsense/internal/inventory"
	"github.com/shellsense/shellsense/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

// newClassifier builds the classifier from the live environment,
// honoring config overrides for the alias shell and lookup utility.
func newClassifier() *classify.Classifier {
	inv := inventory.New(inventory.Options{
		Shell:        cfg.Shell,
		WhichCommand: cfg.WhichCommand,
	})
	inv.LoadPath(os.Getenv("PATH"))
	inv.LoadAliases()
	return classify.New(inv)
}

func runRepl() error {
	return repl.New(cfg, newClassifier()).Run()
}
