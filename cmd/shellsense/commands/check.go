package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <text>...",
	Short: "Classify one line and exit",
	Long: `Classify the given text as a shell command or natural language.
Prints "shell" or "natural"; exits 0 for shell and 1 for natural, so it
can be used from scripts.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")
		if newClassifier().IsShellCommand(text) {
			fmt.Println("shell")
			return
		}
		fmt.Println("natural")
		os.Exit(1)
	},
}
