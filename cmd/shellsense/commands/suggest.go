package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <prefix>",
	Short: "List known commands matching a prefix",
	Long: `List up to 10 known command names starting with the given prefix.
The list is advisory and unranked; it draws from the same inventory the
classifier uses.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range newClassifier().Suggestions(args[0]) {
			fmt.Println(name)
		}
	},
}
