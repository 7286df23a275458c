package repl

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/shellsense/shellsense/internal/inventory"
)

// inventoryCompleter implements readline.AutoCompleter backed by the
// command inventory. Only the first word of a line is completed; the
// inventory knows nothing about file arguments.
type inventoryCompleter struct {
	inv *inventory.Inventory
}

func newInventoryCompleter(inv *inventory.Inventory) *inventoryCompleter {
	return &inventoryCompleter{inv: inv}
}

// Do implements the readline.AutoCompleter interface.
func (c *inventoryCompleter) Do(line []rune, pos int) ([][]rune, int) {
	typed := string(line[:pos])
	if strings.ContainsAny(typed, " \t") {
		// Past the command word; nothing to offer.
		return nil, 0
	}

	var candidates [][]rune
	for _, name := range c.inv.Suggest(typed) {
		candidates = append(candidates, []rune(name[len(typed):]))
	}
	return candidates, len(typed)
}

// nearestCommand returns the known command closest to token within an
// edit distance of 2, for did-you-mean hints on rejected input.
func nearestCommand(inv *inventory.Inventory, token string) (string, bool) {
	if token == "" {
		return "", false
	}

	best := ""
	bestDist := 3
	for _, name := range inv.Names() {
		d := levenshtein.ComputeDistance(token, name)
		if d < bestDist {
			best, bestDist = name, d
		}
	}
	return best, best != ""
}
