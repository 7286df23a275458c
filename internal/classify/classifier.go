// Package classify decides whether a line of user input is a shell
// command or natural-language text. The decision is a pure boolean:
// downstream either executes the line or it doesn't, so no confidence
// score is kept. All heuristics are rule-based; misparses and lookup
// failures always degrade toward "not a command".
package classify

import (
	"strings"

	"github.com/shellsense/shellsense/internal/inventory"
	"github.com/shellsense/shellsense/internal/logging"
)

// Classifier applies the verdict cascade over a shared command
// inventory. It keeps no other state between calls; the inventory is
// the only thing that changes (it grows when a runtime lookup
// succeeds).
type Classifier struct {
	inv *inventory.Inventory
}

// New creates a Classifier over an already-seeded inventory.
func New(inv *inventory.Inventory) *Classifier {
	return &Classifier{inv: inv}
}

// NewFromEnvironment builds the classifier the REPL uses: inventory
// seeded from $PATH and the user's shell aliases.
func NewFromEnvironment() *Classifier {
	return New(inventory.NewFromEnvironment())
}

// Inventory exposes the underlying inventory for completion and
// did-you-mean hints. Callers must not shrink it.
func (c *Classifier) Inventory() *inventory.Inventory {
	return c.inv
}

// IsShellCommand reports whether the input line should be executed as
// a shell command. It never returns an error: anything unparsable or
// unrecognized is simply not a command.
func (c *Classifier) IsShellCommand(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	// Cheap, high-precision vetoes before any tokenization.
	if isObviousNaturalLanguage(text) {
		logging.Debug().Str("input", text).Msg("verdict: obvious natural language")
		return false
	}

	tokens, err := Tokenize(text)
	if err != nil {
		// Unterminated quoting and the like. Treat unparsable input as
		// non-shell rather than guessing.
		logging.Debug().Str("input", text).Err(err).Msg("verdict: tokenization failed")
		return false
	}
	if len(tokens) == 0 {
		return false
	}

	command, args := tokens[0], tokens[1:]
	if !c.isValidCommand(command) {
		logging.Debug().Str("command", command).Msg("verdict: unknown command")
		return false
	}

	return c.argsLookLikeShell(text, args)
}

// Suggestions returns up to 10 known command names starting with
// partial. Advisory only; never affects the verdict.
func (c *Classifier) Suggestions(partial string) []string {
	return c.inv.Suggest(partial)
}

// isObviousNaturalLanguage catches input that could not plausibly be a
// command: trailing question marks, leading question words, and
// conversational openers.
func isObviousNaturalLanguage(text string) bool {
	lower := strings.ToLower(text)

	if strings.HasSuffix(lower, "?") {
		return true
	}
	for _, w := range questionWords {
		if strings.HasPrefix(lower, w) {
			return true
		}
	}
	for _, s := range conversationalStarters {
		if strings.HasPrefix(lower, s) {
			return true
		}
	}
	return false
}

// isValidCommand checks the leading token through four layers:
// explicit paths are always valid, then the builtin set, then the
// inventory, then the runtime lookup (which caches on success).
func (c *Classifier) isValidCommand(command string) bool {
	if strings.HasPrefix(command, "./") || strings.HasPrefix(command, "/") ||
		strings.Contains(command, "/") {
		return true
	}
	if _, ok := builtins[command]; ok {
		return true
	}
	if c.inv.Contains(command) {
		return true
	}
	return c.inv.RuntimeExists(command)
}

// argsLookLikeShell decides whether the argument text vetoes the
// verdict. Quoted spans are excluded from the scan: a search string
// handed to grep is allowed to read like English.
func (c *Classifier) argsLookLikeShell(original string, args []string) bool {
	if len(args) == 0 {
		return true
	}

	if strings.ContainsAny(original, `'"`) {
		residue := extractUnquoted(original)
		if strings.TrimSpace(residue) == "" {
			return true
		}
		return !c.looksNatural(residue)
	}

	return !c.looksNatural(strings.Join(args, " "))
}

// looksNatural scans text for natural-language indicators: first the
// ordered pattern table (first match wins), then the stop-word density
// heuristic over anything longer than two words.
func (c *Classifier) looksNatural(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	lower := strings.ToLower(text)

	for _, p := range naturalPatterns {
		if p.re.MatchString(lower) {
			logging.Debug().Str("category", p.category).Str("text", text).Msg("verdict: pattern veto")
			return true
		}
	}

	words := strings.Fields(lower)
	if len(words) > stopWordMinWords {
		count := 0
		for _, w := range words {
			if _, ok := stopWords[w]; ok {
				count++
			}
		}
		if float64(count)/float64(len(words)) > stopWordThreshold {
			logging.Debug().Str("text", text).Msg("verdict: stop-word density veto")
			return true
		}
	}

	return false
}
