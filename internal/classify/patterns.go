package classify

import "regexp"

// naturalPattern pairs a category label with a compiled indicator
// pattern. The table is scanned in order and the first match wins, so
// order is part of the behavior. Patterns and threshold values were
// tuned empirically; treat them as constants, not protocol.
type naturalPattern struct {
	category string
	re       *regexp.Regexp
}

var naturalPatterns = []naturalPattern{
	// Comparative language
	{"comparative", regexp.MustCompile(`\b(better|worse|best|worst)\s+(than|of)\b`)},
	{"comparative", regexp.MustCompile(`\bcompared?\s+to\b`)},
	{"comparative", regexp.MustCompile(`\bvs\b|\bversus\b`)},
	// Possessive and descriptive patterns
	{"possessive", regexp.MustCompile(`\bmy\s+(favorite|preferred|personal)\b`)},
	{"possessive", regexp.MustCompile(`\bis\s+my\s+(favorite|preferred)\b`)},
	{"capability", regexp.MustCompile(`\bcan\s+(locate|find|search|help|assist|manage|handle|create|remove|display|show)\b`)},
	{"capability", regexp.MustCompile(`\b(helps?|assists?)\s+(navigate|with|you|me|us)\b`)},
	// Question patterns
	{"copular", regexp.MustCompile(`\bis\s+(the|this|that|a|an)\b`)},
	{"copular", regexp.MustCompile(`\bare\s+(the|these|those)\b`)},
	{"copular", regexp.MustCompile(`\bwhich\s+(one|is|are)\b`)},
	// Conversational patterns
	{"conversational", regexp.MustCompile(`\b(can|could|should|would)\s+you\b`)},
	{"conversational", regexp.MustCompile(`\bplease\s+(help|tell|show)\b`)},
	{"conversational", regexp.MustCompile(`\btell\s+me\s+about\b`)},
	{"conversational", regexp.MustCompile(`\bhelp\s+me\s+(with|understand)\b`)},
	// Articles + descriptive words
	{"determiner", regexp.MustCompile(`\bthe\s+(latest|newest|oldest|current|main|primary|best)\b`)},
	{"determiner", regexp.MustCompile(`\ba\s+(new|good|bad|better|simple|useful)\b`)},
	{"determiner", regexp.MustCompile(`\ban\s+(old|new|existing)\b`)},
	// Explanatory language
	{"explanatory", regexp.MustCompile(`\bhow\s+(to|do|does)\b`)},
	{"explanatory", regexp.MustCompile(`\bwhat\s+(is|are|does)\b`)},
	{"explanatory", regexp.MustCompile(`\bwhy\s+(is|are|does)\b`)},
	// Deictic references
	{"deictic", regexp.MustCompile(`\bthis\s+(command|file|directory|is)\b`)},
	{"deictic", regexp.MustCompile(`\bthat\s+(command|file|directory)\b`)},
	{"deictic", regexp.MustCompile(`\ball\s+\w+\s+(files|directories|commands|in)\b`)},
}

// questionWords veto input that opens like a question. Matched
// case-insensitively against the start of the raw line.
var questionWords = []string{"what ", "how ", "why ", "when ", "where ", "who "}

// conversationalStarters veto input that opens like a request to an
// assistant rather than a command.
var conversationalStarters = []string{
	"tell me",
	"can you",
	"please ",
	"i want",
	"i need",
	"could you",
	"would you",
	"help me",
}

// builtins are command names treated as always valid without an
// inventory or runtime lookup: shell builtins plus utilities common
// enough that a missing PATH scan should not misclassify them. The
// list is closed and not configurable.
var builtins = map[string]struct{}{
	"ls": {}, "cd": {}, "pwd": {}, "echo": {}, "export": {}, "source": {},
	"alias": {}, "unalias": {}, "history": {}, "jobs": {}, "fg": {}, "bg": {},
	"kill": {}, "wait": {}, "exec": {}, "eval": {}, "test": {}, "[": {},
	"printf": {}, "read": {}, "set": {}, "unset": {}, "shift": {}, "exit": {},
	"return": {}, "break": {}, "continue": {}, "which": {}, "type": {},
	"command": {}, "builtin": {}, "declare": {}, "local": {}, "readonly": {},
	"true": {}, "false": {}, "git": {}, "mkdir": {}, "rm": {}, "cp": {},
	"mv": {}, "cat": {}, "grep": {}, "find": {}, "chmod": {}, "sudo": {},
	"apt": {}, "yum": {}, "dnf": {}, "pacman": {}, "brew": {}, "docker": {},
	"ssh": {}, "clear": {},
}

// stopWords is the closed set of common function words used by the
// density heuristic.
var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "are": {}, "and": {}, "or": {}, "but": {},
	"for": {}, "to": {}, "of": {}, "in": {}, "on": {}, "at": {},
	"by": {}, "with": {}, "all": {},
}

// stopWordThreshold is the stop-word fraction above which text with
// more than stopWordMinWords words is treated as natural language.
const (
	stopWordThreshold = 0.4
	stopWordMinWords  = 2
)
