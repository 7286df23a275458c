package classify

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/shellsense/shellsense/internal/inventory"
)

// newTestClassifier builds a classifier with a fully explicit
// inventory: no live PATH, no live shell, and a lookup utility that
// always fails so runtime discovery is deterministic.
func newTestClassifier(names ...string) *Classifier {
	inv := inventory.New(inventory.Options{
		Fs:           afero.NewMemMapFs(),
		Shell:        "/no/such/shell",
		WhichCommand: "/no/such/utility",
	})
	for _, name := range names {
		inv.Insert(name)
	}
	return New(inv)
}

func TestIsShellCommand(t *testing.T) {
	c := newTestClassifier("python3", "htop")

	tests := []struct {
		input string
		want  bool
	}{
		// Shell commands
		{"ls -la", true},
		{"git status", true},
		{"./my_script.sh", true},
		{"/usr/local/bin/tool --flag", true},
		{"cd ~/projects", true},
		{"echo 'hello world'", true},
		{"sudo apt update", true},
		{"docker ps -a", true},
		{"python3 script.py", true},
		{"htop", true},

		// Natural language
		{"", false},
		{"   ", false},
		{"what files are in this directory?", false},
		{"please show me the files", false},
		{"how do I list files?", false},
		{"can you help me find all text files", false},
		{"what is the best way to list files", false},
		{"i need to clean up my downloads", false},
		{"tell me about grep", false},

		// Quoted arguments must not veto a valid invocation
		{"grep 'search pattern' file.txt", true},
		{"grep 'what is the best way' file.txt", true},
		{`echo "hello world"`, true},
		{"grep 'is the best'", true},

		// Unknown leading token, lookup utility unavailable
		{"frobnicate everything now", false},

		// Unterminated quoting is a tokenization failure
		{"echo 'unterminated", false},
		{`grep "half quoted file.txt`, false},
	}

	for _, tt := range tests {
		if got := c.IsShellCommand(tt.input); got != tt.want {
			t.Errorf("IsShellCommand(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsShellCommandQuestionMarkAlwaysVetoes(t *testing.T) {
	c := newTestClassifier()

	// Even a perfectly valid leading command loses to a trailing "?".
	for _, input := range []string{"ls?", "git status?", "docker ps -a?"} {
		if c.IsShellCommand(input) {
			t.Errorf("IsShellCommand(%q) = true, want false", input)
		}
	}
}

func TestIsShellCommandIdempotent(t *testing.T) {
	c := newTestClassifier("python3")

	for _, input := range []string{"git status", "please show me the files", "python3 -m http.server"} {
		first := c.IsShellCommand(input)
		for i := 0; i < 3; i++ {
			if got := c.IsShellCommand(input); got != first {
				t.Errorf("IsShellCommand(%q) flapped from %v to %v", input, first, got)
			}
		}
	}
}

func TestLooksNatural(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		text string
		want bool
	}{
		// Natural language indicators
		{"better than the other command", true},
		{"my favorite command is", true},
		{"can you help me with", true},
		{"the best way to do this", true},
		{"compared to the old version", true},
		{"this command is broken", true},
		{"all text files in", true},
		{"how to archive a folder", true},

		// Shell-looking argument text
		{"-la ~/Documents", false},
		{"--all --long /path/to/dir", false},
		{"file.txt *.log", false},
		{"", false},
		{"-rf build/", false},
	}

	for _, tt := range tests {
		if got := c.looksNatural(tt.text); got != tt.want {
			t.Errorf("looksNatural(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestStopWordDensity(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		text string
		want bool
	}{
		// 3/4 stop words, above threshold
		{"for all of foo.txt", true},
		// 1/3 stop words, at most 0.33, below threshold
		{"src/ dest/ and", false},
		// Two words never trigger the density check
		{"the build", false},
	}

	for _, tt := range tests {
		if got := c.looksNatural(tt.text); got != tt.want {
			t.Errorf("looksNatural(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsValidCommand(t *testing.T) {
	c := newTestClassifier("python3")

	tests := []struct {
		command string
		want    bool
	}{
		{"./script.sh", true},
		{"/bin/ls", true},
		{"bin/tool", true},
		{"cd", true},
		{"[", true},
		{"git", true},
		{"python3", true},
		{"Python3", false},
		{"frobnicate", false},
	}

	for _, tt := range tests {
		if got := c.isValidCommand(tt.command); got != tt.want {
			t.Errorf("isValidCommand(%q) = %v, want %v", tt.command, got, tt.want)
		}
	}
}

func TestSuggestions(t *testing.T) {
	c := newTestClassifier("git", "gitk", "git-lfs", "go", "grep")

	got := c.Suggestions("gi")
	if len(got) == 0 || len(got) > 10 {
		t.Fatalf("Suggestions(gi) returned %d entries", len(got))
	}
	for _, name := range got {
		if !strings.HasPrefix(name, "gi") {
			t.Errorf("suggestion %q does not start with gi", name)
		}
	}

	if got := c.Suggestions("nothing-matches"); len(got) != 0 {
		t.Errorf("Suggestions(nothing-matches) = %v, want empty", got)
	}
}
