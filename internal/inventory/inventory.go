// Package inventory maintains the set of command names known to be
// executable in the current session. The set is seeded from the search
// path and the user's shell aliases, and grows lazily as new commands
// are confirmed at classification time. It never shrinks.
package inventory

import (
	"context"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/shellsense/shellsense/internal/logging"
)

const (
	defaultShell = "/bin/bash"
	defaultWhich = "which"

	// maxSuggestions caps Suggest results. Purely advisory output, so a
	// short unranked list is enough.
	maxSuggestions = 10

	// subprocessTimeout bounds the alias and which sub-invocations so a
	// hung shell rc file cannot wedge the session.
	subprocessTimeout = 5 * time.Second
)

var aliasLineRe = regexp.MustCompile(`alias\s+([^=]+)=`)

// Options configures an Inventory. Zero values fall back to the live
// environment, so tests can inject everything explicitly while the REPL
// uses NewFromEnvironment.
type Options struct {
	// Shell is the program used to report aliases. Empty means $SHELL,
	// falling back to /bin/bash.
	Shell string
	// WhichCommand is the lookup utility used by RuntimeExists.
	// Empty means "which".
	WhichCommand string
	// Fs is the filesystem scanned by LoadPath. Empty means the OS
	// filesystem.
	Fs afero.Fs
	// Timeout bounds each sub-invocation. Zero means 5s.
	Timeout time.Duration
}

// Inventory is a mutable, case-sensitive set of command names. All
// methods are safe for concurrent use; RuntimeExists performs a
// read-then-insert and takes the write path.
type Inventory struct {
	mu    sync.RWMutex
	names map[string]struct{}

	fs      afero.Fs
	shell   string
	which   string
	timeout time.Duration
}

// New creates an empty Inventory with the given options. Callers are
// expected to seed it with LoadPath and LoadAliases.
func New(opts Options) *Inventory {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Shell == "" {
		opts.Shell = os.Getenv("SHELL")
	}
	if opts.Shell == "" {
		opts.Shell = defaultShell
	}
	if opts.WhichCommand == "" {
		opts.WhichCommand = defaultWhich
	}
	if opts.Timeout <= 0 {
		opts.Timeout = subprocessTimeout
	}

	return &Inventory{
		names:   make(map[string]struct{}),
		fs:      opts.Fs,
		shell:   opts.Shell,
		which:   opts.WhichCommand,
		timeout: opts.Timeout,
	}
}

// NewFromEnvironment builds an Inventory seeded from the live
// environment: every executable on $PATH plus the user's shell aliases.
func NewFromEnvironment() *Inventory {
	inv := New(Options{})
	inv.LoadPath(os.Getenv("PATH"))
	inv.LoadAliases()
	return inv
}

// LoadPath scans every directory in the given search-path value and
// inserts the names of executable regular files. Missing or unreadable
// directories are skipped; a broken PATH entry must not abort startup.
func (inv *Inventory) LoadPath(pathEnv string) {
	for _, dir := range strings.Split(pathEnv, string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		entries, err := afero.ReadDir(inv.fs, dir)
		if err != nil {
			logging.Debug().Str("dir", dir).Err(err).Msg("skipping unreadable PATH entry")
			continue
		}
		inv.mu.Lock()
		for _, entry := range entries {
			if !entry.Mode().IsRegular() {
				continue
			}
			if !isExecutable(entry.Mode()) {
				continue
			}
			inv.names[entry.Name()] = struct{}{}
		}
		inv.mu.Unlock()
	}

	logging.Debug().Int("commands", inv.Len()).Msg("search path scanned")
}

// isExecutable reports whether a file mode marks the file runnable. On
// platforms without POSIX permission bits this relaxes to "is a regular
// file"; LoadPath has already checked regularity.
func isExecutable(mode os.FileMode) bool {
	if runtime.GOOS == "windows" {
		return true
	}
	return mode.Perm()&0o111 != 0
}

// LoadAliases asks the configured shell to print its alias table and
// inserts every alias name. The shell runs with -i so interactive rc
// files (where aliases live) are loaded. Any failure leaves the
// inventory without aliases; this is best-effort.
func (inv *Inventory) LoadAliases() {
	ctx, cancel := context.WithTimeout(context.Background(), inv.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, inv.shell, "-i", "-c", "alias").Output()
	if err != nil {
		logging.Debug().Str("shell", inv.shell).Err(err).Msg("alias discovery failed")
		return
	}

	count := 0
	inv.mu.Lock()
	for _, line := range strings.Split(string(out), "\n") {
		if name, ok := parseAlias(line); ok {
			inv.names[name] = struct{}{}
			count++
		}
	}
	inv.mu.Unlock()

	logging.Debug().Int("aliases", count).Str("shell", inv.shell).Msg("aliases loaded")
}

// parseAlias extracts the alias name from one line of `alias` output:
// everything between "alias" and the first "=", trimmed.
func parseAlias(line string) (string, bool) {
	m := aliasLineRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return "", false
	}
	return name, true
}

// Contains reports exact, case-sensitive membership.
func (inv *Inventory) Contains(name string) bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	_, ok := inv.names[name]
	return ok
}

// RuntimeExists is the last-resort existence check: it shells out to
// the lookup utility and, on success, caches the name so the subprocess
// never runs again for it. Any failure returns false without mutating
// the set.
func (inv *Inventory) RuntimeExists(name string) bool {
	if inv.Contains(name) {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), inv.timeout)
	defer cancel()

	if err := exec.CommandContext(ctx, inv.which, name).Run(); err != nil {
		return false
	}

	inv.Insert(name)
	logging.Debug().Str("command", name).Msg("discovered at runtime")
	return true
}

// Insert adds a name to the inventory.
func (inv *Inventory) Insert(name string) {
	inv.mu.Lock()
	inv.names[name] = struct{}{}
	inv.mu.Unlock()
}

// Suggest returns up to 10 command names starting with prefix, in map
// iteration order. Suggestions are advisory; they are deliberately not
// ranked.
func (inv *Inventory) Suggest(prefix string) []string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	var matches []string
	for name := range inv.names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	return matches
}

// Names returns a snapshot of every known command name, in map
// iteration order.
func (inv *Inventory) Names() []string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	names := make([]string, 0, len(inv.names))
	for name := range inv.names {
		names = append(names, name)
	}
	return names
}

// Len returns the number of known commands.
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.names)
}
