package main

import (
	"os"
	"strings"

	"nous-cli/internal/cli"
)

func isPageID(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "pg-") && len(s) > len("pg-")
}

// Persistent flags that consume the following token when written as
// `--flag value`. The `--flag=value` form is self-contained.
var valueFlags = map[string]bool{
	"--dir":      true,
	"--notebook": true,
	"--format":   true,
}

// firstPositional returns the index of the first non-flag token of argv,
// skipping persistent flags and their values, or -1 when there is none.
// A bare `--` ends flag parsing: whatever follows it is positional.
func firstPositional(argv []string) int {
	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) {
				return i + 1
			}
			return -1
		}
		if strings.HasPrefix(a, "-") {
			if valueFlags[a] && !strings.Contains(a, "=") {
				i++
			}
			// Boolean and unknown flags are skipped without consuming a
			// value, so a page id after them is never swallowed.
			continue
		}
		return i
	}
	return -1
}

// rewritePageShortcut lets `nous pg-xxxx` stand for `nous pages show pg-xxxx`.
// The rewrite happens before cobra sees argv, since cobra would otherwise
// read the id as an unknown subcommand.
func rewritePageShortcut(argv []string) []string {
	i := firstPositional(argv)
	if i < 0 || !isPageID(argv[i]) {
		return argv
	}
	out := make([]string, 0, len(argv)+2)
	out = append(out, argv[:i]...)
	out = append(out, "pages", "show")
	out = append(out, argv[i:]...)
	return out
}

func main() {
	os.Args = rewritePageShortcut(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
