package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AutoCommitEnabled reports whether NOUS_GIT_AUTOCOMMIT asks for a commit
// after every successful mutation. Off by default.
func AutoCommitEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NOUS_GIT_AUTOCOMMIT"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// CommitState stages the workspace state directory and commits it. Returns
// committed=false when the workspace is not inside a git repo or there is
// nothing to commit. Callers treat failures as non-fatal: a failed commit
// never blocks the mutation that triggered it.
func CommitState(ctx context.Context, stateDir string, message string) (committed bool, err error) {
	stateDir = filepath.Clean(stateDir)

	st, err := GetStatus(ctx, stateDir)
	if err != nil {
		return false, err
	}
	if !st.IsRepo {
		return false, nil
	}
	if st.Unmerged || st.InProgress {
		return false, errors.New("git repo has an in-progress merge/rebase; resolve first")
	}

	rel, err := relToRoot(st.Root, stateDir)
	if err != nil {
		return false, err
	}
	if _, err := git(ctx, st.Root, "add", "--", rel); err != nil {
		return false, err
	}

	staged, err := git(ctx, st.Root, "diff", "--cached", "--name-only")
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(staged) == "" {
		return false, nil
	}

	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = fmt.Sprintf("nous: update (%s)", time.Now().UTC().Format(time.RFC3339))
	}
	if _, err := git(ctx, st.Root, "commit", "-m", msg); err != nil {
		return false, err
	}
	return true, nil
}

func relToRoot(root, dir string) (string, error) {
	root = filepath.Clean(root)
	dir = filepath.Clean(dir)

	// Temp dirs can sit behind symlinks (/var -> /private/var on macOS)
	// while git reports a canonicalized root; normalize both sides so
	// Rel() does not think the dir is outside the repo.
	if v, err := filepath.EvalSymlinks(root); err == nil {
		root = v
	}
	if v, err := filepath.EvalSymlinks(dir); err == nil {
		dir = v
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "", err
	}
	return filepath.Clean(rel), nil
}
