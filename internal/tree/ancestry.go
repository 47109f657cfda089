package tree

import (
	"strings"

	"nous-cli/internal/store"
)

// IsDescendantPage reports whether page nodeID sits anywhere in the subtree
// rooted at ancestorID, following ParentPageID links upward from nodeID. A
// visited set guards against corrupt (cyclic) parent chains; a missing
// parent terminates the walk, treating the page as rooted.
func IsDescendantPage(db *store.DB, ancestorID, nodeID string) bool {
	if ancestorID == "" || nodeID == "" {
		return false
	}
	visited := map[string]bool{}
	cur := nodeID
	for {
		if visited[cur] {
			return false
		}
		visited[cur] = true
		p, ok := db.FindPage(cur)
		if !ok || p.ParentPageID == nil {
			return false
		}
		parent := strings.TrimSpace(*p.ParentPageID)
		if parent == "" {
			return false
		}
		if parent == ancestorID {
			return true
		}
		cur = parent
	}
}

// IsDescendantFolder is the folder-chain counterpart, following ParentID.
func IsDescendantFolder(db *store.DB, ancestorID, nodeID string) bool {
	if ancestorID == "" || nodeID == "" {
		return false
	}
	visited := map[string]bool{}
	cur := nodeID
	for {
		if visited[cur] {
			return false
		}
		visited[cur] = true
		f, ok := db.FindFolder(cur)
		if !ok || f.ParentID == nil {
			return false
		}
		parent := strings.TrimSpace(*f.ParentID)
		if parent == "" {
			return false
		}
		if parent == ancestorID {
			return true
		}
		cur = parent
	}
}
