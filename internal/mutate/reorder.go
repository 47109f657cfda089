package mutate

import (
	"time"

	"nous-cli/internal/store"
)

// ReorderPages assigns dense 0-based positions to the sibling group
// identified by (folderID, parentID) from the given ID order. The list must
// be a permutation of the full sibling group; a partial or foreign list is
// rejected so positions never go sparse or collide.
func ReorderPages(db *store.DB, notebookID string, folderID, parentID *string, orderedIDs []string) (bool, error) {
	folderID = normalizeRef(folderID)
	parentID = normalizeRef(parentID)

	group := map[string]int{}
	count := 0
	for i := range db.Pages {
		p := &db.Pages[i]
		if p.NotebookID != notebookID {
			continue
		}
		if !store.SameRef(p.FolderID, folderID) || !store.SameRef(p.ParentPageID, parentID) {
			continue
		}
		group[p.ID] = i
		count++
	}
	if len(orderedIDs) != count {
		return false, validationf("reorder list has %d ids, sibling group has %d", len(orderedIDs), count)
	}

	seen := map[string]bool{}
	changed := false
	now := time.Now().UTC()
	for pos, id := range orderedIDs {
		if seen[id] {
			return false, validationf("reorder list repeats id %s", id)
		}
		seen[id] = true
		idx, ok := group[id]
		if !ok {
			return false, validationf("page %s is not in the sibling group", id)
		}
		p := &db.Pages[idx]
		if p.Position != pos {
			p.Position = pos
			p.UpdatedAt = now
			changed = true
		}
	}
	if changed {
		db.InvalidateIndexes()
	}
	return changed, nil
}

// ReorderFolders assigns dense positions to the standard folders under
// parentID. The archive folder is pinned last by sorting, not by position,
// and cannot appear in the list.
func ReorderFolders(db *store.DB, notebookID string, parentID *string, orderedIDs []string) (bool, error) {
	parentID = normalizeRef(parentID)

	group := map[string]int{}
	count := 0
	for i := range db.Folders {
		f := &db.Folders[i]
		if f.NotebookID != notebookID || f.IsArchiveFolder() {
			continue
		}
		if !store.SameRef(f.ParentID, parentID) {
			continue
		}
		group[f.ID] = i
		count++
	}
	if len(orderedIDs) != count {
		return false, validationf("reorder list has %d ids, sibling group has %d", len(orderedIDs), count)
	}

	seen := map[string]bool{}
	changed := false
	now := time.Now().UTC()
	for pos, id := range orderedIDs {
		if seen[id] {
			return false, validationf("reorder list repeats id %s", id)
		}
		seen[id] = true
		idx, ok := group[id]
		if !ok {
			if f, found := db.FindFolder(id); found && f.IsArchiveFolder() {
				return false, validationf("the archive folder cannot be reordered")
			}
			return false, validationf("folder %s is not in the sibling group", id)
		}
		f := &db.Folders[idx]
		if f.Position != pos {
			f.Position = pos
			f.UpdatedAt = now
			changed = true
		}
	}
	if changed {
		db.InvalidateIndexes()
	}
	return changed, nil
}
