package mutate

import (
	"strings"
	"time"

	"nous-cli/internal/store"
	"nous-cli/internal/tree"
)

// MovePageToFolder puts a page directly into a folder (nil folderID means
// notebook root). Any parent-page nesting is cleared in the same call, and
// the page takes the end position among its new siblings.
func MovePageToFolder(db *store.DB, pageID string, folderID *string) (bool, error) {
	p, ok := db.FindPage(pageID)
	if !ok {
		return false, NotFoundError{Kind: "page", ID: pageID}
	}
	folderID = normalizeRef(folderID)
	if folderID != nil {
		f, ok := db.FindFolder(*folderID)
		if !ok {
			return false, NotFoundError{Kind: "folder", ID: *folderID}
		}
		if f.NotebookID != p.NotebookID {
			return false, validationf("folder %s belongs to a different notebook", f.ID)
		}
	}
	if p.ParentPageID == nil && store.SameRef(p.FolderID, folderID) {
		return false, nil
	}
	pos := store.NextPagePosition(db, p.NotebookID, folderID, nil)
	p.ParentPageID = nil
	p.FolderID = folderID
	p.Position = pos
	p.UpdatedAt = time.Now().UTC()
	db.InvalidateIndexes()
	return true, nil
}

// MovePageToParent nests a page under another page, or detaches it when
// parentID is nil. Nesting clears the folder: the page's effective location
// becomes wherever its parent page is. Detaching lands the page at the top
// level of the folder its parent chain was effectively in, or at notebook
// root when that chain had no folder.
func MovePageToParent(db *store.DB, pageID string, parentID *string) (bool, error) {
	p, ok := db.FindPage(pageID)
	if !ok {
		return false, NotFoundError{Kind: "page", ID: pageID}
	}
	parentID = normalizeRef(parentID)

	if parentID == nil {
		if p.ParentPageID == nil {
			return false, nil
		}
		folderID := effectiveFolder(db, *p.ParentPageID)
		pos := store.NextPagePosition(db, p.NotebookID, folderID, nil)
		p.ParentPageID = nil
		p.FolderID = folderID
		p.Position = pos
		p.UpdatedAt = time.Now().UTC()
		db.InvalidateIndexes()
		return true, nil
	}

	if *parentID == p.ID {
		return false, CycleError{PageID: p.ID, ParentID: *parentID}
	}
	parent, ok := db.FindPage(*parentID)
	if !ok {
		return false, NotFoundError{Kind: "page", ID: *parentID}
	}
	if parent.NotebookID != p.NotebookID {
		return false, validationf("page %s belongs to a different notebook", parent.ID)
	}
	if tree.IsDescendantPage(db, p.ID, parent.ID) {
		return false, CycleError{PageID: p.ID, ParentID: parent.ID}
	}
	if store.SameRef(p.ParentPageID, parentID) {
		return false, nil
	}
	pid := parent.ID
	pos := store.NextPagePosition(db, p.NotebookID, nil, parentID)
	p.ParentPageID = &pid
	p.FolderID = nil
	p.Position = pos
	p.UpdatedAt = time.Now().UTC()
	db.InvalidateIndexes()
	return true, nil
}

// effectiveFolder walks the parent chain upward from parentID and returns
// the folder of the topmost ancestor. A visited set tolerates corrupt
// chains; a broken link falls back to notebook root.
func effectiveFolder(db *store.DB, parentID string) *string {
	visited := map[string]bool{}
	cur := strings.TrimSpace(parentID)
	for cur != "" && !visited[cur] {
		visited[cur] = true
		p, ok := db.FindPage(cur)
		if !ok {
			return nil
		}
		if p.ParentPageID == nil || strings.TrimSpace(*p.ParentPageID) == "" {
			return p.FolderID
		}
		cur = strings.TrimSpace(*p.ParentPageID)
	}
	return nil
}
