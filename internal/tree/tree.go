// Package tree derives the visible notebook hierarchy from a store snapshot.
// All queries are read-only and return sorted copies; nothing here mutates
// the DB.
package tree

import (
	"nous-cli/internal/model"
	"nous-cli/internal/store"
)

// Filter controls which folders and pages the index surfaces. The zero value
// hides archived items and applies no section filter.
type Filter struct {
	ShowArchived bool
	Section      model.SectionFilter
}

type Index struct {
	db         *store.DB
	notebookID string
	filter     Filter
}

func NewIndex(db *store.DB, notebookID string, filter Filter) *Index {
	return &Index{db: db, notebookID: notebookID, filter: filter}
}

// ChildFolders returns the visible folders directly under parentID (nil for
// root-level folders), position ascending with the archive folder pinned
// last. The archive folder itself is subject to the section filter like any
// other folder.
func (ix *Index) ChildFolders(parentID *string) []model.Folder {
	var out []model.Folder
	for _, f := range ix.db.FoldersUnder(parentID) {
		if f.NotebookID != ix.notebookID {
			continue
		}
		if f.Archived && !ix.filter.ShowArchived {
			continue
		}
		if !ix.filter.Section.Matches(f.SectionID) {
			continue
		}
		out = append(out, f)
	}
	store.SortFolders(out)
	return out
}

// TopLevelPages returns the visible pages living directly in folderID (nil
// for notebook root), position ascending. Pages nested under a parent page
// are never included.
func (ix *Index) TopLevelPages(folderID *string) []model.Page {
	var out []model.Page
	for _, p := range ix.db.PagesInFolder(folderID) {
		if !ix.visiblePage(p) {
			continue
		}
		out = append(out, p)
	}
	store.SortPages(out)
	return out
}

// ChildPages returns the visible pages nested directly under parentPageID,
// position ascending.
func (ix *Index) ChildPages(parentPageID string) []model.Page {
	var out []model.Page
	for _, p := range ix.db.ChildPagesOf(parentPageID) {
		if !ix.visiblePage(p) {
			continue
		}
		out = append(out, p)
	}
	store.SortPages(out)
	return out
}

// RootPages returns the visible pages at notebook root: no folder, no
// parent page.
func (ix *Index) RootPages() []model.Page {
	return ix.TopLevelPages(nil)
}

// Sections returns the notebook's sections, position ascending. Sections are
// not subject to the filter; they define it.
func (ix *Index) Sections() []model.Section {
	var out []model.Section
	for _, s := range ix.db.Sections {
		if s.NotebookID != ix.notebookID {
			continue
		}
		out = append(out, s)
	}
	store.SortSections(out)
	return out
}

func (ix *Index) visiblePage(p model.Page) bool {
	if p.NotebookID != ix.notebookID {
		return false
	}
	if p.Archived && !ix.filter.ShowArchived {
		return false
	}
	return ix.filter.Section.Matches(p.SectionID)
}
