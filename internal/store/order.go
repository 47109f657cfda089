package store

import (
	"sort"
	"strings"

	"nous-cli/internal/model"
)

// Sibling order is strict and total: Position ascending, then CreatedAt, then
// ID. The archive folder sorts after every sibling regardless of Position.

func CompareFolders(a, b model.Folder) int {
	if a.IsArchiveFolder() != b.IsArchiveFolder() {
		if a.IsArchiveFolder() {
			return 1
		}
		return -1
	}
	if a.Position != b.Position {
		if a.Position < b.Position {
			return -1
		}
		return 1
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		if a.CreatedAt.Before(b.CreatedAt) {
			return -1
		}
		return 1
	}
	return strings.Compare(a.ID, b.ID)
}

func ComparePages(a, b model.Page) int {
	if a.Position != b.Position {
		if a.Position < b.Position {
			return -1
		}
		return 1
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		if a.CreatedAt.Before(b.CreatedAt) {
			return -1
		}
		return 1
	}
	return strings.Compare(a.ID, b.ID)
}

func CompareSections(a, b model.Section) int {
	if a.Position != b.Position {
		if a.Position < b.Position {
			return -1
		}
		return 1
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		if a.CreatedAt.Before(b.CreatedAt) {
			return -1
		}
		return 1
	}
	return strings.Compare(a.ID, b.ID)
}

func SortFolders(fs []model.Folder) {
	sort.SliceStable(fs, func(i, j int) bool { return CompareFolders(fs[i], fs[j]) < 0 })
}

func SortPages(ps []model.Page) {
	sort.SliceStable(ps, func(i, j int) bool { return ComparePages(ps[i], ps[j]) < 0 })
}

func SortSections(ss []model.Section) {
	sort.SliceStable(ss, func(i, j int) bool { return CompareSections(ss[i], ss[j]) < 0 })
}

// NextFolderPosition returns max(sibling positions)+1 among the standard
// folders under parentID in notebookID, or 0 for the first sibling.
func NextFolderPosition(db *DB, notebookID string, parentID *string) int {
	next := 0
	for _, f := range db.Folders {
		if f.NotebookID != notebookID || f.IsArchiveFolder() {
			continue
		}
		if !SameRef(f.ParentID, parentID) {
			continue
		}
		if f.Position >= next {
			next = f.Position + 1
		}
	}
	return next
}

// NextPagePosition returns max(sibling positions)+1 for the page container
// identified by (folderID, parentPageID), or 0 for the first sibling.
func NextPagePosition(db *DB, notebookID string, folderID, parentPageID *string) int {
	next := 0
	for _, p := range db.Pages {
		if p.NotebookID != notebookID {
			continue
		}
		if !SameRef(p.FolderID, folderID) || !SameRef(p.ParentPageID, parentPageID) {
			continue
		}
		if p.Position >= next {
			next = p.Position + 1
		}
	}
	return next
}

func NextSectionPosition(db *DB, notebookID string) int {
	next := 0
	for _, s := range db.Sections {
		if s.NotebookID != notebookID {
			continue
		}
		if s.Position >= next {
			next = s.Position + 1
		}
	}
	return next
}
