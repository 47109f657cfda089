package dnd

import (
	"time"

	"nous-cli/internal/model"
	"nous-cli/internal/store"
)

func sp(s string) *string { return &s }

func at(min int) time.Time {
	return time.Date(2026, 1, 1, 0, min, 0, 0, time.UTC)
}

// testDB: notebook nb1 with folders f1, f2 and the archive folder fa; pages
// a, b, c ordered in f1; page d in f2; page e nested under b; sections s1, s2.
func testDB() *store.DB {
	return &store.DB{
		CurrentNotebookID: "nb1",
		Notebooks: []model.Notebook{
			{ID: "nb1", Name: "Notes", CreatedAt: at(0)},
		},
		Folders: []model.Folder{
			{ID: "f1", NotebookID: "nb1", Name: "Work", FolderType: model.FolderTypeStandard, Position: 0, CreatedAt: at(1)},
			{ID: "f2", NotebookID: "nb1", Name: "Home", FolderType: model.FolderTypeStandard, Position: 1, SectionID: sp("s1"), CreatedAt: at(2)},
			{ID: "fa", NotebookID: "nb1", Name: "Archive", FolderType: model.FolderTypeArchive, Position: 0, CreatedAt: at(3)},
		},
		Pages: []model.Page{
			{ID: "a", NotebookID: "nb1", Title: "A", FolderID: sp("f1"), Position: 0, CreatedAt: at(4)},
			{ID: "b", NotebookID: "nb1", Title: "B", FolderID: sp("f1"), Position: 1, CreatedAt: at(5)},
			{ID: "c", NotebookID: "nb1", Title: "C", FolderID: sp("f1"), Position: 2, CreatedAt: at(6)},
			{ID: "d", NotebookID: "nb1", Title: "D", FolderID: sp("f2"), Position: 0, SectionID: sp("s1"), CreatedAt: at(7)},
			{ID: "e", NotebookID: "nb1", Title: "E", ParentPageID: sp("b"), Position: 0, CreatedAt: at(8)},
			{ID: "r", NotebookID: "nb1", Title: "R", Position: 0, CreatedAt: at(9)},
		},
		Sections: []model.Section{
			{ID: "s1", NotebookID: "nb1", Name: "Now", Position: 0, CreatedAt: at(10)},
			{ID: "s2", NotebookID: "nb1", Name: "Later", Position: 1, CreatedAt: at(11)},
		},
	}
}

func page(db *store.DB, id string) model.Page {
	p, ok := db.FindPage(id)
	if !ok {
		panic("missing fixture page " + id)
	}
	return *p
}

func folder(db *store.DB, id string) model.Folder {
	f, ok := db.FindFolder(id)
	if !ok {
		panic("missing fixture folder " + id)
	}
	return *f
}
