package tree

import (
	"testing"
	"time"

	"nous-cli/internal/model"
	"nous-cli/internal/store"
)

func sp(s string) *string { return &s }

func at(min int) time.Time {
	return time.Date(2026, 1, 1, 0, min, 0, 0, time.UTC)
}

func fixtureDB() *store.DB {
	return &store.DB{
		Notebooks: []model.Notebook{{ID: "nb1", Name: "Notes"}},
		Folders: []model.Folder{
			// Archive stored first with position 0 to prove pinning ignores position.
			{ID: "fa", NotebookID: "nb1", Name: "Archive", FolderType: model.FolderTypeArchive, Position: 0, CreatedAt: at(0)},
			{ID: "f2", NotebookID: "nb1", Name: "Two", FolderType: model.FolderTypeStandard, Position: 2, CreatedAt: at(1)},
			{ID: "f1", NotebookID: "nb1", Name: "One", FolderType: model.FolderTypeStandard, Position: 1, SectionID: sp("s1"), CreatedAt: at(2)},
			{ID: "f3", NotebookID: "nb1", Name: "Hidden", FolderType: model.FolderTypeStandard, Position: 3, Archived: true, CreatedAt: at(3)},
			{ID: "sub", NotebookID: "nb1", Name: "Sub", FolderType: model.FolderTypeStandard, ParentID: sp("f1"), Position: 0, CreatedAt: at(4)},
		},
		Pages: []model.Page{
			{ID: "p2", NotebookID: "nb1", Title: "P2", FolderID: sp("f1"), Position: 1, CreatedAt: at(5)},
			{ID: "p1", NotebookID: "nb1", Title: "P1", FolderID: sp("f1"), Position: 0, SectionID: sp("s1"), CreatedAt: at(6)},
			{ID: "p3", NotebookID: "nb1", Title: "P3", FolderID: sp("f1"), Position: 2, Archived: true, CreatedAt: at(7)},
			{ID: "child", NotebookID: "nb1", Title: "Child", ParentPageID: sp("p1"), Position: 0, CreatedAt: at(8)},
			{ID: "root1", NotebookID: "nb1", Title: "Root", Position: 0, CreatedAt: at(9)},
		},
		Sections: []model.Section{
			{ID: "s1", NotebookID: "nb1", Name: "Now", Position: 0},
		},
	}
}

func folderIDs(fs []model.Folder) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.ID
	}
	return out
}

func pageIDs(ps []model.Page) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func equalIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestChildFoldersOrderAndArchivePinning(t *testing.T) {
	ix := NewIndex(fixtureDB(), "nb1", Filter{})
	got := folderIDs(ix.ChildFolders(nil))
	// Position ascending, archive last despite its position 0; archived f3 hidden.
	equalIDs(t, got, []string{"f1", "f2", "fa"})
}

func TestChildFoldersShowArchived(t *testing.T) {
	ix := NewIndex(fixtureDB(), "nb1", Filter{ShowArchived: true})
	got := folderIDs(ix.ChildFolders(nil))
	equalIDs(t, got, []string{"f1", "f2", "f3", "fa"})
}

func TestChildFoldersOfParent(t *testing.T) {
	ix := NewIndex(fixtureDB(), "nb1", Filter{})
	got := folderIDs(ix.ChildFolders(sp("f1")))
	equalIDs(t, got, []string{"sub"})
}

func TestTopLevelPagesExcludeNestedAndArchived(t *testing.T) {
	ix := NewIndex(fixtureDB(), "nb1", Filter{})
	got := pageIDs(ix.TopLevelPages(sp("f1")))
	equalIDs(t, got, []string{"p1", "p2"})
}

func TestChildPages(t *testing.T) {
	ix := NewIndex(fixtureDB(), "nb1", Filter{})
	got := pageIDs(ix.ChildPages("p1"))
	equalIDs(t, got, []string{"child"})
}

func TestRootPages(t *testing.T) {
	ix := NewIndex(fixtureDB(), "nb1", Filter{})
	got := pageIDs(ix.RootPages())
	equalIDs(t, got, []string{"root1"})
}

func TestSectionFilterStatesAreDistinct(t *testing.T) {
	db := fixtureDB()

	all := NewIndex(db, "nb1", Filter{Section: model.NoSectionFilter()})
	unsorted := NewIndex(db, "nb1", Filter{Section: model.UnsortedOnly()})
	onlyS1 := NewIndex(db, "nb1", Filter{Section: model.SectionOnly("s1")})

	equalIDs(t, pageIDs(all.TopLevelPages(sp("f1"))), []string{"p1", "p2"})
	equalIDs(t, pageIDs(unsorted.TopLevelPages(sp("f1"))), []string{"p2"})
	equalIDs(t, pageIDs(onlyS1.TopLevelPages(sp("f1"))), []string{"p1"})

	equalIDs(t, folderIDs(unsorted.ChildFolders(nil)), []string{"f2", "fa"})
	equalIDs(t, folderIDs(onlyS1.ChildFolders(nil)), []string{"f1"})
}

func TestSiblingOrderTieBreaksOnCreatedAtThenID(t *testing.T) {
	db := &store.DB{
		Notebooks: []model.Notebook{{ID: "nb1"}},
		Pages: []model.Page{
			{ID: "z", NotebookID: "nb1", Position: 0, CreatedAt: at(2)},
			{ID: "b", NotebookID: "nb1", Position: 0, CreatedAt: at(1)},
			{ID: "a", NotebookID: "nb1", Position: 0, CreatedAt: at(2)},
		},
	}
	ix := NewIndex(db, "nb1", Filter{})
	equalIDs(t, pageIDs(ix.RootPages()), []string{"b", "a", "z"})
}
