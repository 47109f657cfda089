package mutate

import (
	"errors"
	"testing"

	"nous-cli/internal/store"
)

func TestCreateNotebookFirstBecomesCurrent(t *testing.T) {
	db := &store.DB{}
	s := store.Store{}
	nb, err := CreateNotebook(s, db, "First")
	if err != nil {
		t.Fatal(err)
	}
	if db.CurrentNotebookID != nb.ID {
		t.Fatalf("current = %q, want %q", db.CurrentNotebookID, nb.ID)
	}
	nb2, err := CreateNotebook(s, db, "Second")
	if err != nil {
		t.Fatal(err)
	}
	if db.CurrentNotebookID == nb2.ID {
		t.Fatal("second notebook must not steal current")
	}
}

func TestDeleteNotebookCascadesAndRepointsCurrent(t *testing.T) {
	db := testDB()
	s := store.Store{}
	nb2, err := CreateNotebook(s, db, "Other")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DeleteNotebook(db, "nb1"); err != nil {
		t.Fatal(err)
	}
	if db.CurrentNotebookID != nb2.ID {
		t.Fatalf("current = %q, want %q", db.CurrentNotebookID, nb2.ID)
	}
	if len(db.Folders) != 0 || len(db.Pages) != 0 || len(db.Sections) != 0 {
		t.Fatalf("cascade left %d folders, %d pages, %d sections",
			len(db.Folders), len(db.Pages), len(db.Sections))
	}
}

func TestCreateFolderRejectsArchiveParent(t *testing.T) {
	db := testDB()
	_, err := CreateFolder(store.Store{}, db, "nb1", "Inside", sp("fa"), nil)
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestCreateFolderTakesEndPosition(t *testing.T) {
	db := testDB()
	f, err := CreateFolder(store.Store{}, db, "nb1", "Third", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Position != 2 {
		t.Fatalf("position = %d, want 2 (after f1 and f2)", f.Position)
	}
}

func TestDeleteFolderReparentsContents(t *testing.T) {
	db := testDB()
	sub, err := CreateFolder(store.Store{}, db, "nb1", "Sub", sp("f1"), nil)
	if err != nil {
		t.Fatal(err)
	}
	subID := sub.ID
	if _, err := DeleteFolder(db, "f1"); err != nil {
		t.Fatal(err)
	}
	if _, ok := db.FindFolder("f1"); ok {
		t.Fatal("folder still present")
	}
	// Direct pages of f1 land at notebook root; the nested e keeps its parent.
	for _, id := range []string{"a", "b", "c"} {
		if p := mustPage(db, id); p.FolderID != nil {
			t.Fatalf("%s.FolderID = %v, want nil (notebook root)", id, p.FolderID)
		}
	}
	if p := mustPage(db, "e"); p.ParentPageID == nil || *p.ParentPageID != "b" {
		t.Fatal("nested page lost its parent")
	}
	if f := mustFolder(db, subID); f.ParentID != nil {
		t.Fatalf("sub.ParentID = %v, want nil", f.ParentID)
	}
}

func TestDeleteFolderRefusesArchive(t *testing.T) {
	db := testDB()
	_, err := DeleteFolder(db, "fa")
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestCreatePageRejectsFolderAndParentTogether(t *testing.T) {
	db := testDB()
	_, err := CreatePage(store.Store{}, db, "nb1", "Bad", sp("f1"), sp("a"), nil)
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestDeletePageReparentsChildrenToGrandparent(t *testing.T) {
	db := testDB()
	// e is nested under b; deleting b hands e to b's container, folder f1.
	if _, err := DeletePage(db, "b"); err != nil {
		t.Fatal(err)
	}
	if _, ok := db.FindPage("b"); ok {
		t.Fatal("page still present")
	}
	e := mustPage(db, "e")
	if e.ParentPageID != nil {
		t.Fatalf("e.ParentPageID = %v, want nil", e.ParentPageID)
	}
	if e.FolderID == nil || *e.FolderID != "f1" {
		t.Fatalf("e.FolderID = %v, want f1", e.FolderID)
	}
}

func TestDeletePageMidChainKeepsGrandchildrenNested(t *testing.T) {
	db := testDB()
	g, err := CreatePage(store.Store{}, db, "nb1", "Grandchild", nil, sp("e"), nil)
	if err != nil {
		t.Fatal(err)
	}
	gid := g.ID
	if _, err := DeletePage(db, "e"); err != nil {
		t.Fatal(err)
	}
	p := mustPage(db, gid)
	if p.ParentPageID == nil || *p.ParentPageID != "b" {
		t.Fatalf("grandchild parent = %v, want b", p.ParentPageID)
	}
	if p.FolderID != nil {
		t.Fatalf("grandchild folder = %v, want nil while nested", p.FolderID)
	}
}

func TestDeleteSectionClearsReferences(t *testing.T) {
	db := testDB()
	if _, err := SetFolderSection(db, "f2", sp("s1")); err != nil {
		t.Fatal(err)
	}
	if _, err := DeleteSection(db, "s1"); err != nil {
		t.Fatal(err)
	}
	if _, ok := db.FindSection("s1"); ok {
		t.Fatal("section still present")
	}
	if mustFolder(db, "f2").SectionID != nil {
		t.Fatal("folder still references the deleted section")
	}
	if mustPage(db, "d").SectionID != nil {
		t.Fatal("page still references the deleted section")
	}
}

func TestRenamePageRefreshesWarmIndexes(t *testing.T) {
	db := testDB()

	// Warm the adjacency indexes, which hold page copies.
	warm := db.PagesInFolder(sp("f1"))
	if len(warm) != 3 {
		t.Fatalf("warm view has %d pages, want 3", len(warm))
	}

	if _, err := RenamePage(db, "a", "Renamed"); err != nil {
		t.Fatal(err)
	}
	for _, p := range db.PagesInFolder(sp("f1")) {
		if p.ID == "a" && p.Title != "Renamed" {
			t.Fatalf("index still serves title %q", p.Title)
		}
	}

	if _, err := RenameFolder(db, "f1", "Renamed Folder"); err != nil {
		t.Fatal(err)
	}
	for _, f := range db.FoldersUnder(nil) {
		if f.ID == "f1" && f.Name != "Renamed Folder" {
			t.Fatalf("index still serves folder name %q", f.Name)
		}
	}
}

func TestDeleteSectionRefreshesWarmIndexes(t *testing.T) {
	db := testDB()
	if _, err := SetPageSection(db, "a", sp("s1")); err != nil {
		t.Fatal(err)
	}
	db.PagesInFolder(sp("f1")) // warm

	if _, err := DeleteSection(db, "s1"); err != nil {
		t.Fatal(err)
	}
	for _, p := range db.PagesInFolder(sp("f1")) {
		if p.ID == "a" && p.SectionID != nil {
			t.Fatal("index still serves the deleted section")
		}
	}
}

func TestRenameTrimsAndValidates(t *testing.T) {
	db := testDB()
	if _, err := RenamePage(db, "a", "  Renamed  "); err != nil {
		t.Fatal(err)
	}
	if got := mustPage(db, "a").Title; got != "Renamed" {
		t.Fatalf("title = %q", got)
	}
	_, err := RenameFolder(db, "f1", "   ")
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
