package mutate

import (
	"errors"
	"testing"

	"nous-cli/internal/model"
	"nous-cli/internal/tree"
)

func TestSetPageSection(t *testing.T) {
	db := testDB()
	changed, err := SetPageSection(db, "a", sp("s1"))
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("expected change")
	}
	p := mustPage(db, "a")
	if p.SectionID == nil || *p.SectionID != "s1" {
		t.Fatalf("section = %v, want s1", p.SectionID)
	}
	if p.Position != 0 {
		t.Fatalf("position = %d, section change must not move the page", p.Position)
	}
}

func TestSetPageSectionSameSectionIsNoOp(t *testing.T) {
	db := testDB()
	if _, err := SetPageSection(db, "a", sp("s1")); err != nil {
		t.Fatal(err)
	}
	changed, err := SetPageSection(db, "a", sp("s1"))
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Fatal("repeating the same section should be a no-op")
	}
}

func TestSetPageSectionClear(t *testing.T) {
	db := testDB()
	if _, err := SetPageSection(db, "a", sp("s1")); err != nil {
		t.Fatal(err)
	}
	changed, err := SetPageSection(db, "a", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("expected change")
	}
	if mustPage(db, "a").SectionID != nil {
		t.Fatal("section not cleared")
	}
}

func TestSetPageSectionUnknownSection(t *testing.T) {
	db := testDB()
	_, err := SetPageSection(db, "a", sp("nope"))
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestSetFolderSectionCascadesToDirectPages(t *testing.T) {
	db := testDB()
	changed, err := SetFolderSection(db, "f1", sp("s2"))
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("expected change")
	}
	f := mustFolder(db, "f1")
	if f.SectionID == nil || *f.SectionID != "s2" {
		t.Fatalf("folder section = %v, want s2", f.SectionID)
	}
	// Direct pages of f1 follow; nested e and foreign d do not.
	for _, id := range []string{"a", "b", "c"} {
		p := mustPage(db, id)
		if p.SectionID == nil || *p.SectionID != "s2" {
			t.Fatalf("%s.SectionID = %v, want cascade to s2", id, p.SectionID)
		}
	}
	if mustPage(db, "e").SectionID != nil {
		t.Fatal("nested page picked up the folder section")
	}
	if mustPage(db, "d").SectionID != nil {
		t.Fatal("page in another folder picked up the section")
	}
}

func TestSetPageSectionRefreshesWarmIndexes(t *testing.T) {
	db := testDB()
	unsorted := tree.NewIndex(db, "nb1", tree.Filter{Section: model.UnsortedOnly()})

	// Warm the adjacency indexes before mutating.
	if got := len(unsorted.TopLevelPages(sp("f1"))); got != 3 {
		t.Fatalf("warm view has %d pages, want 3", got)
	}

	if _, err := SetPageSection(db, "a", sp("s1")); err != nil {
		t.Fatal(err)
	}

	pages := unsorted.TopLevelPages(sp("f1"))
	if len(pages) != 2 {
		t.Fatalf("unsorted view has %d pages after the change, want 2", len(pages))
	}
	for _, p := range pages {
		if p.ID == "a" {
			t.Fatal("page still in the unsorted view via a stale index copy")
		}
	}

	only := tree.NewIndex(db, "nb1", tree.Filter{Section: model.SectionOnly("s1")})
	got := only.TopLevelPages(sp("f1"))
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("section view = %v, want just a", got)
	}
}

func TestSetFolderSectionSameSectionIsNoOp(t *testing.T) {
	db := testDB()
	if _, err := SetFolderSection(db, "f1", sp("s2")); err != nil {
		t.Fatal(err)
	}
	changed, err := SetFolderSection(db, "f1", sp("s2"))
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Fatal("repeating the same section should be a no-op")
	}
}
