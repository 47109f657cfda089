package tree

import (
	"testing"

	"nous-cli/internal/model"
	"nous-cli/internal/store"
)

func chainDB() *store.DB {
	// a -> b -> c (c nested under b, b nested under a).
	return &store.DB{
		Pages: []model.Page{
			{ID: "a", NotebookID: "nb1"},
			{ID: "b", NotebookID: "nb1", ParentPageID: sp("a")},
			{ID: "c", NotebookID: "nb1", ParentPageID: sp("b")},
			{ID: "x", NotebookID: "nb1"},
		},
	}
}

func TestIsDescendantPage(t *testing.T) {
	db := chainDB()

	if !IsDescendantPage(db, "a", "c") {
		t.Fatal("c should be a descendant of a")
	}
	if !IsDescendantPage(db, "a", "b") {
		t.Fatal("b should be a descendant of a")
	}
	if IsDescendantPage(db, "c", "a") {
		t.Fatal("a is not a descendant of c")
	}
	if IsDescendantPage(db, "x", "c") {
		t.Fatal("c is not a descendant of x")
	}
}

func TestIsDescendantPageSelfIsFalse(t *testing.T) {
	db := chainDB()
	for _, id := range []string{"a", "b", "c", "x"} {
		if IsDescendantPage(db, id, id) {
			t.Fatalf("%s must not be its own descendant", id)
		}
	}
}

func TestIsDescendantPageSurvivesCorruptCycle(t *testing.T) {
	db := &store.DB{
		Pages: []model.Page{
			{ID: "a", NotebookID: "nb1", ParentPageID: sp("b")},
			{ID: "b", NotebookID: "nb1", ParentPageID: sp("a")},
		},
	}
	// The visited set must terminate the walk and report false.
	if IsDescendantPage(db, "zzz", "a") {
		t.Fatal("corrupt cycle should resolve to false")
	}
}

func TestIsDescendantPageMissingParentFallsBack(t *testing.T) {
	db := &store.DB{
		Pages: []model.Page{
			{ID: "a", NotebookID: "nb1", ParentPageID: sp("gone")},
		},
	}
	if IsDescendantPage(db, "gone2", "a") {
		t.Fatal("missing parent should terminate the walk")
	}
}

func TestIsDescendantFolder(t *testing.T) {
	db := &store.DB{
		Folders: []model.Folder{
			{ID: "top", NotebookID: "nb1"},
			{ID: "mid", NotebookID: "nb1", ParentID: sp("top")},
			{ID: "leaf", NotebookID: "nb1", ParentID: sp("mid")},
		},
	}
	if !IsDescendantFolder(db, "top", "leaf") {
		t.Fatal("leaf should be a descendant of top")
	}
	if IsDescendantFolder(db, "leaf", "top") {
		t.Fatal("top is not a descendant of leaf")
	}
}
