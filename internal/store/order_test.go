package store

import (
	"testing"
	"time"

	"nous-cli/internal/model"
)

func sp(s string) *string { return &s }

func at(min int) time.Time {
	return time.Date(2026, 1, 1, 0, min, 0, 0, time.UTC)
}

func TestCompareFoldersArchiveAlwaysLast(t *testing.T) {
	arch := model.Folder{ID: "fa", FolderType: model.FolderTypeArchive, Position: 0, CreatedAt: at(0)}
	std := model.Folder{ID: "f1", FolderType: model.FolderTypeStandard, Position: 99, CreatedAt: at(1)}

	if CompareFolders(arch, std) <= 0 {
		t.Fatal("archive folder must sort after standard folders")
	}
	if CompareFolders(std, arch) >= 0 {
		t.Fatal("standard folder must sort before the archive folder")
	}
}

func TestSortFoldersByPositionThenCreatedAtThenID(t *testing.T) {
	fs := []model.Folder{
		{ID: "z", Position: 1, CreatedAt: at(0)},
		{ID: "b", Position: 0, CreatedAt: at(2)},
		{ID: "a", Position: 0, CreatedAt: at(2)},
		{ID: "c", Position: 0, CreatedAt: at(1)},
	}
	SortFolders(fs)
	want := []string{"c", "a", "b", "z"}
	for i, f := range fs {
		if f.ID != want[i] {
			t.Fatalf("order = %v, want %v at %d", f.ID, want[i], i)
		}
	}
}

func TestNextPagePosition(t *testing.T) {
	db := &DB{
		Pages: []model.Page{
			{ID: "a", NotebookID: "nb1", FolderID: sp("f1"), Position: 0},
			{ID: "b", NotebookID: "nb1", FolderID: sp("f1"), Position: 4},
			{ID: "c", NotebookID: "nb1", FolderID: sp("f2"), Position: 9},
			{ID: "d", NotebookID: "nb2", FolderID: sp("f1"), Position: 99},
		},
	}
	if got := NextPagePosition(db, "nb1", sp("f1"), nil); got != 5 {
		t.Fatalf("got %d, want max+1 = 5", got)
	}
	if got := NextPagePosition(db, "nb1", nil, nil); got != 0 {
		t.Fatalf("got %d, want 0 for an empty group", got)
	}
}

func TestNextFolderPositionIgnoresArchive(t *testing.T) {
	db := &DB{
		Folders: []model.Folder{
			{ID: "f1", NotebookID: "nb1", FolderType: model.FolderTypeStandard, Position: 2},
			{ID: "fa", NotebookID: "nb1", FolderType: model.FolderTypeArchive, Position: 50},
		},
	}
	if got := NextFolderPosition(db, "nb1", nil); got != 3 {
		t.Fatalf("got %d, want 3 (archive position ignored)", got)
	}
}

func TestSameRef(t *testing.T) {
	if !SameRef(nil, nil) {
		t.Fatal("nil == nil")
	}
	if SameRef(nil, sp("x")) || SameRef(sp("x"), nil) {
		t.Fatal("nil != non-nil")
	}
	if !SameRef(sp(" x "), sp("x")) {
		t.Fatal("whitespace should not matter")
	}
	if SameRef(sp("x"), sp("y")) {
		t.Fatal("different ids compared equal")
	}
}
