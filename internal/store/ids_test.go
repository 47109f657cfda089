package store

import (
	"strings"
	"testing"

	"nous-cli/internal/model"
)

func TestNextIDFormat(t *testing.T) {
	s := Store{}
	db := &DB{}
	id := s.NextID(db, "pg")
	if !strings.HasPrefix(id, "pg-") {
		t.Fatalf("id %q lacks the pg- prefix", id)
	}
	suffix := strings.TrimPrefix(id, "pg-")
	if len(suffix) != 8 {
		t.Fatalf("suffix %q has length %d, want 8", suffix, len(suffix))
	}
	for _, c := range suffix {
		if !strings.ContainsRune(idAlphabet, c) {
			t.Fatalf("suffix %q contains %q outside the id alphabet", suffix, c)
		}
	}
}

func TestNextIDAvoidsExistingIDs(t *testing.T) {
	s := Store{}
	db := &DB{
		Pages: []model.Page{{ID: "pg-aaaaaaaa"}},
	}
	seen := map[string]bool{"pg-aaaaaaaa": true}
	for i := 0; i < 100; i++ {
		id := s.NextID(db, "pg")
		if seen[id] {
			t.Fatalf("NextID returned duplicate %q", id)
		}
		seen[id] = true
		db.Pages = append(db.Pages, model.Page{ID: id})
	}
}
