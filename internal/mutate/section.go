package mutate

import (
	"strings"
	"time"

	"nous-cli/internal/store"
)

// SetFolderSection reassigns a folder's section and cascades the change to
// the pages living directly in that folder, so filtering by the section
// keeps showing the folder's contents. Position is untouched. One call, even
// though several records change.
func SetFolderSection(db *store.DB, folderID string, sectionID *string) (bool, error) {
	f, ok := db.FindFolder(folderID)
	if !ok {
		return false, NotFoundError{Kind: "folder", ID: folderID}
	}
	if err := checkSection(db, f.NotebookID, sectionID); err != nil {
		return false, err
	}
	if store.SameRef(f.SectionID, sectionID) {
		return false, nil
	}
	now := time.Now().UTC()
	f.SectionID = normalizeRef(sectionID)
	f.UpdatedAt = now
	for i := range db.Pages {
		p := &db.Pages[i]
		if p.ParentPageID != nil || !store.SameRef(p.FolderID, &f.ID) {
			continue
		}
		p.SectionID = normalizeRef(sectionID)
		p.UpdatedAt = now
	}
	db.InvalidateIndexes()
	return true, nil
}

// SetPageSection reassigns a page's section. Position is untouched.
func SetPageSection(db *store.DB, pageID string, sectionID *string) (bool, error) {
	p, ok := db.FindPage(pageID)
	if !ok {
		return false, NotFoundError{Kind: "page", ID: pageID}
	}
	if err := checkSection(db, p.NotebookID, sectionID); err != nil {
		return false, err
	}
	if store.SameRef(p.SectionID, sectionID) {
		return false, nil
	}
	p.SectionID = normalizeRef(sectionID)
	p.UpdatedAt = time.Now().UTC()
	// The adjacency indexes hold page copies, so the section change must
	// invalidate them or a warmed index keeps filtering on the old value.
	db.InvalidateIndexes()
	return true, nil
}

func checkSection(db *store.DB, notebookID string, sectionID *string) error {
	if sectionID == nil || strings.TrimSpace(*sectionID) == "" {
		return nil
	}
	s, ok := db.FindSection(strings.TrimSpace(*sectionID))
	if !ok {
		return NotFoundError{Kind: "section", ID: *sectionID}
	}
	if s.NotebookID != notebookID {
		return validationf("section %s belongs to a different notebook", s.ID)
	}
	return nil
}

func normalizeRef(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
