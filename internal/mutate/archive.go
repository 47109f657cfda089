package mutate

import (
	"time"

	"nous-cli/internal/model"
	"nous-cli/internal/store"
)

const archiveFolderName = "Archive"

// EnsureArchiveFolder returns the notebook's archive folder, creating it if
// missing. A notebook has at most one; it sorts last among root folders and
// is never a drag source.
func EnsureArchiveFolder(s store.Store, db *store.DB, notebookID string) (*model.Folder, error) {
	if _, ok := db.FindNotebook(notebookID); !ok {
		return nil, NotFoundError{Kind: "notebook", ID: notebookID}
	}
	if f, ok := db.ArchiveFolder(notebookID); ok {
		return f, nil
	}
	now := time.Now().UTC()
	db.Folders = append(db.Folders, model.Folder{
		ID:         s.NextID(db, "fld"),
		NotebookID: notebookID,
		Name:       archiveFolderName,
		FolderType: model.FolderTypeArchive,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	db.InvalidateIndexes()
	return &db.Folders[len(db.Folders)-1], nil
}

// ArchivePage marks a page archived and moves it into the notebook's archive
// folder, detaching it from any parent page. Child pages stay attached and
// follow the page into the archive view.
func ArchivePage(s store.Store, db *store.DB, pageID string) (bool, error) {
	p, ok := db.FindPage(pageID)
	if !ok {
		return false, NotFoundError{Kind: "page", ID: pageID}
	}
	if p.Archived {
		return false, nil
	}
	arch, err := EnsureArchiveFolder(s, db, p.NotebookID)
	if err != nil {
		return false, err
	}
	fid := arch.ID
	pos := store.NextPagePosition(db, p.NotebookID, &fid, nil)
	p.Archived = true
	p.ParentPageID = nil
	p.FolderID = &fid
	p.Position = pos
	p.UpdatedAt = time.Now().UTC()
	db.InvalidateIndexes()
	return true, nil
}

// RestorePage clears the archived flag and returns the page to notebook
// root, end of siblings.
func RestorePage(db *store.DB, pageID string) (bool, error) {
	p, ok := db.FindPage(pageID)
	if !ok {
		return false, NotFoundError{Kind: "page", ID: pageID}
	}
	if !p.Archived {
		return false, nil
	}
	pos := store.NextPagePosition(db, p.NotebookID, nil, nil)
	p.Archived = false
	p.ParentPageID = nil
	p.FolderID = nil
	p.Position = pos
	p.UpdatedAt = time.Now().UTC()
	db.InvalidateIndexes()
	return true, nil
}
