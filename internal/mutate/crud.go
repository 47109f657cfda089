package mutate

import (
	"strings"
	"time"

	"nous-cli/internal/model"
	"nous-cli/internal/store"
)

func CreateNotebook(s store.Store, db *store.DB, name string) (*model.Notebook, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("notebook name is required")
	}
	now := time.Now().UTC()
	db.Notebooks = append(db.Notebooks, model.Notebook{
		ID:        s.NextID(db, "nb"),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	nb := &db.Notebooks[len(db.Notebooks)-1]
	if db.CurrentNotebookID == "" {
		db.CurrentNotebookID = nb.ID
	}
	return nb, nil
}

func RenameNotebook(db *store.DB, id, name string) (bool, error) {
	nb, ok := db.FindNotebook(id)
	if !ok {
		return false, NotFoundError{Kind: "notebook", ID: id}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false, validationf("notebook name is required")
	}
	if nb.Name == name {
		return false, nil
	}
	nb.Name = name
	nb.UpdatedAt = time.Now().UTC()
	return true, nil
}

func UseNotebook(db *store.DB, id string) (bool, error) {
	if _, ok := db.FindNotebook(id); !ok {
		return false, NotFoundError{Kind: "notebook", ID: id}
	}
	if db.CurrentNotebookID == id {
		return false, nil
	}
	db.CurrentNotebookID = id
	return true, nil
}

// DeleteNotebook removes the notebook and everything in it.
func DeleteNotebook(db *store.DB, id string) (bool, error) {
	if _, ok := db.FindNotebook(id); !ok {
		return false, NotFoundError{Kind: "notebook", ID: id}
	}
	db.Notebooks = filterNotebooks(db.Notebooks, id)
	kept := db.Folders[:0]
	for _, f := range db.Folders {
		if f.NotebookID != id {
			kept = append(kept, f)
		}
	}
	db.Folders = kept
	keptPages := db.Pages[:0]
	for _, p := range db.Pages {
		if p.NotebookID != id {
			keptPages = append(keptPages, p)
		}
	}
	db.Pages = keptPages
	keptSecs := db.Sections[:0]
	for _, s := range db.Sections {
		if s.NotebookID != id {
			keptSecs = append(keptSecs, s)
		}
	}
	db.Sections = keptSecs
	if db.CurrentNotebookID == id {
		db.CurrentNotebookID = ""
		if len(db.Notebooks) > 0 {
			db.CurrentNotebookID = db.Notebooks[0].ID
		}
	}
	db.InvalidateIndexes()
	return true, nil
}

func filterNotebooks(ns []model.Notebook, dropID string) []model.Notebook {
	kept := ns[:0]
	for _, n := range ns {
		if n.ID != dropID {
			kept = append(kept, n)
		}
	}
	return kept
}

func CreateFolder(s store.Store, db *store.DB, notebookID, name string, parentID, sectionID *string) (*model.Folder, error) {
	if _, ok := db.FindNotebook(notebookID); !ok {
		return nil, NotFoundError{Kind: "notebook", ID: notebookID}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("folder name is required")
	}
	parentID = normalizeRef(parentID)
	if parentID != nil {
		parent, ok := db.FindFolder(*parentID)
		if !ok {
			return nil, NotFoundError{Kind: "folder", ID: *parentID}
		}
		if parent.NotebookID != notebookID {
			return nil, validationf("parent folder %s belongs to a different notebook", parent.ID)
		}
		if parent.IsArchiveFolder() {
			return nil, validationf("cannot create folders inside the archive folder")
		}
	}
	if err := checkSection(db, notebookID, sectionID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	db.Folders = append(db.Folders, model.Folder{
		ID:         s.NextID(db, "fld"),
		NotebookID: notebookID,
		Name:       name,
		ParentID:   parentID,
		SectionID:  normalizeRef(sectionID),
		FolderType: model.FolderTypeStandard,
		Position:   store.NextFolderPosition(db, notebookID, parentID),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	db.InvalidateIndexes()
	return &db.Folders[len(db.Folders)-1], nil
}

func RenameFolder(db *store.DB, id, name string) (bool, error) {
	f, ok := db.FindFolder(id)
	if !ok {
		return false, NotFoundError{Kind: "folder", ID: id}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false, validationf("folder name is required")
	}
	if f.Name == name {
		return false, nil
	}
	f.Name = name
	f.UpdatedAt = time.Now().UTC()
	db.InvalidateIndexes()
	return true, nil
}

// DeleteFolder removes a folder. Its direct pages and child folders are
// reparented to the folder's own parent (notebook root if none), so nothing
// inside is lost; their positions move to the end of the new sibling group.
func DeleteFolder(db *store.DB, id string) (bool, error) {
	f, ok := db.FindFolder(id)
	if !ok {
		return false, NotFoundError{Kind: "folder", ID: id}
	}
	if f.IsArchiveFolder() {
		return false, validationf("the archive folder cannot be deleted")
	}
	notebookID := f.NotebookID
	parentID := normalizeRef(f.ParentID)
	now := time.Now().UTC()

	for i := range db.Pages {
		p := &db.Pages[i]
		if p.ParentPageID != nil || !store.SameRef(p.FolderID, &f.ID) {
			continue
		}
		p.FolderID = parentID
		p.Position = store.NextPagePosition(db, notebookID, parentID, nil)
		p.UpdatedAt = now
	}
	for i := range db.Folders {
		c := &db.Folders[i]
		if !store.SameRef(c.ParentID, &f.ID) {
			continue
		}
		c.ParentID = parentID
		c.Position = store.NextFolderPosition(db, notebookID, parentID)
		c.UpdatedAt = now
	}

	kept := db.Folders[:0]
	for _, c := range db.Folders {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	db.Folders = kept
	db.InvalidateIndexes()
	return true, nil
}

func CreatePage(s store.Store, db *store.DB, notebookID, title string, folderID, parentPageID, sectionID *string) (*model.Page, error) {
	if _, ok := db.FindNotebook(notebookID); !ok {
		return nil, NotFoundError{Kind: "notebook", ID: notebookID}
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validationf("page title is required")
	}
	folderID = normalizeRef(folderID)
	parentPageID = normalizeRef(parentPageID)
	if folderID != nil && parentPageID != nil {
		return nil, validationf("a page lives in a folder or under a parent page, not both")
	}
	if folderID != nil {
		f, ok := db.FindFolder(*folderID)
		if !ok {
			return nil, NotFoundError{Kind: "folder", ID: *folderID}
		}
		if f.NotebookID != notebookID {
			return nil, validationf("folder %s belongs to a different notebook", f.ID)
		}
	}
	if parentPageID != nil {
		parent, ok := db.FindPage(*parentPageID)
		if !ok {
			return nil, NotFoundError{Kind: "page", ID: *parentPageID}
		}
		if parent.NotebookID != notebookID {
			return nil, validationf("page %s belongs to a different notebook", parent.ID)
		}
	}
	if err := checkSection(db, notebookID, sectionID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	db.Pages = append(db.Pages, model.Page{
		ID:           s.NextID(db, "pg"),
		NotebookID:   notebookID,
		Title:        title,
		FolderID:     folderID,
		ParentPageID: parentPageID,
		SectionID:    normalizeRef(sectionID),
		Position:     store.NextPagePosition(db, notebookID, folderID, parentPageID),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	db.InvalidateIndexes()
	return &db.Pages[len(db.Pages)-1], nil
}

func RenamePage(db *store.DB, id, title string) (bool, error) {
	p, ok := db.FindPage(id)
	if !ok {
		return false, NotFoundError{Kind: "page", ID: id}
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return false, validationf("page title is required")
	}
	if p.Title == title {
		return false, nil
	}
	p.Title = title
	p.UpdatedAt = time.Now().UTC()
	db.InvalidateIndexes()
	return true, nil
}

func SetPageBody(db *store.DB, id, body string) (bool, error) {
	p, ok := db.FindPage(id)
	if !ok {
		return false, NotFoundError{Kind: "page", ID: id}
	}
	if p.Body == body {
		return false, nil
	}
	p.Body = body
	p.UpdatedAt = time.Now().UTC()
	db.InvalidateIndexes()
	return true, nil
}

// DeletePage removes a page. Its direct children are reparented to the
// deleted page's own parent, or detached into the page's folder when it had
// none, mirroring folder deletion.
func DeletePage(db *store.DB, id string) (bool, error) {
	p, ok := db.FindPage(id)
	if !ok {
		return false, NotFoundError{Kind: "page", ID: id}
	}
	notebookID := p.NotebookID
	parentID := normalizeRef(p.ParentPageID)
	folderID := normalizeRef(p.FolderID)
	now := time.Now().UTC()

	for i := range db.Pages {
		c := &db.Pages[i]
		if !store.SameRef(c.ParentPageID, &p.ID) {
			continue
		}
		c.ParentPageID = parentID
		if parentID == nil {
			c.FolderID = folderID
			c.Position = store.NextPagePosition(db, notebookID, folderID, nil)
		} else {
			c.FolderID = nil
			c.Position = store.NextPagePosition(db, notebookID, nil, parentID)
		}
		c.UpdatedAt = now
	}

	kept := db.Pages[:0]
	for _, c := range db.Pages {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	db.Pages = kept
	db.InvalidateIndexes()
	return true, nil
}

func CreateSection(s store.Store, db *store.DB, notebookID, name, color string) (*model.Section, error) {
	if _, ok := db.FindNotebook(notebookID); !ok {
		return nil, NotFoundError{Kind: "notebook", ID: notebookID}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("section name is required")
	}
	now := time.Now().UTC()
	db.Sections = append(db.Sections, model.Section{
		ID:         s.NextID(db, "sec"),
		NotebookID: notebookID,
		Name:       name,
		Color:      strings.TrimSpace(color),
		Position:   store.NextSectionPosition(db, notebookID),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	return &db.Sections[len(db.Sections)-1], nil
}

func RenameSection(db *store.DB, id, name string) (bool, error) {
	s, ok := db.FindSection(id)
	if !ok {
		return false, NotFoundError{Kind: "section", ID: id}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false, validationf("section name is required")
	}
	if s.Name == name {
		return false, nil
	}
	s.Name = name
	s.UpdatedAt = time.Now().UTC()
	return true, nil
}

// DeleteSection removes a section and clears it from every folder and page
// that carried it; the items themselves stay where they are.
func DeleteSection(db *store.DB, id string) (bool, error) {
	if _, ok := db.FindSection(id); !ok {
		return false, NotFoundError{Kind: "section", ID: id}
	}
	now := time.Now().UTC()
	for i := range db.Folders {
		f := &db.Folders[i]
		if f.SectionID != nil && *f.SectionID == id {
			f.SectionID = nil
			f.UpdatedAt = now
		}
	}
	for i := range db.Pages {
		p := &db.Pages[i]
		if p.SectionID != nil && *p.SectionID == id {
			p.SectionID = nil
			p.UpdatedAt = now
		}
	}
	kept := db.Sections[:0]
	for _, s := range db.Sections {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	db.Sections = kept
	db.InvalidateIndexes()
	return true, nil
}
