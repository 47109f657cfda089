package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nous-cli/internal/model"
)

const storeDirName = ".nous"

type DB struct {
	Version           int    `json:"version"`
	CurrentNotebookID string `json:"currentNotebookId,omitempty"`

	Notebooks []model.Notebook `json:"notebooks"`
	Folders   []model.Folder   `json:"folders"`
	Pages     []model.Page     `json:"pages"`
	Sections  []model.Section  `json:"sections"`

	// Derived adjacency indexes for fast tree lookups. Not persisted; rebuilt
	// lazily after every load/refresh. Callers that mutate Folders/Pages must
	// call InvalidateIndexes.
	idxBuilt             bool                          `json:"-"`
	idxFoldersByParent   map[string][]model.Folder     `json:"-"`
	idxPagesByFolder     map[string][]model.Page       `json:"-"`
	idxChildPagesByPage  map[string][]model.Page       `json:"-"`
}

type Store struct {
	Dir string
}

// DiscoverDir walks upward from start looking for an existing .nous directory.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, storeDirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, storeDirName), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) Load() (*DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	return s.LoadSQLite(context.Background())
}

func (s Store) Save(db *DB) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	return s.SaveSQLite(context.Background(), db)
}

// NextID returns a fresh prefixed random id (nb-xxx, fld-xxx, pg-xxx, sec-xxx).
func (s Store) NextID(db *DB, prefix string) string {
	for i := 0; i < 50; i++ {
		id, err := newRandomID(prefix)
		if err != nil {
			break
		}
		if !idExists(db, id) {
			return id
		}
	}
	// Extremely unlikely fallback: widen the suffix.
	id, err := newRandomIDWithLen(prefix, 10)
	if err != nil {
		return fmt.Sprintf("%s-%d", prefix, len(db.Notebooks)+len(db.Folders)+len(db.Pages)+len(db.Sections)+1)
	}
	return id
}

func (db *DB) FindNotebook(id string) (*model.Notebook, bool) {
	for i := range db.Notebooks {
		if db.Notebooks[i].ID == id {
			return &db.Notebooks[i], true
		}
	}
	return nil, false
}

func (db *DB) FindFolder(id string) (*model.Folder, bool) {
	for i := range db.Folders {
		if db.Folders[i].ID == id {
			return &db.Folders[i], true
		}
	}
	return nil, false
}

func (db *DB) FindPage(id string) (*model.Page, bool) {
	for i := range db.Pages {
		if db.Pages[i].ID == id {
			return &db.Pages[i], true
		}
	}
	return nil, false
}

func (db *DB) FindSection(id string) (*model.Section, bool) {
	for i := range db.Sections {
		if db.Sections[i].ID == id {
			return &db.Sections[i], true
		}
	}
	return nil, false
}

// ArchiveFolder returns the notebook's archive folder, if one exists.
func (db *DB) ArchiveFolder(notebookID string) (*model.Folder, bool) {
	for i := range db.Folders {
		f := &db.Folders[i]
		if f.NotebookID == notebookID && f.IsArchiveFolder() {
			return f, true
		}
	}
	return nil, false
}

func (db *DB) ensureIndexes() {
	if db == nil || db.idxBuilt {
		return
	}
	db.idxFoldersByParent = map[string][]model.Folder{}
	db.idxPagesByFolder = map[string][]model.Page{}
	db.idxChildPagesByPage = map[string][]model.Page{}

	for _, f := range db.Folders {
		db.idxFoldersByParent[ptrKey(f.ParentID)] = append(db.idxFoldersByParent[ptrKey(f.ParentID)], f)
	}
	for _, p := range db.Pages {
		if p.ParentPageID != nil && strings.TrimSpace(*p.ParentPageID) != "" {
			pid := strings.TrimSpace(*p.ParentPageID)
			db.idxChildPagesByPage[pid] = append(db.idxChildPagesByPage[pid], p)
			continue
		}
		db.idxPagesByFolder[ptrKey(p.FolderID)] = append(db.idxPagesByFolder[ptrKey(p.FolderID)], p)
	}
	db.idxBuilt = true
}

// InvalidateIndexes drops the derived adjacency indexes; they are rebuilt on
// the next lookup.
func (db *DB) InvalidateIndexes() {
	if db == nil {
		return
	}
	db.idxBuilt = false
	db.idxFoldersByParent = nil
	db.idxPagesByFolder = nil
	db.idxChildPagesByPage = nil
}

// FoldersUnder returns the (unfiltered, unsorted) folders whose ParentID is
// parentID (nil for root-level folders).
func (db *DB) FoldersUnder(parentID *string) []model.Folder {
	if db == nil {
		return nil
	}
	db.ensureIndexes()
	return db.idxFoldersByParent[ptrKey(parentID)]
}

// PagesInFolder returns the (unfiltered, unsorted) top-level pages of a
// folder (nil for notebook root). Pages nested under a parent page are never
// included.
func (db *DB) PagesInFolder(folderID *string) []model.Page {
	if db == nil {
		return nil
	}
	db.ensureIndexes()
	return db.idxPagesByFolder[ptrKey(folderID)]
}

// ChildPagesOf returns the (unfiltered, unsorted) pages nested directly under
// parentPageID.
func (db *DB) ChildPagesOf(parentPageID string) []model.Page {
	if db == nil {
		return nil
	}
	db.ensureIndexes()
	return db.idxChildPagesByPage[strings.TrimSpace(parentPageID)]
}

func ptrKey(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// SameRef compares two nullable id references; nil and nil are equal,
// nil and non-nil never are.
func SameRef(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return strings.TrimSpace(*a) == strings.TrimSpace(*b)
}
