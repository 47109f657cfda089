package model

import "time"

type FolderType string

const (
	FolderTypeStandard FolderType = "standard"
	FolderTypeArchive  FolderType = "archive"
)

type Notebook struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Folder struct {
	ID         string     `json:"id"`
	NotebookID string     `json:"notebookId"`
	Name       string     `json:"name"`
	ParentID   *string    `json:"parentId,omitempty"`
	SectionID  *string    `json:"sectionId,omitempty"`
	FolderType FolderType `json:"folderType"`
	Position   int        `json:"position"`
	Color      string     `json:"color,omitempty"`
	Archived   bool       `json:"archived"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (f Folder) IsArchiveFolder() bool {
	return f.FolderType == FolderTypeArchive
}

// Page containment is determined by ParentPageID and FolderID jointly:
// a page nested under another page is a child page regardless of folder
// (FolderID is cleared on nesting); a page with no parent page and a
// FolderID lives directly in that folder; a page with neither lives at
// notebook root.
type Page struct {
	ID           string    `json:"id"`
	NotebookID   string    `json:"notebookId"`
	Title        string    `json:"title"`
	Body         string    `json:"body,omitempty"`
	FolderID     *string   `json:"folderId,omitempty"`
	ParentPageID *string   `json:"parentPageId,omitempty"`
	SectionID    *string   `json:"sectionId,omitempty"`
	Position     int       `json:"position"`
	Tags         []string  `json:"tags,omitempty"`
	Archived     bool      `json:"archived"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Section is an orthogonal, optional grouping applied to folders and pages.
// It is used only for filtering, never for containment or ordering.
type Section struct {
	ID         string    `json:"id"`
	NotebookID string    `json:"notebookId"`
	Name       string    `json:"name"`
	Color      string    `json:"color,omitempty"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SectionFilter is the three-state section visibility filter:
// no filter at all, only unsorted items (no section), or a single section.
// The zero value means "no filter".
type SectionFilter struct {
	enabled  bool
	unsorted bool
	id       string
}

func NoSectionFilter() SectionFilter { return SectionFilter{} }

func UnsortedOnly() SectionFilter { return SectionFilter{enabled: true, unsorted: true} }

func SectionOnly(id string) SectionFilter {
	return SectionFilter{enabled: true, id: id}
}

func (f SectionFilter) Enabled() bool { return f.enabled }

// Matches reports whether an item carrying sectionID passes the filter.
func (f SectionFilter) Matches(sectionID *string) bool {
	if !f.enabled {
		return true
	}
	if f.unsorted {
		return sectionID == nil || *sectionID == ""
	}
	return sectionID != nil && *sectionID == f.id
}

func (f SectionFilter) String() string {
	switch {
	case !f.enabled:
		return "all"
	case f.unsorted:
		return "unsorted"
	default:
		return f.id
	}
}
