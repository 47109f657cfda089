// Package dnd resolves drag gestures over the notebook tree into mutation
// intents. It never mutates shared state: every completed drop yields one
// Intent value which the caller hands to mutate.Apply.
package dnd

import "nous-cli/internal/model"

type SourceKind string

const (
	SourceFolder SourceKind = "folder"
	SourcePage   SourceKind = "page"
)

// DragSource is decided once at drag start and carried through the gesture.
type DragSource struct {
	Kind   SourceKind
	Folder model.Folder
	Page   model.Page
}

func FolderSource(f model.Folder) DragSource {
	return DragSource{Kind: SourceFolder, Folder: f}
}

func PageSource(p model.Page) DragSource {
	return DragSource{Kind: SourcePage, Page: p}
}

func (s DragSource) ID() string {
	if s.Kind == SourceFolder {
		return s.Folder.ID
	}
	return s.Page.ID
}

type TargetKind string

const (
	TargetNone    TargetKind = "none"
	TargetSection TargetKind = "section"
	TargetPage    TargetKind = "page"
	TargetFolder  TargetKind = "folder"
	TargetRoot    TargetKind = "root"
)

// DropTarget is the classified target of the pointer position. For sections
// a nil SectionID means the explicit "unsorted" zone.
type DropTarget struct {
	Kind      TargetKind
	SectionID *string
	Page      model.Page
	Folder    model.Folder
}

func NoTarget() DropTarget { return DropTarget{Kind: TargetNone} }

type IntentKind string

const (
	IntentNone             IntentKind = "none"
	IntentSetFolderSection IntentKind = "set-folder-section"
	IntentSetPageSection   IntentKind = "set-page-section"
	IntentMovePageToFolder IntentKind = "move-page-to-folder"
	IntentMovePageToParent IntentKind = "move-page-to-parent"
	IntentReorderPages     IntentKind = "reorder-pages"
	IntentReorderFolders   IntentKind = "reorder-folders"
)

// Intent is the single mutation a completed drop resolves to. Exactly one
// persistence call is issued per intent, even when several fields change
// (nesting a page also clears its folder in the same call).
type Intent struct {
	Kind IntentKind

	// Item being mutated.
	FolderID string
	PageID   string

	// New section for the section intents; nil clears the section.
	SectionID *string

	// Destination for the move intents; nil means notebook root / no parent.
	ToFolderID *string
	ToParentID *string

	// Container and new ID order for the reorder intents. ReorderPages uses
	// both (folder, parent page); ReorderFolders uses ContainerParentID as
	// the parent folder.
	ContainerFolderID *string
	ContainerParentID *string
	OrderedIDs        []string
}

func (in Intent) IsNoOp() bool { return in.Kind == IntentNone || in.Kind == "" }
