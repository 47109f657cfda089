package tui

import (
	"nous-cli/internal/model"
	"nous-cli/internal/tree"
)

type rowKind int

const (
	rowRoot rowKind = iota
	rowSection
	rowFolder
	rowPage
)

// sidebarRow is one visible line of the notebook sidebar. The root row and
// the section rows double as drop zones in move mode.
type sidebarRow struct {
	kind rowKind

	folder  model.Folder
	page    model.Page
	section *model.Section // nil on the unsorted section row

	depth       int
	hasChildren bool
	expanded    bool
}

func (r sidebarRow) id() string {
	switch r.kind {
	case rowFolder:
		return r.folder.ID
	case rowPage:
		return r.page.ID
	case rowSection:
		if r.section == nil {
			return "section:unsorted"
		}
		return "section:" + r.section.ID
	default:
		return "root"
	}
}

// flattenSidebar walks the visible tree depth-first into a row list: the
// root zone, the section zones, then root folders (archive last by the
// index's ordering) and root pages. Collapsed containers contribute a single
// row.
func flattenSidebar(ix *tree.Index, expanded map[string]bool) []sidebarRow {
	rows := []sidebarRow{{kind: rowRoot}}

	for _, s := range ix.Sections() {
		sec := s
		rows = append(rows, sidebarRow{kind: rowSection, section: &sec})
	}
	rows = append(rows, sidebarRow{kind: rowSection, section: nil})

	rows = appendFolderRows(rows, ix, nil, 0, expanded)
	rows = appendPageRows(rows, ix, ix.RootPages(), 0, expanded)
	return rows
}

func appendFolderRows(rows []sidebarRow, ix *tree.Index, parentID *string, depth int, expanded map[string]bool) []sidebarRow {
	for _, f := range ix.ChildFolders(parentID) {
		fid := f.ID
		children := len(ix.ChildFolders(&fid))+len(ix.TopLevelPages(&fid)) > 0
		open := folderExpanded(expanded, fid)
		rows = append(rows, sidebarRow{
			kind:        rowFolder,
			folder:      f,
			depth:       depth,
			hasChildren: children,
			expanded:    open,
		})
		if !open {
			continue
		}
		rows = appendFolderRows(rows, ix, &fid, depth+1, expanded)
		rows = appendPageRows(rows, ix, ix.TopLevelPages(&fid), depth+1, expanded)
	}
	return rows
}

func appendPageRows(rows []sidebarRow, ix *tree.Index, pages []model.Page, depth int, expanded map[string]bool) []sidebarRow {
	for _, p := range pages {
		children := ix.ChildPages(p.ID)
		open := expanded[p.ID]
		rows = append(rows, sidebarRow{
			kind:        rowPage,
			page:        p,
			depth:       depth,
			hasChildren: len(children) > 0,
			expanded:    open,
		})
		if open {
			rows = appendPageRows(rows, ix, children, depth+1, expanded)
		}
	}
	return rows
}

// Folders default to open; pages default to collapsed. The map records
// explicit toggles either way.
func folderExpanded(expanded map[string]bool, id string) bool {
	if v, ok := expanded[id]; ok {
		return v
	}
	return true
}
