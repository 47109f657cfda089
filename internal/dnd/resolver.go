package dnd

import (
	"nous-cli/internal/model"
	"nous-cli/internal/store"
)

// Resolve maps a completed drop onto exactly one mutation intent. The rules,
// top to bottom:
//
//   - anything onto a section zone reassigns the item's section, position
//     untouched; dropping onto the item's current section is a no-op
//   - page onto itself: no-op
//   - page onto a sibling (same folder and same parent page): reorder
//   - page onto a page in another container: nest under it, clearing the
//     folder (the gesture already vetoed descendants of the source)
//   - page onto a folder: detach from any parent page and land in that
//     folder; no-op when it is already a top-level page of that folder
//   - page onto the root zone: detach from its parent page, or from its
//     folder when it has no parent; no-op when already at notebook root
//   - folders are never reparented or reordered by drag
//
// A single drop gesture cannot distinguish "insert here" from "become a
// child of this item", so current containment is the tiebreak: dropping onto
// a sibling reorders, dropping onto a non-sibling nests.
func Resolve(db *store.DB, source DragSource, target DropTarget) Intent {
	switch target.Kind {
	case TargetSection:
		return resolveSection(source, target)
	case TargetPage:
		if source.Kind != SourcePage {
			return Intent{Kind: IntentNone}
		}
		return resolvePageOnPage(db, source.Page, target.Page)
	case TargetFolder:
		if source.Kind != SourcePage {
			return Intent{Kind: IntentNone}
		}
		return resolvePageOnFolder(source.Page, target.Folder)
	case TargetRoot:
		if source.Kind != SourcePage {
			return Intent{Kind: IntentNone}
		}
		return resolvePageOnRoot(source.Page)
	}
	return Intent{Kind: IntentNone}
}

func resolveSection(source DragSource, target DropTarget) Intent {
	switch source.Kind {
	case SourceFolder:
		if store.SameRef(source.Folder.SectionID, target.SectionID) {
			return Intent{Kind: IntentNone}
		}
		return Intent{
			Kind:      IntentSetFolderSection,
			FolderID:  source.Folder.ID,
			SectionID: target.SectionID,
		}
	case SourcePage:
		if store.SameRef(source.Page.SectionID, target.SectionID) {
			return Intent{Kind: IntentNone}
		}
		return Intent{
			Kind:      IntentSetPageSection,
			PageID:    source.Page.ID,
			SectionID: target.SectionID,
		}
	}
	return Intent{Kind: IntentNone}
}

func resolvePageOnPage(db *store.DB, source, target model.Page) Intent {
	if source.ID == target.ID {
		return Intent{Kind: IntentNone}
	}
	sameContainer := store.SameRef(source.FolderID, target.FolderID) &&
		store.SameRef(source.ParentPageID, target.ParentPageID)
	if sameContainer {
		ids := siblingPageIDs(db, source)
		ordered := Reorder(ids, source.ID, target.ID)
		return Intent{
			Kind:              IntentReorderPages,
			ContainerFolderID: source.FolderID,
			ContainerParentID: source.ParentPageID,
			OrderedIDs:        ordered,
		}
	}
	// Different container: nest. The cycle veto already ran during
	// classification; mutate re-checks before applying.
	return Intent{
		Kind:       IntentMovePageToParent,
		PageID:     source.ID,
		ToParentID: &target.ID,
	}
}

func resolvePageOnFolder(source model.Page, target model.Folder) Intent {
	alreadyThere := source.ParentPageID == nil && store.SameRef(source.FolderID, &target.ID)
	if alreadyThere {
		return Intent{Kind: IntentNone}
	}
	return Intent{
		Kind:       IntentMovePageToFolder,
		PageID:     source.ID,
		ToFolderID: &target.ID,
	}
}

func resolvePageOnRoot(source model.Page) Intent {
	if source.ParentPageID != nil {
		return Intent{
			Kind:   IntentMovePageToParent,
			PageID: source.ID,
		}
	}
	if source.FolderID == nil {
		return Intent{Kind: IntentNone}
	}
	return Intent{
		Kind:   IntentMovePageToFolder,
		PageID: source.ID,
	}
}

// siblingPageIDs returns the full sibling group of p (same notebook, folder
// and parent page, archived included) in current order. Reordering runs over
// the unfiltered group so positions stay dense for hidden siblings too.
func siblingPageIDs(db *store.DB, p model.Page) []string {
	var group []model.Page
	for _, q := range db.Pages {
		if q.NotebookID != p.NotebookID {
			continue
		}
		if !store.SameRef(q.FolderID, p.FolderID) || !store.SameRef(q.ParentPageID, p.ParentPageID) {
			continue
		}
		group = append(group, q)
	}
	store.SortPages(group)
	ids := make([]string, len(group))
	for i, q := range group {
		ids[i] = q.ID
	}
	return ids
}
