package mutate

import (
	"nous-cli/internal/dnd"
	"nous-cli/internal/store"
)

// Apply executes the single mutation a resolved drop asks for. One intent,
// one call; a no-op intent reports unchanged.
func Apply(db *store.DB, in dnd.Intent) (bool, error) {
	switch in.Kind {
	case dnd.IntentNone, "":
		return false, nil
	case dnd.IntentSetFolderSection:
		return SetFolderSection(db, in.FolderID, in.SectionID)
	case dnd.IntentSetPageSection:
		return SetPageSection(db, in.PageID, in.SectionID)
	case dnd.IntentMovePageToFolder:
		return MovePageToFolder(db, in.PageID, in.ToFolderID)
	case dnd.IntentMovePageToParent:
		return MovePageToParent(db, in.PageID, in.ToParentID)
	case dnd.IntentReorderPages:
		nb, err := reorderNotebook(db, in)
		if err != nil {
			return false, err
		}
		return ReorderPages(db, nb, in.ContainerFolderID, in.ContainerParentID, in.OrderedIDs)
	case dnd.IntentReorderFolders:
		nb, err := reorderFolderNotebook(db, in)
		if err != nil {
			return false, err
		}
		return ReorderFolders(db, nb, in.ContainerParentID, in.OrderedIDs)
	}
	return false, validationf("unknown intent %q", in.Kind)
}

func reorderNotebook(db *store.DB, in dnd.Intent) (string, error) {
	if len(in.OrderedIDs) == 0 {
		return "", validationf("reorder list is empty")
	}
	p, ok := db.FindPage(in.OrderedIDs[0])
	if !ok {
		return "", NotFoundError{Kind: "page", ID: in.OrderedIDs[0]}
	}
	return p.NotebookID, nil
}

func reorderFolderNotebook(db *store.DB, in dnd.Intent) (string, error) {
	if len(in.OrderedIDs) == 0 {
		return "", validationf("reorder list is empty")
	}
	f, ok := db.FindFolder(in.OrderedIDs[0])
	if !ok {
		return "", NotFoundError{Kind: "folder", ID: in.OrderedIDs[0]}
	}
	return f.NotebookID, nil
}
