package dnd

import (
	"nous-cli/internal/store"
	"nous-cli/internal/tree"
)

type State string

const (
	StateIdle         State = "idle"
	StateDragging     State = "dragging"
	StateDraggingOver State = "dragging-over"
)

// Hover is the raw zone under the pointer, reported by the UI on every
// pointer movement. Overlapping zones are reported outermost-last; the
// classifier applies its own precedence.
type Hover struct {
	Kind      TargetKind
	SectionID *string
	PageID    string
	FolderID  string
}

// Gesture is the state machine for a single drag. It runs idle → dragging →
// dragging-over and back to idle on drop or cancel, and hands off to the
// resolver exactly once per completed drop.
type Gesture struct {
	db    *store.DB
	locks *Locks

	state  State
	source DragSource
	target DropTarget

	// Expand is called when hovering over a folder or nestable page so the
	// container opens and the item stays visible after the drop. Expansion
	// is visibility-only and is never reversed by the engine.
	Expand func(containerID string)
}

func NewGesture(db *store.DB, locks *Locks) *Gesture {
	return &Gesture{db: db, locks: locks, state: StateIdle}
}

func (g *Gesture) State() State       { return g.state }
func (g *Gesture) Source() DragSource { return g.source }
func (g *Gesture) Target() DropTarget { return g.target }

// Start begins a drag. The archive folder is never a drag source, and an
// item with an outstanding save is refused until the save settles.
func (g *Gesture) Start(src DragSource) bool {
	if g.state != StateIdle {
		return false
	}
	if src.Kind == SourceFolder && src.Folder.IsArchiveFolder() {
		return false
	}
	if g.locks.Locked(src.ID()) {
		return false
	}
	g.state = StateDragging
	g.source = src
	g.target = NoTarget()
	return true
}

// Over re-classifies the drop target on pointer movement. Candidates are
// evaluated in precedence order section > page > folder > root; a page that
// is the source itself or a descendant of the source is skipped so an outer
// zone can still match. Hovering a folder or a nestable page auto-expands it.
func (g *Gesture) Over(candidates ...Hover) DropTarget {
	if g.state != StateDragging && g.state != StateDraggingOver {
		return NoTarget()
	}
	g.target = g.classify(candidates)
	if g.target.Kind == TargetNone {
		g.state = StateDragging
	} else {
		g.state = StateDraggingOver
	}
	switch g.target.Kind {
	case TargetFolder:
		g.expand(g.target.Folder.ID)
	case TargetPage:
		g.expand(g.target.Page.ID)
	}
	return g.target
}

// Drop completes the gesture and resolves it to an intent. A drop with no
// valid target resolves to a no-op. The gesture returns to idle either way.
func (g *Gesture) Drop() Intent {
	if g.state != StateDragging && g.state != StateDraggingOver {
		return Intent{Kind: IntentNone}
	}
	source, target := g.source, g.target
	g.reset()
	return Resolve(g.db, source, target)
}

// Cancel aborts the gesture with no persisted effect.
func (g *Gesture) Cancel() {
	g.reset()
}

func (g *Gesture) reset() {
	g.state = StateIdle
	g.source = DragSource{}
	g.target = NoTarget()
}

func (g *Gesture) classify(candidates []Hover) DropTarget {
	for _, kind := range []TargetKind{TargetSection, TargetPage, TargetFolder, TargetRoot} {
		for _, c := range candidates {
			if c.Kind != kind {
				continue
			}
			if t, ok := g.classifyOne(c); ok {
				return t
			}
		}
	}
	return NoTarget()
}

func (g *Gesture) classifyOne(c Hover) (DropTarget, bool) {
	switch c.Kind {
	case TargetSection:
		return DropTarget{Kind: TargetSection, SectionID: c.SectionID}, true
	case TargetPage:
		if g.source.Kind != SourcePage {
			return NoTarget(), false
		}
		if c.PageID == g.source.Page.ID {
			return NoTarget(), false
		}
		if g.locks.Locked(c.PageID) {
			return NoTarget(), false
		}
		p, ok := g.db.FindPage(c.PageID)
		if !ok {
			return NoTarget(), false
		}
		if tree.IsDescendantPage(g.db, g.source.Page.ID, p.ID) {
			return NoTarget(), false
		}
		return DropTarget{Kind: TargetPage, Page: *p}, true
	case TargetFolder:
		f, ok := g.db.FindFolder(c.FolderID)
		if !ok || g.locks.Locked(f.ID) {
			return NoTarget(), false
		}
		return DropTarget{Kind: TargetFolder, Folder: *f}, true
	case TargetRoot:
		return DropTarget{Kind: TargetRoot}, true
	}
	return NoTarget(), false
}

func (g *Gesture) expand(id string) {
	if g.Expand != nil {
		g.Expand(id)
	}
}
