package dnd

// Locks tracks items with an outstanding persistence call. While an item is
// locked it can be neither a drag source nor a drop target; concurrent moves
// on the same item would race and corrupt sibling positions.
type Locks struct {
	held map[string]bool
}

func NewLocks() *Locks {
	return &Locks{held: map[string]bool{}}
}

func (l *Locks) Lock(id string) {
	if l == nil || id == "" {
		return
	}
	l.held[id] = true
}

func (l *Locks) Unlock(id string) {
	if l == nil {
		return
	}
	delete(l.held, id)
}

func (l *Locks) Locked(id string) bool {
	return l != nil && l.held[id]
}
