package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nous-cli/internal/dnd"
	"nous-cli/internal/gitrepo"
	"nous-cli/internal/model"
	"nous-cli/internal/mutate"
	"nous-cli/internal/store"
	"nous-cli/internal/tree"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type reloadTickMsg struct{}

type saveDoneMsg struct {
	lockedID string
	err      error
}

type appModel struct {
	store store.Store
	db    *store.DB

	width  int
	height int

	notebookID string

	sidebar list.Model
	rows    []sidebarRow

	showArchived bool
	section      model.SectionFilter
	sectionIdx   int // position in the filter cycle: all, unsorted, each section

	expanded map[string]bool
	locks    *dnd.Locks
	gesture  *dnd.Gesture

	saving bool
	status string

	lastStateModTime time.Time
}

func newAppModel(s store.Store, db *store.DB) *appModel {
	m := &appModel{
		store:    s,
		db:       db,
		expanded: map[string]bool{},
		locks:    dnd.NewLocks(),
	}
	m.notebookID = db.CurrentNotebookID
	if m.notebookID == "" && len(db.Notebooks) > 0 {
		m.notebookID = db.Notebooks[0].ID
	}
	m.gesture = dnd.NewGesture(db, m.locks)
	m.gesture.Expand = func(id string) { m.expanded[id] = true }

	m.sidebar = newSidebarList(nil)
	m.refreshRows()
	m.captureStateModTime()
	return m
}

func (m *appModel) Init() tea.Cmd { return tickReload() }

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case reloadTickMsg:
		if !m.saving && m.gesture.State() == dnd.StateIdle && m.stateChanged() {
			m.reloadFromDisk()
		}
		return m, tickReload()

	case saveDoneMsg:
		m.saving = false
		m.locks.Unlock(msg.lockedID)
		if msg.err != nil {
			// The on-disk state still holds the pre-mutation tree; reload it
			// so the view never shows a move that was not persisted.
			m.status = errStyle().Render(fmt.Sprintf("save failed: %v", msg.err))
			m.reloadFromDisk()
		} else {
			m.status = styleMuted().Render("saved")
		}
		m.refreshRows()
		return m, nil

	case tea.KeyMsg:
		if m.sidebar.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			if m.gesture.State() == dnd.StateIdle {
				return m, tea.Quit
			}
		case "esc":
			if m.gesture.State() != dnd.StateIdle {
				m.gesture.Cancel()
				m.status = styleMuted().Render("move canceled")
				m.refreshRows()
				return m, nil
			}
		case "r":
			m.reloadFromDisk()
			return m, nil
		case "a":
			m.showArchived = !m.showArchived
			m.refreshRows()
			return m, nil
		case "s":
			m.cycleSectionFilter()
			m.refreshRows()
			return m, nil
		case "m":
			if m.gesture.State() == dnd.StateIdle {
				m.grabSelected()
				m.refreshRows()
				return m, nil
			}
		case "enter", " ", "space":
			if m.gesture.State() != dnd.StateIdle {
				return m, m.dropGrabbed()
			}
			m.toggleSelected()
			m.refreshRows()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	if m.gesture.State() != dnd.StateIdle {
		m.hoverSelected()
		m.refreshRows()
	}
	return m, cmd
}

func (m *appModel) View() string {
	nbName := "(no notebook)"
	if nb, ok := m.db.FindNotebook(m.notebookID); ok {
		nbName = nb.Name
	}
	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("nous  %s  archived:%v  section:%s", nbName, m.showArchived, m.section))

	if len(m.db.Notebooks) == 0 {
		hint := styleMuted().Render("No notebooks yet. Run `nous notebooks create <name>` first.")
		return strings.Join([]string{header, hint}, "\n\n")
	}

	body := m.viewSplit()

	help := "enter/space: open/drop  m: move  esc: cancel  a: archived  s: section  r: reload  q: quit"
	footer := styleMuted().Render(help)
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m *appModel) viewSplit() string {
	bodyHeight := m.height - 6
	if bodyHeight < 8 {
		bodyHeight = 8
	}
	leftWidth := m.width / 2
	if leftWidth < 40 {
		leftWidth = 40
	}
	rightWidth := m.width - leftWidth - 2
	if rightWidth < 30 {
		rightWidth = 30
	}
	m.sidebar.SetSize(leftWidth, bodyHeight)

	left := m.sidebar.View()
	right := lipgloss.NewStyle().Width(rightWidth).Height(bodyHeight).Render(m.previewSelected(rightWidth))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *appModel) previewSelected(width int) string {
	it, ok := m.sidebar.SelectedItem().(treeRowItem)
	if !ok {
		return styleMuted().Render("Nothing selected.")
	}
	switch it.row.kind {
	case rowPage:
		p := it.row.page
		title := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(p.Title)
		body := renderMarkdown(p.Body, width)
		if body == "" {
			body = styleMuted().Render("(empty page)")
		}
		return title + "\n\n" + body
	case rowFolder:
		f := it.row.folder
		ix := m.index()
		fid := f.ID
		return fmt.Sprintf("%s\n\n%s",
			lipgloss.NewStyle().Bold(true).Render(f.Name),
			styleMuted().Render(fmt.Sprintf("%d folders, %d pages",
				len(ix.ChildFolders(&fid)), len(ix.TopLevelPages(&fid)))))
	case rowSection:
		if it.row.section != nil {
			return styleMuted().Render("Section " + it.row.section.Name + ". Drop items here to assign them.")
		}
		return styleMuted().Render("Unsorted. Drop items here to clear their section.")
	default:
		return styleMuted().Render("Notebook root. Drop a page here to detach it.")
	}
}

func (m *appModel) index() *tree.Index {
	return tree.NewIndex(m.db, m.notebookID, tree.Filter{
		ShowArchived: m.showArchived,
		Section:      m.section,
	})
}

func (m *appModel) refreshRows() {
	curID := ""
	if it, ok := m.sidebar.SelectedItem().(treeRowItem); ok {
		curID = it.row.id()
	}

	m.rows = flattenSidebar(m.index(), m.expanded)

	grabbedID := ""
	if m.gesture.State() != dnd.StateIdle {
		grabbedID = m.gesture.Source().ID()
	}
	target := m.gesture.Target()

	items := make([]list.Item, 0, len(m.rows))
	for _, r := range m.rows {
		items = append(items, treeRowItem{
			row:     r,
			grabbed: grabbedID != "" && r.id() == grabbedID,
			target:  rowIsTarget(r, target),
		})
	}
	m.sidebar.SetItems(items)
	if curID != "" {
		for i, it := range items {
			if it.(treeRowItem).row.id() == curID {
				m.sidebar.Select(i)
				break
			}
		}
	}
}

func rowIsTarget(r sidebarRow, t dnd.DropTarget) bool {
	switch t.Kind {
	case dnd.TargetRoot:
		return r.kind == rowRoot
	case dnd.TargetSection:
		if r.kind != rowSection {
			return false
		}
		if t.SectionID == nil {
			return r.section == nil
		}
		return r.section != nil && r.section.ID == *t.SectionID
	case dnd.TargetFolder:
		return r.kind == rowFolder && r.folder.ID == t.Folder.ID
	case dnd.TargetPage:
		return r.kind == rowPage && r.page.ID == t.Page.ID
	}
	return false
}

func (m *appModel) toggleSelected() {
	it, ok := m.sidebar.SelectedItem().(treeRowItem)
	if !ok || !it.row.hasChildren {
		return
	}
	switch it.row.kind {
	case rowFolder:
		m.expanded[it.row.folder.ID] = !folderExpanded(m.expanded, it.row.folder.ID)
	case rowPage:
		m.expanded[it.row.page.ID] = !m.expanded[it.row.page.ID]
	}
}

func (m *appModel) grabSelected() {
	// A grab while a save is outstanding would let the next drop mutate the
	// DB the background save is still reading. Every mutation path goes
	// through a grab, so refusing here keeps the DB quiescent until the save
	// settles.
	if m.saving {
		m.status = errStyle().Render("still saving the last move; try again")
		return
	}
	it, ok := m.sidebar.SelectedItem().(treeRowItem)
	if !ok {
		return
	}
	switch it.row.kind {
	case rowFolder:
		if !m.gesture.Start(dnd.FolderSource(it.row.folder)) {
			m.status = errStyle().Render("this folder cannot be moved")
			return
		}
	case rowPage:
		if !m.gesture.Start(dnd.PageSource(it.row.page)) {
			m.status = errStyle().Render("page is busy; try again")
			return
		}
	default:
		return
	}
	m.status = styleMuted().Render("moving: navigate to a target, enter to drop, esc to cancel")
}

// hoverSelected reports the row under the cursor to the gesture. A page row
// also offers its containing folder (or the root zone) as the outer zone, so
// a vetoed page target still resolves to something useful.
func (m *appModel) hoverSelected() {
	it, ok := m.sidebar.SelectedItem().(treeRowItem)
	if !ok {
		m.gesture.Over()
		return
	}
	switch it.row.kind {
	case rowRoot:
		m.gesture.Over(dnd.Hover{Kind: dnd.TargetRoot})
	case rowSection:
		var sid *string
		if it.row.section != nil {
			id := it.row.section.ID
			sid = &id
		}
		m.gesture.Over(dnd.Hover{Kind: dnd.TargetSection, SectionID: sid})
	case rowFolder:
		m.gesture.Over(dnd.Hover{Kind: dnd.TargetFolder, FolderID: it.row.folder.ID})
	case rowPage:
		candidates := []dnd.Hover{{Kind: dnd.TargetPage, PageID: it.row.page.ID}}
		if it.row.page.FolderID != nil {
			candidates = append(candidates, dnd.Hover{Kind: dnd.TargetFolder, FolderID: *it.row.page.FolderID})
		} else if it.row.page.ParentPageID == nil {
			candidates = append(candidates, dnd.Hover{Kind: dnd.TargetRoot})
		}
		m.gesture.Over(candidates...)
	}
}

func (m *appModel) dropGrabbed() tea.Cmd {
	sourceID := m.gesture.Source().ID()
	intent := m.gesture.Drop()
	if intent.IsNoOp() {
		m.status = styleMuted().Render("no move")
		m.refreshRows()
		return nil
	}

	changed, err := mutate.Apply(m.db, intent)
	if err != nil {
		m.status = errStyle().Render(err.Error())
		m.refreshRows()
		return nil
	}
	if !changed {
		m.status = styleMuted().Render("no change")
		m.refreshRows()
		return nil
	}

	// The moved item stays locked until the save settles; a new gesture on
	// it is refused meanwhile.
	m.locks.Lock(sourceID)
	m.saving = true
	m.status = styleMuted().Render("saving...")
	m.refreshRows()

	s, db := m.store, m.db
	return func() tea.Msg {
		err := s.Save(db)
		if err == nil && gitrepo.AutoCommitEnabled() {
			_, _ = gitrepo.CommitState(context.Background(), s.Dir, "nous: move")
		}
		return saveDoneMsg{lockedID: sourceID, err: err}
	}
}

func (m *appModel) cycleSectionFilter() {
	ix := tree.NewIndex(m.db, m.notebookID, tree.Filter{ShowArchived: true})
	sections := ix.Sections()

	m.sectionIdx++
	// Cycle: 0 = all, 1 = unsorted, 2.. = each section in order.
	if m.sectionIdx > len(sections)+1 {
		m.sectionIdx = 0
	}
	switch {
	case m.sectionIdx == 0:
		m.section = model.NoSectionFilter()
	case m.sectionIdx == 1:
		m.section = model.UnsortedOnly()
	default:
		m.section = model.SectionOnly(sections[m.sectionIdx-2].ID)
	}
}

func (m *appModel) reloadFromDisk() {
	db, err := m.store.Load()
	if err != nil {
		m.status = errStyle().Render(fmt.Sprintf("reload failed: %v", err))
		return
	}
	m.db = db
	m.gesture = dnd.NewGesture(db, m.locks)
	m.gesture.Expand = func(id string) { m.expanded[id] = true }
	if m.notebookID == "" || !notebookExists(db, m.notebookID) {
		m.notebookID = db.CurrentNotebookID
		if m.notebookID == "" && len(db.Notebooks) > 0 {
			m.notebookID = db.Notebooks[0].ID
		}
	}
	m.captureStateModTime()
	m.refreshRows()
}

func notebookExists(db *store.DB, id string) bool {
	_, ok := db.FindNotebook(id)
	return ok
}

func (m *appModel) resize() {
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	w := m.width / 2
	if w < 40 {
		w = 40
	}
	m.sidebar.SetSize(w, h)
}

func (m *appModel) captureStateModTime() {
	m.lastStateModTime = fileModTime(filepath.Join(m.store.Dir, "state.db"))
}

func (m *appModel) stateChanged() bool {
	return fileModTime(filepath.Join(m.store.Dir, "state.db")).After(m.lastStateModTime)
}

func fileModTime(path string) time.Time {
	st, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return st.ModTime()
}

func tickReload() tea.Cmd {
	return tea.Tick(750*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

func errStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorErrorFg)
}
