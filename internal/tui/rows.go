package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// treeRowItem adapts a sidebarRow for the bubbles list. grabbed and target
// carry the move-mode render state decided by the app model.
type treeRowItem struct {
	row     sidebarRow
	grabbed bool
	target  bool
}

func (i treeRowItem) FilterValue() string {
	switch i.row.kind {
	case rowFolder:
		return i.row.folder.Name
	case rowPage:
		return i.row.page.Title
	case rowSection:
		if i.row.section != nil {
			return i.row.section.Name
		}
		return "unsorted"
	default:
		return ""
	}
}

func (i treeRowItem) Title() string {
	indent := strings.Repeat("  ", i.row.depth)

	var label string
	switch i.row.kind {
	case rowRoot:
		label = styleMuted().Render(glyphRoot() + " notebook root")
	case rowSection:
		name := "unsorted"
		if i.row.section != nil {
			name = i.row.section.Name
		}
		label = lipgloss.NewStyle().Foreground(colorSectionFg).Render("§ " + name)
	case rowFolder:
		twisty := " "
		if i.row.hasChildren {
			twisty = glyphTwistyCollapsed()
			if i.row.expanded {
				twisty = glyphTwistyExpanded()
			}
		}
		name := i.row.folder.Name
		st := lipgloss.NewStyle()
		if i.row.folder.IsArchiveFolder() || i.row.folder.Archived {
			st = st.Foreground(colorArchiveFg)
		}
		label = twisty + " " + glyphFolder() + " " + st.Render(name)
	case rowPage:
		twisty := " "
		if i.row.hasChildren {
			twisty = glyphTwistyCollapsed()
			if i.row.expanded {
				twisty = glyphTwistyExpanded()
			}
		}
		title := strings.TrimSpace(i.row.page.Title)
		if title == "" {
			title = "(untitled)"
		}
		st := lipgloss.NewStyle()
		if i.row.page.Archived {
			st = st.Foreground(colorArchiveFg)
		}
		label = twisty + " " + glyphBullet() + " " + st.Render(title)
	}

	if i.grabbed {
		label = lipgloss.NewStyle().Foreground(colorGrabbedFg).Bold(true).Render(glyphGrab()+" ") + label
	}
	return indent + label
}

func newSidebarList(items []list.Item) list.Model {
	l := list.New(items, newTreeRowDelegate(), 0, 0)
	// The app renders its own header and footer; keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("row", "rows")
	// ESC is back/cancel here, never quit.
	l.KeyMap.Quit.SetKeys("ctrl+c")
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	l.KeyMap.CursorUp.SetKeys(append(cursorUpKeys, "ctrl+p")...)
	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	l.KeyMap.CursorDown.SetKeys(append(cursorDownKeys, "ctrl+n")...)
	return l
}
