package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// treeRowDelegate renders one-line sidebar rows with width-aware truncation
// and the move-mode drop-target wash.
type treeRowDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	target   lipgloss.Style
}

func newTreeRowDelegate() treeRowDelegate {
	return treeRowDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		target: lipgloss.NewStyle().
			Background(colorTargetBg),
	}
}

func (d treeRowDelegate) Height() int                             { return 1 }
func (d treeRowDelegate) Spacing() int                            { return 0 }
func (d treeRowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d treeRowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		return
	}

	it, ok := item.(treeRowItem)
	if !ok {
		fmt.Fprint(w, "")
		return
	}

	style := d.normal
	switch {
	case it.target:
		style = d.target
	case index == m.Index():
		style = d.selected
	}

	line := it.Title()
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, style.Render(line))
}
