package panel

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/scribe/internal/theme"
	"github.com/pfassina/scribe/internal/workspace"
)

// FileSelectedMsg is sent when a file is selected in the tree.
type FileSelectedMsg struct {
	Path string
}

// TreeNewFileMsg is sent when the user presses 'a' to create a file.
type TreeNewFileMsg struct{}

// TreeDeleteFileMsg is sent when the user presses 'd' to delete a file.
type TreeDeleteFileMsg struct {
	Path string
	Name string
}

// TreeRenameFileMsg is sent when the user presses 'r' to rename a file.
type TreeRenameFileMsg struct {
	Path string
	Name string
}

// Tree is the file tree panel.
type Tree struct {
	ws         *workspace.Workspace
	theme      *theme.Theme
	allEntries []workspace.Entry
	entries    []workspace.Entry
	collapsed  map[string]bool
	cursor     int
	offset     int
	width      int
	height     int
	focused    bool
	showHelp   bool
}

func NewTree(ws *workspace.Workspace, th *theme.Theme) Tree {
	return Tree{
		ws:        ws,
		theme:     th,
		collapsed: make(map[string]bool),
	}
}

func (t *Tree) Refresh() {
	entries, _ := t.ws.ListEntries()
	t.allEntries = entries
	t.rebuildVisible()
}

// rebuildVisible filters allEntries based on collapsed state.
func (t *Tree) rebuildVisible() {
	t.entries = t.entries[:0]
	for _, e := range t.allEntries {
		if t.isHiddenByCollapse(e.Path) {
			continue
		}
		t.entries = append(t.entries, e)
	}
	// Clamp cursor
	if t.cursor >= len(t.entries) {
		t.cursor = len(t.entries) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// isHiddenByCollapse checks if any ancestor directory of path is collapsed.
func (t *Tree) isHiddenByCollapse(path string) bool {
	dir := filepath.Dir(path)
	for dir != "." {
		if t.collapsed[dir] {
			return true
		}
		dir = filepath.Dir(dir)
	}
	return false
}

func (t Tree) Init() tea.Cmd {
	return nil
}

func (t Tree) Update(msg tea.Msg) (Tree, tea.Cmd) {
	if !t.focused {
		return t, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// When help is shown, any key dismisses it
		if t.showHelp {
			t.showHelp = false
			return t, nil
		}

		switch msg.String() {
		case "j", "down":
			if t.cursor < len(t.entries)-1 {
				t.cursor++
				if t.cursor-t.offset >= t.height-2 {
					t.offset++
				}
			}
		case "k", "up":
			if t.cursor > 0 {
				t.cursor--
				if t.cursor < t.offset {
					t.offset = t.cursor
				}
			}
		case "enter":
			if t.cursor < len(t.entries) {
				entry := t.entries[t.cursor]
				if entry.IsDir {
					t.collapsed[entry.Path] = !t.collapsed[entry.Path]
					t.rebuildVisible()
				} else {
					return t, func() tea.Msg {
						return FileSelectedMsg{Path: entry.Path}
					}
				}
			}
		case "G":
			if len(t.entries) == 0 {
				break
			}
			t.cursor = len(t.entries) - 1
			if t.cursor-t.offset >= t.height-2 {
				t.offset = t.cursor - t.height + 3
			}
		case "g":
			t.cursor = 0
			t.offset = 0
		case "a":
			return t, func() tea.Msg { return TreeNewFileMsg{} }
		case "d":
			if t.cursor < len(t.entries) {
				entry := t.entries[t.cursor]
				if !entry.IsDir {
					return t, func() tea.Msg {
						return TreeDeleteFileMsg{Path: entry.Path, Name: entry.Name}
					}
				}
			}
		case "r":
			if t.cursor < len(t.entries) {
				entry := t.entries[t.cursor]
				if !entry.IsDir {
					return t, func() tea.Msg {
						return TreeRenameFileMsg{Path: entry.Path, Name: entry.Name}
					}
				}
			}
		case "?":
			t.showHelp = !t.showHelp
		}
	}

	return t, nil
}

func (t Tree) View() string {
	if t.width == 0 || t.height == 0 {
		return ""
	}

	var titleStyle lipgloss.Style
	if t.focused {
		titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(t.theme.Accent).
			Underline(true).
			Padding(0, 1)
	} else {
		titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(t.theme.Dim).
			Padding(0, 1)
	}

	var b strings.Builder

	// Title row with optional ? hint
	title := titleStyle.Render("Explorer")
	if t.focused && !t.showHelp {
		hint := lipgloss.NewStyle().Foreground(t.theme.Dim).Render("?")
		titleWidth := lipgloss.Width(title)
		hintWidth := lipgloss.Width(hint)
		gap := t.width - 2 - titleWidth - hintWidth
		if gap > 0 {
			b.WriteString(title)
			b.WriteString(strings.Repeat(" ", gap))
			b.WriteString(hint)
		} else {
			b.WriteString(title)
		}
	} else {
		b.WriteString(title)
	}
	b.WriteByte('\n')

	viewHeight := t.height - 2 // title + bottom padding
	if viewHeight < 0 {
		viewHeight = 0
	}

	// Reserve space for help if showing
	helpLines := 0
	if t.showHelp {
		helpLines = 10 // help box height
		viewHeight -= helpLines
		if viewHeight < 0 {
			viewHeight = 0
		}
	}

	for i := t.offset; i < len(t.entries) && i-t.offset < viewHeight; i++ {
		entry := t.entries[i]
		indent := strings.Repeat("  ", entry.Depth)
		icon := "  "
		if entry.IsDir {
			if t.collapsed[entry.Path] {
				icon = "▸ "
			} else {
				icon = "▾ "
			}
		}

		line := fmt.Sprintf("%s%s%s", indent, icon, entry.Name)

		// Truncate to width
		if len(line) > t.width-2 {
			line = line[:t.width-5] + "..."
		}

		// Pad to width
		if len(line) < t.width-2 {
			line += strings.Repeat(" ", t.width-2-len(line))
		}

		if i == t.cursor && t.focused {
			style := lipgloss.NewStyle().
				Foreground(t.theme.Accent).
				Bold(true)
			b.WriteString(style.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}

	if t.showHelp {
		b.WriteString(t.renderHelp())
	}

	return b.String()
}

func (t Tree) renderHelp() string {
	dim := lipgloss.NewStyle().Foreground(t.theme.Dim)
	key := lipgloss.NewStyle().Foreground(t.theme.Accent).Bold(true)
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.theme.Border).
		Padding(0, 1).
		Width(t.width - 6)

	lines := []struct{ k, v string }{
		{"j/k", "Navigate"},
		{"enter", "Open / Toggle dir"},
		{"a", "New file or dir"},
		{"d", "Delete file"},
		{"r", "Rename file"},
		{"g/G", "Top / Bottom"},
		{"?", "Toggle help"},
	}

	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", key.Render(fmt.Sprintf("%-5s", l.k)), dim.Render(l.v)))
	}

	return border.Render(strings.TrimRight(sb.String(), "\n"))
}

func (t *Tree) SetSize(width, height int) {
	t.width = width
	t.height = height
}

func (t *Tree) SetFocused(focused bool) {
	t.focused = focused
}

func (t Tree) Focused() bool {
	return t.focused
}

func (t Tree) ShowingHelp() bool {
	return t.showHelp
}

// SelectedEntry returns the entry under the cursor.
func (t Tree) SelectedEntry() (workspace.Entry, bool) {
	if t.cursor < 0 || t.cursor >= len(t.entries) {
		return workspace.Entry{}, false
	}
	return t.entries[t.cursor], true
}
