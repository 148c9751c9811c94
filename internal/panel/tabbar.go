package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/scribe/internal/session"
	"github.com/pfassina/scribe/internal/theme"
)

// TabBar renders a horizontal row of tab titles across the top of the
// editor. The active tab is highlighted and dirty buffers show a "*"
// indicator.
type TabBar struct {
	theme  *theme.Theme
	tabs   []TabInfo
	active int
	width  int
}

// TabInfo holds display data for a single tab.
type TabInfo struct {
	ID    int
	Title string
	Dirty bool
}

func NewTabBar(th *theme.Theme) TabBar {
	return TabBar{theme: th}
}

// SetTabs replaces the tab data. Typically fed from the session manager's
// list-change callback.
func (t *TabBar) SetTabs(sessions []*session.Session, activeID int) {
	t.tabs = t.tabs[:0]
	t.active = -1
	for i, s := range sessions {
		t.tabs = append(t.tabs, TabInfo{ID: s.ID, Title: s.Title, Dirty: s.Modified})
		if s.ID == activeID {
			t.active = i
		}
	}
}

func (t *TabBar) SetWidth(width int) {
	t.width = width
}

// TabAt returns the session ID of the tab at the given x coordinate, or 0.
func (t TabBar) TabAt(px int) int {
	x := 0
	for i, tab := range t.tabs {
		w := len([]rune(tab.label()))
		if px >= x && px < x+w {
			return tab.ID
		}
		x += w
		if i < len(t.tabs)-1 {
			x++ // separator
		}
	}
	return 0
}

func (ti TabInfo) label() string {
	label := " " + ti.Title
	if ti.Dirty {
		label += "*"
	}
	return label + " "
}

func (t TabBar) View() string {
	if t.width == 0 {
		return ""
	}

	normal := lipgloss.NewStyle().
		Background(t.theme.TabBg).
		Foreground(t.theme.Subtle)
	active := lipgloss.NewStyle().
		Background(t.theme.Bg).
		Foreground(t.theme.TabFg).
		Bold(true)
	sep := normal.Render("│")

	var b strings.Builder
	used := 0
	for i, tab := range t.tabs {
		label := tab.label()
		w := len([]rune(label))
		if used+w > t.width {
			break
		}
		if i == t.active {
			b.WriteString(active.Render(label))
		} else {
			b.WriteString(normal.Render(label))
		}
		used += w

		if i < len(t.tabs)-1 && used < t.width {
			b.WriteString(sep)
			used++
		}
	}

	if used < t.width {
		b.WriteString(normal.Render(strings.Repeat(" ", t.width-used)))
	}
	return b.String()
}
