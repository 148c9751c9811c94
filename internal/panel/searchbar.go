package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/scribe/internal/search"
	"github.com/pfassina/scribe/internal/theme"
)

// SearchChangedMsg is sent when the search term changes.
type SearchChangedMsg struct {
	Term string
}

// SearchNextMsg requests navigation to the next match.
type SearchNextMsg struct{}

// SearchPrevMsg requests navigation to the previous match.
type SearchPrevMsg struct{}

// ReplaceOneMsg requests replacing the current match.
type ReplaceOneMsg struct {
	Replacement string
}

// ReplaceAllMsg requests replacing every match.
type ReplaceAllMsg struct {
	Replacement string
}

// SearchClosedMsg is sent when the bar is dismissed.
type SearchClosedMsg struct{}

type searchField int

const (
	fieldFind searchField = iota
	fieldReplace
)

// SearchBar renders the find/replace overlay at the top of the editor area:
//
//	Row 1: "Find: " + term input + match counter (e.g., "1/3")
//	Row 2: "Replace: " + replacement input (replace mode only)
//
// Keyboard handling:
//   - Tab switches focus between the find and replace fields
//   - Enter / shift+enter navigates matches; in the replace field Enter
//     replaces the current match
//   - Ctrl+Enter (alt+enter) replaces all matches
//   - Escape closes the bar
type SearchBar struct {
	findInput    textinput.Model
	replaceInput textinput.Model
	theme        *theme.Theme
	mode         search.Mode
	activeField  searchField
	current      int
	total        int
	width        int
}

func NewSearchBar(th *theme.Theme) SearchBar {
	find := textinput.New()
	find.Placeholder = "Find"
	find.CharLimit = 256
	find.Prompt = ""

	repl := textinput.New()
	repl.Placeholder = "Replace"
	repl.CharLimit = 256
	repl.Prompt = ""

	return SearchBar{
		findInput:    find,
		replaceInput: repl,
		theme:        th,
	}
}

// SetMode switches the bar between closed, find, and replace. The find term
// survives mode changes; opening focuses the find field.
func (b *SearchBar) SetMode(mode search.Mode) {
	b.mode = mode
	switch mode {
	case search.ModeClosed:
		b.findInput.Blur()
		b.replaceInput.Blur()
	default:
		b.activeField = fieldFind
		b.findInput.Focus()
		b.replaceInput.Blur()
	}
}

func (b SearchBar) Mode() search.Mode {
	return b.mode
}

func (b SearchBar) Visible() bool {
	return b.mode != search.ModeClosed
}

// SetMatches updates the match counter display.
func (b *SearchBar) SetMatches(current, total int) {
	b.current = current
	b.total = total
}

func (b *SearchBar) SetWidth(width int) {
	b.width = width
	inner := width - 12
	if inner < 10 {
		inner = 10
	}
	b.findInput.Width = inner
	b.replaceInput.Width = inner
}

func (b *SearchBar) Term() string {
	return b.findInput.Value()
}

// SetTerm replaces the find term programmatically.
func (b *SearchBar) SetTerm(term string) {
	b.findInput.SetValue(term)
	b.findInput.CursorEnd()
}

func (b SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	if b.mode == search.ModeClosed {
		return b, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			b.SetMode(search.ModeClosed)
			return b, func() tea.Msg { return SearchClosedMsg{} }

		case "tab":
			if b.mode == search.ModeReplace {
				if b.activeField == fieldFind {
					b.activeField = fieldReplace
					b.findInput.Blur()
					b.replaceInput.Focus()
				} else {
					b.activeField = fieldFind
					b.replaceInput.Blur()
					b.findInput.Focus()
				}
			}
			return b, nil

		case "enter":
			if b.activeField == fieldReplace {
				repl := b.replaceInput.Value()
				return b, func() tea.Msg { return ReplaceOneMsg{Replacement: repl} }
			}
			return b, func() tea.Msg { return SearchNextMsg{} }

		case "shift+tab", "shift+enter":
			return b, func() tea.Msg { return SearchPrevMsg{} }

		case "ctrl+enter", "alt+enter":
			if b.mode == search.ModeReplace {
				repl := b.replaceInput.Value()
				return b, func() tea.Msg { return ReplaceAllMsg{Replacement: repl} }
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	if b.activeField == fieldReplace {
		b.replaceInput, cmd = b.replaceInput.Update(msg)
		return b, cmd
	}

	prev := b.findInput.Value()
	b.findInput, cmd = b.findInput.Update(msg)
	if term := b.findInput.Value(); term != prev {
		return b, tea.Batch(cmd, func() tea.Msg { return SearchChangedMsg{Term: term} })
	}
	return b, cmd
}

func (b SearchBar) View() string {
	if b.mode == search.ModeClosed || b.width == 0 {
		return ""
	}

	label := lipgloss.NewStyle().Foreground(b.theme.Subtle)
	counter := lipgloss.NewStyle().Foreground(b.theme.Match)
	noMatch := lipgloss.NewStyle().Foreground(b.theme.Dim)

	count := noMatch.Render("no results")
	if b.total > 0 {
		count = counter.Render(fmt.Sprintf("%d/%d", b.current+1, b.total))
	} else if b.findInput.Value() == "" {
		count = ""
	}

	var rows []string
	rows = append(rows, fmt.Sprintf("%s %s %s", label.Render("Find:   "), b.findInput.View(), count))
	if b.mode == search.ModeReplace {
		rows = append(rows, fmt.Sprintf("%s %s", label.Render("Replace:"), b.replaceInput.View()))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(b.theme.Border).
		Width(b.width)
	return box.Render(strings.Join(rows, "\n"))
}

// Height returns the rendered height of the bar, including its border.
func (b SearchBar) Height() int {
	switch b.mode {
	case search.ModeClosed:
		return 0
	case search.ModeFind:
		return 2
	default:
		return 3
	}
}
