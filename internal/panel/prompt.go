package panel

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/scribe/internal/theme"
)

// PromptResultMsg is sent when a text prompt is confirmed.
type PromptResultMsg struct {
	Value string
}

// PromptConfirmedMsg is sent when a yes/no prompt is answered yes.
type PromptConfirmedMsg struct{}

// PromptCancelledMsg is sent when the prompt is dismissed.
type PromptCancelledMsg struct{}

// Prompt is a centered overlay dialog: either a text input or a yes/no
// confirmation.
type Prompt struct {
	input   textinput.Model
	theme   *theme.Theme
	title   string
	errMsg  string
	width   int
	height  int
	visible bool
	confirm bool
}

func NewPrompt(th *theme.Theme) Prompt {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	return Prompt{input: ti, theme: th}
}

// Show opens a text prompt. initial prefills the input (e.g. the current
// name when renaming).
func (p *Prompt) Show(title, placeholder, initial string) {
	p.visible = true
	p.confirm = false
	p.title = title
	p.errMsg = ""
	p.input.Placeholder = placeholder
	p.input.SetValue(initial)
	p.input.CursorEnd()
	p.input.Focus()
}

// ShowConfirm opens a yes/no prompt.
func (p *Prompt) ShowConfirm(title string) {
	p.visible = true
	p.confirm = true
	p.title = title
	p.errMsg = ""
}

// SetError re-opens the prompt with an error line, keeping the input value.
func (p *Prompt) SetError(msg string) {
	p.visible = true
	p.errMsg = msg
	if !p.confirm {
		p.input.Focus()
	}
}

func (p *Prompt) Hide() {
	p.visible = false
	p.input.Blur()
}

func (p Prompt) Visible() bool {
	return p.visible
}

func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if !p.visible {
		return p, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		if p.confirm {
			switch key.String() {
			case "y", "Y", "enter":
				p.visible = false
				return p, func() tea.Msg { return PromptConfirmedMsg{} }
			case "n", "N", "esc", "ctrl+c":
				p.visible = false
				return p, func() tea.Msg { return PromptCancelledMsg{} }
			}
			return p, nil
		}

		switch key.String() {
		case "enter":
			value := strings.TrimSpace(p.input.Value())
			p.visible = false
			if value == "" {
				return p, func() tea.Msg { return PromptCancelledMsg{} }
			}
			return p, func() tea.Msg { return PromptResultMsg{Value: value} }

		case "esc", "ctrl+c":
			p.visible = false
			return p, func() tea.Msg { return PromptCancelledMsg{} }
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Prompt) View() string {
	if !p.visible {
		return ""
	}

	width := p.width
	if width == 0 {
		width = 60
	}
	innerWidth := width - 6

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.theme.Accent).
		Padding(0, 1).
		Width(innerWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.theme.Accent)

	dimStyle := lipgloss.NewStyle().
		Foreground(p.theme.Dim)

	var lines []string
	lines = append(lines, titleStyle.Render(p.title))
	if p.confirm {
		lines = append(lines, "")
		lines = append(lines, dimStyle.Render("y to confirm, n to cancel"))
	} else {
		lines = append(lines, p.input.View())
		lines = append(lines, "")
		lines = append(lines, dimStyle.Render("Enter to confirm, Esc to cancel"))
	}
	if p.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(p.theme.Error)
		lines = append(lines, errStyle.Render(p.errMsg))
	}

	content := strings.Join(lines, "\n")
	return borderStyle.Render(content)
}

func (p *Prompt) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = width/2 - 8
}
