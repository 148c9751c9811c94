package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/scribe/internal/theme"
)

// Status is the status bar at the bottom.
type Status struct {
	theme        *theme.Theme
	width        int
	file         string
	workspaceDir string
	language     string
	line         int
	col          int
	matchCurrent int
	matchTotal   int
	warnMsg      string
	errMsg       string
}

func NewStatus(workspaceDir string, th *theme.Theme) Status {
	return Status{
		workspaceDir: workspaceDir,
		theme:        th,
	}
}

func (s *Status) SetFile(file string) {
	s.file = file
}

func (s *Status) SetLanguage(language string) {
	s.language = language
}

func (s *Status) SetCursor(line, col int) {
	s.line = line
	s.col = col
}

// SetMatches updates the search indicator. total 0 hides it; current -1
// renders "0/total" (no match selected yet).
func (s *Status) SetMatches(current, total int) {
	s.matchCurrent = current
	s.matchTotal = total
}

func (s *Status) SetWidth(width int) {
	s.width = width
}

func (s *Status) SetWarning(msg string) {
	s.warnMsg = msg
}

func (s *Status) SetError(msg string) {
	s.errMsg = msg
}

func (s *Status) ClearError() {
	s.errMsg = ""
	s.warnMsg = ""
}

func (s Status) View() string {
	if s.width == 0 {
		return ""
	}

	bgStyle := lipgloss.NewStyle().
		Background(s.theme.StatusBg)

	fileStyle := lipgloss.NewStyle().
		Background(s.theme.StatusBg).
		Foreground(s.theme.StatusFg).
		Padding(0, 1)

	var fileSection string
	switch {
	case s.errMsg != "":
		fileSection = lipgloss.NewStyle().
			Background(s.theme.StatusBg).
			Foreground(s.theme.Error).
			Padding(0, 1).
			Render(s.errMsg)
	case s.warnMsg != "":
		fileSection = lipgloss.NewStyle().
			Background(s.theme.StatusBg).
			Foreground(s.theme.Warn).
			Padding(0, 1).
			Render(s.warnMsg)
	default:
		file := s.file
		if file == "" {
			file = s.workspaceDir
		}
		fileSection = fileStyle.Render(file)
	}

	left := fileSection
	if s.matchTotal > 0 {
		matchStyle := lipgloss.NewStyle().
			Background(s.theme.StatusBg).
			Foreground(s.theme.Match).
			Padding(0, 1)
		left = fmt.Sprintf("%s%s", left, matchStyle.Render(fmt.Sprintf("%d/%d", s.matchCurrent+1, s.matchTotal)))
	}

	// Language and cursor position on the right, VS Code style.
	var rightParts []string
	if s.language != "" {
		rightParts = append(rightParts, s.language)
	}
	rightParts = append(rightParts, fmt.Sprintf("Ln %d, Col %d", s.line+1, s.col+1))
	right := fileStyle.Render(strings.Join(rightParts, "  "))

	padLen := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padLen < 0 {
		padLen = 0
	}
	padding := bgStyle.Render(strings.Repeat(" ", padLen))

	return left + padding + right
}
