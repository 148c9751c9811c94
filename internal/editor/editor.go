package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pfassina/scribe/internal/search"
	"github.com/pfassina/scribe/internal/session"
	"github.com/pfassina/scribe/internal/theme"
)

// ContentChangedMsg reports a transition of the surface's modified state.
// It fires exactly once per boolean flip, never for repeated edits to an
// already-dirty document.
type ContentChangedMsg struct {
	Modified bool
}

// CursorMovedMsg reports a cursor position change (zero-based).
type CursorMovedMsg struct {
	Line int
	Col  int
}

// Surface is the single live text-editing widget. All open sessions share
// it; exactly one document is displayed at a time and the orchestrator swaps
// session state in and out around tab navigation.
type Surface struct {
	ta       textarea.Model
	path     string
	language string

	// baseline is the content at the last sync point (load, swap, save).
	// The modified flag is derived by comparing the live value against it,
	// so populating the surface never reports a spurious edit.
	baseline string
	modified bool

	lastLine int
	lastCol  int

	focused bool
	width   int
	height  int
	theme   *theme.Theme

	hl hlCache
}

func New(th *theme.Theme) Surface {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.Prompt = ""

	return Surface{ta: ta, theme: th}
}

// Load populates the surface with a document freshly read from disk. The
// document settles unmodified; no change notification is produced for the
// initial population.
func (s *Surface) Load(path, content, language string) {
	s.ta.SetValue(content)
	s.moveToStart()
	s.path = path
	s.language = language
	s.settle(content)
}

// Swap replaces the displayed document with the target session's snapshot:
// text, language, and cursor. Highlight state belonging to the previous
// document is dropped. Like Load, swapping reports unmodified.
func (s *Surface) Swap(sess *session.Session) {
	s.ta.SetValue(sess.Content)
	s.moveCursor(sess.Line, sess.Col)
	s.path = sess.Path
	s.language = sess.Language
	s.hl = hlCache{}
	s.settle(sess.Content)
}

// NewDocument clears the surface for an untitled buffer.
func (s *Surface) NewDocument() {
	s.ta.SetValue("")
	s.path = ""
	s.language = ""
	s.hl = hlCache{}
	s.settle("")
}

// MarkSaved resets the modified baseline to the current value after a
// successful save. A failed save must not call this.
func (s *Surface) MarkSaved() {
	s.settle(s.ta.Value())
}

func (s *Surface) settle(content string) {
	s.baseline = content
	s.modified = false
	s.lastLine = s.Line()
	s.lastCol = s.Col()
}

// Snapshot captures the live text and cursor for sync-back into the active
// session before navigating away. Scroll is approximated by the cursor line:
// the textarea exposes no viewport offset, and it keeps the cursor in view,
// so restoring the cursor on Swap restores an equivalent scroll position.
func (s *Surface) Snapshot() session.Snapshot {
	return session.Snapshot{
		Content: s.ta.Value(),
		Line:    s.Line(),
		Col:     s.Col(),
		Scroll:  s.Line(),
	}
}

// Value returns the live text.
func (s *Surface) Value() string {
	return s.ta.Value()
}

// Modified reports whether the live text differs from the baseline.
func (s *Surface) Modified() bool {
	return s.modified
}

// Path returns the backing file path ("" for untitled documents).
func (s *Surface) Path() string {
	return s.path
}

// Language returns the language identifier of the displayed document.
func (s *Surface) Language() string {
	return s.language
}

// SetLanguage updates the language, e.g. after save-as gives an untitled
// document a path.
func (s *Surface) SetLanguage(language string) {
	s.language = language
	s.hl = hlCache{}
}

// Line returns the zero-based cursor row.
func (s *Surface) Line() int {
	return s.ta.Line()
}

// Col returns the zero-based cursor column within the current row.
func (s *Surface) Col() int {
	li := s.ta.LineInfo()
	return li.StartColumn + li.ColumnOffset
}

// MoveCursor places the cursor at the given zero-based position, clamped to
// the document.
func (s *Surface) MoveCursor(line, col int) {
	s.moveCursor(line, col)
}

func (s *Surface) moveCursor(line, col int) {
	s.moveToStart()
	for i := 0; i < line && i < s.ta.LineCount()-1; i++ {
		s.ta.CursorDown()
	}
	s.ta.SetCursor(col)
}

// moveToStart walks the cursor back to the top of the document. textarea
// has no exported absolute jump, so this steps up line by line.
func (s *Surface) moveToStart() {
	for s.ta.Line() > 0 {
		s.ta.CursorUp()
	}
	s.ta.CursorStart()
}

// CurrentLineText returns the text of the cursor's line.
func (s *Surface) CurrentLineText() string {
	lines := strings.Split(s.ta.Value(), "\n")
	if n := s.Line(); n >= 0 && n < len(lines) {
		return lines[n]
	}
	return ""
}

// DeleteCurrentLine removes the cursor's line and returns its text.
func (s *Surface) DeleteCurrentLine() string {
	lines := strings.Split(s.ta.Value(), "\n")
	n := s.Line()
	if n < 0 || n >= len(lines) {
		return ""
	}
	removed := lines[n]
	lines = append(lines[:n], lines[n+1:]...)
	s.ta.SetValue(strings.Join(lines, "\n"))
	if n >= len(lines) && n > 0 {
		n = len(lines) - 1
	}
	s.moveCursor(n, 0)
	s.refreshModified()
	return removed
}

// InsertText inserts text at the cursor.
func (s *Surface) InsertText(text string) {
	s.ta.InsertString(text)
	s.refreshModified()
}

// ReplaceRange substitutes exactly the given byte range of the live text.
// The cursor lands at the end of the replacement.
func (s *Surface) ReplaceRange(m search.Match, repl string) {
	text := s.ta.Value()
	if m.Start < 0 || m.End > len(text) || m.Start > m.End {
		return
	}
	s.ta.SetValue(text[:m.Start] + repl + text[m.End:])
	line, col := PositionAt(s.ta.Value(), m.Start+len(repl))
	s.moveCursor(line, col)
	s.refreshModified()
}

// SetText replaces the whole document (replace-all), keeping the cursor on
// its current line where possible.
func (s *Surface) SetText(text string) {
	line := s.Line()
	s.ta.SetValue(text)
	s.moveCursor(line, 0)
	s.refreshModified()
}

// refreshModified recomputes the dirty flag after a programmatic edit.
// Transition notifications for programmatic edits are the caller's business;
// the next Update emits them if the caller did not handle it.
func (s *Surface) refreshModified() {
	s.modified = s.ta.Value() != s.baseline
}

func (s *Surface) Focus() {
	s.focused = true
	s.ta.Focus()
}

func (s *Surface) Blur() {
	s.focused = false
	s.ta.Blur()
}

func (s *Surface) Focused() bool {
	return s.focused
}

func (s *Surface) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.ta.SetWidth(width)
	s.ta.SetHeight(height)
}

func (s Surface) Update(msg tea.Msg) (Surface, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && !s.focused {
		return s, nil
	}

	var taCmd tea.Cmd
	s.ta, taCmd = s.ta.Update(msg)

	var cmds []tea.Cmd
	if taCmd != nil {
		cmds = append(cmds, taCmd)
	}

	if dirty := s.ta.Value() != s.baseline; dirty != s.modified {
		s.modified = dirty
		cmds = append(cmds, func() tea.Msg { return ContentChangedMsg{Modified: dirty} })
	}

	if line, col := s.Line(), s.Col(); line != s.lastLine || col != s.lastCol {
		s.lastLine = line
		s.lastCol = col
		cmds = append(cmds, func() tea.Msg { return CursorMovedMsg{Line: line, Col: col} })
	}

	switch len(cmds) {
	case 0:
		return s, nil
	case 1:
		return s, cmds[0]
	default:
		return s, tea.Batch(cmds...)
	}
}

func (s Surface) View() string {
	if s.focused || s.language == "" {
		return s.ta.View()
	}
	// Idle surface: render a syntax-highlighted window around the cursor
	// instead of the bare textarea.
	return s.highlightedView()
}

// PositionAt converts a byte offset into zero-based (line, col).
func PositionAt(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}
