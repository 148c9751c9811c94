package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pfassina/scribe/internal/search"
	"github.com/pfassina/scribe/internal/session"
	"github.com/pfassina/scribe/internal/theme"
)

func newSurface() Surface {
	th := theme.DefaultTheme()
	s := New(&th)
	s.SetSize(80, 24)
	return s
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// collect resolves a command into the messages it produces, flattening
// batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func contentChanges(msgs []tea.Msg) []ContentChangedMsg {
	var out []ContentChangedMsg
	for _, m := range msgs {
		if cc, ok := m.(ContentChangedMsg); ok {
			out = append(out, cc)
		}
	}
	return out
}

func TestLoadDoesNotReportModified(t *testing.T) {
	s := newSurface()
	s.Load("a.go", "package a\n", "go")

	if s.Modified() {
		t.Error("freshly loaded document should not be modified")
	}
	if s.Line() != 0 || s.Col() != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", s.Line(), s.Col())
	}
}

func TestFirstEditReportsModifiedOnce(t *testing.T) {
	s := newSurface()
	s.Load("a.go", "hello", "go")
	s.Focus()

	s, cmd := s.Update(keyRune('x'))
	changes := contentChanges(collect(cmd))
	if len(changes) != 1 || !changes[0].Modified {
		t.Fatalf("first edit: changes = %v, want one Modified=true", changes)
	}
	if !s.Modified() {
		t.Error("surface should be modified after edit")
	}

	// Further edits to an already-dirty document stay quiet.
	s, cmd = s.Update(keyRune('y'))
	if changes := contentChanges(collect(cmd)); len(changes) != 0 {
		t.Errorf("second edit: changes = %v, want none", changes)
	}
	_ = s
}

func TestEditBackToBaselineReportsClean(t *testing.T) {
	s := newSurface()
	s.Load("a.go", "hello", "go")
	s.Focus()

	s, _ = s.Update(keyRune('x'))
	s, cmd := s.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	changes := contentChanges(collect(cmd))
	if len(changes) != 1 || changes[0].Modified {
		t.Fatalf("changes = %v, want one Modified=false", changes)
	}
	if s.Modified() {
		t.Error("surface matching baseline should not be modified")
	}
}

func TestMarkSavedResetsBaseline(t *testing.T) {
	s := newSurface()
	s.Load("a.go", "hello", "go")
	s.Focus()

	s, _ = s.Update(keyRune('x'))
	s.MarkSaved()
	if s.Modified() {
		t.Error("MarkSaved should clear the modified flag")
	}

	s, cmd := s.Update(keyRune('y'))
	changes := contentChanges(collect(cmd))
	if len(changes) != 1 || !changes[0].Modified {
		t.Errorf("edit after save: changes = %v, want one Modified=true", changes)
	}
	_ = s
}

func TestSwapRestoresSessionState(t *testing.T) {
	s := newSurface()
	s.Load("a.go", "aaa", "go")

	sess := &session.Session{
		Path:     "b.py",
		Content:  "line one\nline two\nline three",
		Line:     1,
		Col:      5,
		Language: "python",
	}
	s.Swap(sess)

	if s.Value() != sess.Content {
		t.Errorf("Value = %q, want session content", s.Value())
	}
	if s.Line() != 1 || s.Col() != 5 {
		t.Errorf("cursor = (%d,%d), want (1,5)", s.Line(), s.Col())
	}
	if s.Language() != "python" {
		t.Errorf("Language = %q, want python", s.Language())
	}
	if s.Modified() {
		t.Error("swap should settle unmodified")
	}
}

func TestLoadResetsCursorFromDeepInDocument(t *testing.T) {
	s := newSurface()
	s.Load("a.txt", "one\ntwo\nthree", "")
	s.MoveCursor(2, 3)

	s.Load("b.txt", "alpha\nbeta", "")
	if s.Line() != 0 || s.Col() != 0 {
		t.Errorf("cursor after reload = (%d,%d), want (0,0)", s.Line(), s.Col())
	}
}

func TestMoveCursorBackUp(t *testing.T) {
	s := newSurface()
	s.Load("a.txt", "one\ntwo\nthree", "")

	s.MoveCursor(2, 3)
	s.MoveCursor(1, 1)
	if s.Line() != 1 || s.Col() != 1 {
		t.Errorf("cursor = (%d,%d), want (1,1)", s.Line(), s.Col())
	}
}

func TestSnapshotCapturesLiveState(t *testing.T) {
	s := newSurface()
	s.Load("a.go", "one\ntwo", "go")
	s.MoveCursor(1, 2)

	snap := s.Snapshot()
	if snap.Content != "one\ntwo" {
		t.Errorf("Content = %q", snap.Content)
	}
	if snap.Line != 1 || snap.Col != 2 {
		t.Errorf("snapshot cursor = (%d,%d), want (1,2)", snap.Line, snap.Col)
	}
}

func TestReplaceRange(t *testing.T) {
	s := newSurface()
	s.Load("a.txt", "foo bar foo", "")

	s.ReplaceRange(search.Match{Start: 0, End: 3}, "baz")
	if got := s.Value(); got != "baz bar foo" {
		t.Errorf("Value = %q, want %q", got, "baz bar foo")
	}
	if !s.Modified() {
		t.Error("ReplaceRange should mark the surface modified")
	}
	if s.Col() != 3 {
		t.Errorf("cursor col = %d, want end of replacement", s.Col())
	}
}

func TestSetText(t *testing.T) {
	s := newSurface()
	s.Load("a.txt", "foo\nfoo", "")
	s.MoveCursor(1, 0)

	s.SetText("baz\nbaz")
	if got := s.Value(); got != "baz\nbaz" {
		t.Errorf("Value = %q", got)
	}
	if s.Line() != 1 {
		t.Errorf("cursor line = %d, want 1", s.Line())
	}
}

func TestDeleteCurrentLine(t *testing.T) {
	s := newSurface()
	s.Load("a.txt", "one\ntwo\nthree", "")
	s.MoveCursor(1, 0)

	if got := s.DeleteCurrentLine(); got != "two" {
		t.Errorf("removed = %q, want %q", got, "two")
	}
	if got := s.Value(); got != "one\nthree" {
		t.Errorf("Value = %q, want %q", got, "one\nthree")
	}
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	s := newSurface()
	s.Load("a.txt", "hello", "")

	s, cmd := s.Update(keyRune('x'))
	if s.Value() != "hello" {
		t.Errorf("unfocused surface accepted input: %q", s.Value())
	}
	if cmd != nil {
		t.Error("unfocused key should produce no command")
	}
}

func TestPositionAt(t *testing.T) {
	text := "one\ntwo\nthree"
	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 0, 0},
		{3, 0, 3},
		{4, 1, 0},
		{6, 1, 2},
		{8, 2, 0},
		{13, 2, 5},
		{99, 2, 5}, // clamped
	}
	for _, tt := range tests {
		line, col := PositionAt(text, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("PositionAt(%d) = (%d,%d), want (%d,%d)", tt.offset, line, col, tt.line, tt.col)
		}
	}
}
