package panel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pfassina/scribe/internal/search"
	"github.com/pfassina/scribe/internal/theme"
)

func newBar() SearchBar {
	th := theme.DefaultTheme()
	b := NewSearchBar(&th)
	b.SetWidth(80)
	return b
}

// drain resolves a command into the messages it produces, flattening
// batches. Commands like textinput's cursor blink show up here too, so
// tests pick out the message type they care about.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestSearchBarTypingEmitsSearchChanged(t *testing.T) {
	b := newBar()
	b.SetMode(search.ModeFind)

	b, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	changed, ok := findMsg[SearchChangedMsg](drain(cmd))
	if !ok {
		t.Fatalf("no SearchChangedMsg in %v", drain(cmd))
	}
	if changed.Term != "f" {
		t.Errorf("Term = %q, want %q", changed.Term, "f")
	}
	if b.Term() != "f" {
		t.Errorf("bar term = %q", b.Term())
	}
}

func TestSearchBarEnterNavigates(t *testing.T) {
	b := newBar()
	b.SetMode(search.ModeFind)

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := findMsg[SearchNextMsg](drain(cmd)); !ok {
		t.Error("enter in find field should request next match")
	}
}

func TestSearchBarReplaceFlow(t *testing.T) {
	b := newBar()
	b.SetMode(search.ModeReplace)

	// Tab moves focus to the replace field.
	b, _ = b.Update(tea.KeyMsg{Type: tea.KeyTab})
	b, _ = b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	b, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	one, ok := findMsg[ReplaceOneMsg](drain(cmd))
	if !ok {
		t.Fatal("enter in replace field should request a replacement")
	}
	if one.Replacement != "x" {
		t.Errorf("Replacement = %q, want %q", one.Replacement, "x")
	}
	_ = b
}

func TestSearchBarTermSurvivesModeChange(t *testing.T) {
	b := newBar()
	b.SetMode(search.ModeFind)
	b, _ = b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	b.SetMode(search.ModeReplace)
	if b.Term() != "q" {
		t.Errorf("term after mode change = %q, want %q", b.Term(), "q")
	}
}

func TestSearchBarEscCloses(t *testing.T) {
	b := newBar()
	b.SetMode(search.ModeFind)

	b, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := findMsg[SearchClosedMsg](drain(cmd)); !ok {
		t.Error("esc should emit SearchClosedMsg")
	}
	if b.Visible() {
		t.Error("bar should be closed after esc")
	}
}

func TestSearchBarHeight(t *testing.T) {
	b := newBar()
	if b.Height() != 0 {
		t.Errorf("closed height = %d, want 0", b.Height())
	}
	b.SetMode(search.ModeFind)
	if b.Height() != 2 {
		t.Errorf("find height = %d, want 2", b.Height())
	}
	b.SetMode(search.ModeReplace)
	if b.Height() != 3 {
		t.Errorf("replace height = %d, want 3", b.Height())
	}
}
