package session

import "testing"

func TestNewManagerEmpty(t *testing.T) {
	m := NewManager()
	if m.Count() != 0 {
		t.Errorf("Count = %d, want 0", m.Count())
	}
	if m.Active() != nil {
		t.Error("Active should be nil when empty")
	}
	if m.ActiveID() != 0 {
		t.Errorf("ActiveID = %d, want 0", m.ActiveID())
	}
}

func TestOpenDistinctPaths(t *testing.T) {
	m := NewManager()
	a := m.Open("a.go", "package a", "go")
	b := m.Open("b.go", "package b", "go")
	c := m.Open("c.go", "package c", "go")

	if m.Count() != 3 {
		t.Errorf("Count = %d, want 3", m.Count())
	}
	// Most recently opened is active.
	if m.ActiveID() != c.ID {
		t.Errorf("ActiveID = %d, want %d", m.ActiveID(), c.ID)
	}
	if a.ID == b.ID || b.ID == c.ID {
		t.Error("session ids must be distinct")
	}
	if a.Modified || a.Line != 0 || a.Col != 0 {
		t.Error("new session should be unmodified with cursor at (0,0)")
	}
}

func TestOpenExistingPathSwitches(t *testing.T) {
	m := NewManager()
	a := m.Open("a.go", "x", "go")
	m.Open("b.go", "y", "go")

	again := m.Open("a.go", "overwritten?", "go")
	if again != a {
		t.Fatal("second open of same path should return the same session")
	}
	if m.Count() != 2 {
		t.Errorf("Count = %d, want 2 (no duplicate)", m.Count())
	}
	if m.ActiveID() != a.ID {
		t.Errorf("ActiveID = %d, want %d (switched to existing)", m.ActiveID(), a.ID)
	}
	if a.Content != "x" {
		t.Errorf("Content = %q, re-open must not overwrite", a.Content)
	}
}

func TestCloseLastSession(t *testing.T) {
	m := NewManager()
	s := m.Open("a.go", "x", "go")

	got := m.Close(s.ID)
	if got != nil {
		t.Errorf("Close on only session = %v, want nil", got)
	}
	if m.Count() != 0 {
		t.Errorf("Count = %d, want 0", m.Count())
	}
	if m.ActiveID() != 0 {
		t.Errorf("ActiveID = %d, want 0", m.ActiveID())
	}
}

func TestCloseActiveSelectsReplacement(t *testing.T) {
	m := NewManager()
	a := m.Open("a.go", "", "")
	b := m.Open("b.go", "", "")
	c := m.Open("c.go", "", "")

	// Active is c. Switch to the middle one and close it; the session that
	// slid into its slot (c) becomes active.
	m.Switch(b.ID, Snapshot{})
	got := m.Close(b.ID)
	if got == nil || got.ID != c.ID {
		t.Fatalf("Close(active middle) = %v, want session %d", got, c.ID)
	}
	if m.ActiveID() != c.ID {
		t.Errorf("ActiveID = %d, want %d", m.ActiveID(), c.ID)
	}

	// Closing the active last session falls back to the new last.
	m.Close(c.ID)
	if m.ActiveID() != a.ID {
		t.Errorf("ActiveID = %d, want %d", m.ActiveID(), a.ID)
	}
}

func TestCloseNonActiveKeepsActive(t *testing.T) {
	m := NewManager()
	a := m.Open("a.go", "", "")
	b := m.Open("b.go", "", "")

	got := m.Close(a.ID)
	if got == nil || got.ID != b.ID {
		t.Fatalf("Close(non-active) = %v, want active session %d", got, b.ID)
	}
	if m.ActiveID() != b.ID {
		t.Errorf("ActiveID = %d, want %d (untouched)", m.ActiveID(), b.ID)
	}
}

func TestCloseUnknownID(t *testing.T) {
	m := NewManager()
	m.Open("a.go", "", "")

	listEvents := 0
	m.OnListChange = func() { listEvents++ }

	if got := m.Close(999); got != nil {
		t.Errorf("Close(unknown) = %v, want nil", got)
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
	if listEvents != 0 {
		t.Errorf("list events = %d, want 0 for no-op close", listEvents)
	}
}

func TestSwitchNoEventWhenAlreadyActive(t *testing.T) {
	m := NewManager()
	a := m.Open("a.go", "", "")

	changes := 0
	m.OnChange = func(*Session) { changes++ }

	m.Switch(a.ID, Snapshot{})
	if changes != 0 {
		t.Errorf("change events = %d, want 0 for switch to active session", changes)
	}
}

func TestSwitchAppliesSnapshot(t *testing.T) {
	m := NewManager()
	a := m.Open("a.go", "old", "go")
	b := m.Open("b.go", "", "go")

	m.Switch(a.ID, Snapshot{Content: "edited", Line: 3, Col: 7, Scroll: 1})
	if b.Content != "edited" || b.Line != 3 || b.Col != 7 || b.Scroll != 1 {
		t.Errorf("outgoing session not synced: %+v", b)
	}
	if m.ActiveID() != a.ID {
		t.Errorf("ActiveID = %d, want %d", m.ActiveID(), a.ID)
	}
}

func TestNextPreviousInverse(t *testing.T) {
	m := NewManager()
	m.Open("a.go", "", "")
	b := m.Open("b.go", "", "")

	m.Next(Snapshot{})
	m.Previous(Snapshot{})
	if m.ActiveID() != b.ID {
		t.Errorf("ActiveID = %d after next;previous, want %d", m.ActiveID(), b.ID)
	}
}

func TestNextWrapsAndNotifies(t *testing.T) {
	m := NewManager()
	a := m.Open("a.go", "", "")
	b := m.Open("b.go", "", "")
	c := m.Open("c.go", "", "")

	changes := 0
	m.OnChange = func(*Session) { changes++ }

	if got := m.Next(Snapshot{}); got.ID != a.ID {
		t.Errorf("Next from last = %d, want wrap to %d", got.ID, a.ID)
	}
	if got := m.Previous(Snapshot{}); got.ID != c.ID {
		t.Errorf("Previous = %d, want wrap back to %d", got.ID, c.ID)
	}
	if changes != 2 {
		t.Errorf("change events = %d, want 2", changes)
	}
	_ = b
}

func TestNextSingleSessionNoEvent(t *testing.T) {
	m := NewManager()
	a := m.Open("a.go", "", "")

	changes := 0
	m.OnChange = func(*Session) { changes++ }

	if got := m.Next(Snapshot{}); got.ID != a.ID {
		t.Errorf("Next = %v, want current session unchanged", got)
	}
	if got := m.Previous(Snapshot{}); got.ID != a.ID {
		t.Errorf("Previous = %v, want current session unchanged", got)
	}
	if changes != 0 {
		t.Errorf("change events = %d, want 0", changes)
	}
}

func TestNextEmptyManager(t *testing.T) {
	m := NewManager()
	if got := m.Next(Snapshot{}); got != nil {
		t.Errorf("Next on empty = %v, want nil", got)
	}
}

func TestUntitledTitles(t *testing.T) {
	m := NewManager()
	first := m.NewUntitled()
	second := m.NewUntitled()

	if first.Title != "Untitled" {
		t.Errorf("first title = %q, want %q", first.Title, "Untitled")
	}
	if second.Title != "Untitled-2" {
		t.Errorf("second title = %q, want %q", second.Title, "Untitled-2")
	}

	// The counter survives closes.
	m.Close(first.ID)
	m.Close(second.ID)
	third := m.NewUntitled()
	if third.Title != "Untitled-3" {
		t.Errorf("third title = %q, want %q", third.Title, "Untitled-3")
	}
	if third.Path != "" || third.Language != "" || third.Content != "" {
		t.Errorf("untitled session should be empty: %+v", third)
	}
}

func TestMarkModifiedIdempotentNotification(t *testing.T) {
	m := NewManager()
	s := m.Open("a.go", "", "")

	events := 0
	m.OnListChange = func() { events++ }

	m.MarkModified(s.ID, true)
	m.MarkModified(s.ID, true)
	if events != 1 {
		t.Errorf("list events = %d after duplicate MarkModified(true), want 1", events)
	}
	if !s.Modified {
		t.Error("session should be modified")
	}

	m.MarkModified(s.ID, false)
	m.MarkModified(s.ID, false)
	if events != 2 {
		t.Errorf("list events = %d, want 2", events)
	}
}

func TestRenameUpdatesPathAndTitle(t *testing.T) {
	m := NewManager()
	s := m.NewUntitled()

	m.Rename(s.ID, "docs/readme.md")
	if s.Path != "docs/readme.md" {
		t.Errorf("Path = %q", s.Path)
	}
	if s.Title != "readme.md" {
		t.Errorf("Title = %q, want basename", s.Title)
	}
}

func TestSessionsReturnsCopy(t *testing.T) {
	m := NewManager()
	m.Open("a.go", "", "")
	m.Open("b.go", "", "")

	list := m.Sessions()
	list[0] = nil
	if m.Sessions()[0] == nil {
		t.Error("mutating the returned slice must not affect the manager")
	}
}

func TestAnyModified(t *testing.T) {
	m := NewManager()
	a := m.Open("a.go", "", "")
	m.Open("b.go", "", "")

	if m.AnyModified() {
		t.Error("AnyModified = true, want false")
	}
	m.MarkModified(a.ID, true)
	if !m.AnyModified() {
		t.Error("AnyModified = false, want true")
	}
}

func TestMutatorsUnknownID(t *testing.T) {
	m := NewManager()
	// All no-ops; must not panic.
	m.UpdateContent(1, "x")
	m.UpdateCursor(1, 2, 3)
	m.UpdateScroll(1, 4)
	m.MarkModified(1, true)
	m.Rename(1, "x.go")
	if m.ByID(1) != nil || m.ByPath("x.go") != nil {
		t.Error("lookups on empty manager should return nil")
	}
}

// Scenario from the coordination contract: open a, open b, go back to a,
// close a; b remains as the only, active session.
func TestOpenSwitchCloseScenario(t *testing.T) {
	m := NewManager()
	a := m.Open("a.ts", "x", "typescript")
	b := m.Open("b.ts", "y", "typescript")

	if m.ActiveID() != b.ID {
		t.Fatalf("ActiveID = %d, want %d", m.ActiveID(), b.ID)
	}

	m.Previous(Snapshot{Content: "y"})
	if m.ActiveID() != a.ID {
		t.Fatalf("ActiveID = %d after previous, want %d", m.ActiveID(), a.ID)
	}

	got := m.Close(a.ID)
	if got == nil || got.ID != b.ID {
		t.Fatalf("Close(a) = %v, want b (%d)", got, b.ID)
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}
