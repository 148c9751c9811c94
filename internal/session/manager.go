package session

import (
	"fmt"
	"path/filepath"
)

// Session is one open document: its backing path (empty for untitled
// buffers), display title, and the editable state captured at the last sync
// point. Content is not live during continuous typing; it reflects the
// editing surface as of the last switch, save, or edit notification.
type Session struct {
	ID       int
	Path     string
	Title    string
	Modified bool
	Line     int
	Col      int
	Scroll   int
	Language string
	Content  string
}

// Snapshot is the surface state captured before navigating away from the
// active session. Navigation operations take it as a parameter so the
// sync-before-switch step is part of the signature rather than a calling
// convention callers have to remember.
type Snapshot struct {
	Content string
	Line    int
	Col     int

	// Scroll is the cursor line at capture time. The editing surface keeps
	// the cursor in view, so restoring the cursor restores an equivalent
	// viewport; no separate offset is tracked.
	Scroll int
}

// Manager owns the ordered list of open sessions and the active-session
// pointer. It is pure state management with no widget dependency.
//
// Change delivery is synchronous, single-subscriber: OnChange fires with the
// new active session whenever the active pointer actually moves, and
// OnListChange fires whenever the list or a listed attribute (title,
// modified flag) changes.
type Manager struct {
	sessions []*Session
	active   int // index into sessions, -1 when empty

	nextID    int
	untitledN int

	OnChange     func(*Session)
	OnListChange func()
}

// NewManager creates a Manager with no open sessions.
func NewManager() *Manager {
	return &Manager{active: -1, nextID: 1}
}

// Open opens a document. If a session with the same path already exists it
// is activated and returned; no duplicate is created and its content is left
// alone. Otherwise a new unmodified session is appended and activated.
func (m *Manager) Open(path, content, language string) *Session {
	if path != "" {
		for i, s := range m.sessions {
			if s.Path == path {
				m.activate(i)
				return s
			}
		}
	}

	s := &Session{
		ID:       m.nextID,
		Path:     path,
		Title:    filepath.Base(path),
		Language: language,
		Content:  content,
	}
	m.nextID++
	m.sessions = append(m.sessions, s)
	m.active = len(m.sessions) - 1

	m.notifyList()
	m.notifyChange()
	return s
}

// NewUntitled creates an empty session with no backing path. The first is
// titled "Untitled", the Nth "Untitled-N"; the counter never resets, even
// after those sessions are closed.
func (m *Manager) NewUntitled() *Session {
	m.untitledN++
	title := "Untitled"
	if m.untitledN > 1 {
		title = fmt.Sprintf("Untitled-%d", m.untitledN)
	}

	s := &Session{ID: m.nextID, Title: title}
	m.nextID++
	m.sessions = append(m.sessions, s)
	m.active = len(m.sessions) - 1

	m.notifyList()
	m.notifyChange()
	return s
}

// Close removes the session with the given id and returns the session that
// is active afterwards, or nil if the list is now empty. Closing the active
// session activates the one that slid into its slot, falling back to the new
// last session. Closing a non-active session leaves the active one untouched.
// Unknown ids are a no-op returning nil.
func (m *Manager) Close(id int) *Session {
	idx := m.indexOf(id)
	if idx < 0 {
		return nil
	}

	m.sessions = append(m.sessions[:idx], m.sessions[idx+1:]...)

	if len(m.sessions) == 0 {
		m.active = -1
		m.notifyList()
		return nil
	}

	switch {
	case idx < m.active:
		m.active--
	case idx == m.active:
		if m.active >= len(m.sessions) {
			m.active = len(m.sessions) - 1
		}
		m.notifyChange()
	}

	m.notifyList()
	return m.sessions[m.active]
}

// Switch captures snap into the currently active session, then activates the
// session with the given id. Returns nil if the id does not exist. Switching
// to the already-active session emits no change event.
func (m *Manager) Switch(id int, snap Snapshot) *Session {
	idx := m.indexOf(id)
	if idx < 0 {
		return nil
	}
	m.syncActive(snap)
	m.activate(idx)
	return m.sessions[idx]
}

// Next activates the session after the active one, wrapping at the end.
// With zero or one sessions it returns the current active session (possibly
// nil) unchanged and emits no event.
func (m *Manager) Next(snap Snapshot) *Session {
	return m.step(1, snap)
}

// Previous activates the session before the active one, wrapping at the
// start. Same degenerate-case behavior as Next.
func (m *Manager) Previous(snap Snapshot) *Session {
	return m.step(-1, snap)
}

func (m *Manager) step(dir int, snap Snapshot) *Session {
	if len(m.sessions) < 2 {
		return m.Active()
	}
	m.syncActive(snap)
	m.active = (m.active + dir + len(m.sessions)) % len(m.sessions)
	m.notifyChange()
	return m.sessions[m.active]
}

// UpdateContent stores content as the session's last-synced text.
func (m *Manager) UpdateContent(id int, content string) {
	if s := m.ByID(id); s != nil {
		s.Content = content
	}
}

// UpdateCursor stores the zero-based cursor position.
func (m *Manager) UpdateCursor(id, line, col int) {
	if s := m.ByID(id); s != nil {
		s.Line = line
		s.Col = col
	}
}

// UpdateScroll stores the scroll offset.
func (m *Manager) UpdateScroll(id, scroll int) {
	if s := m.ByID(id); s != nil {
		s.Scroll = scroll
	}
}

// MarkModified sets the modified flag. The list event fires only when the
// flag actually flips, so repeated reports of the same state cause no UI
// churn.
func (m *Manager) MarkModified(id int, modified bool) {
	s := m.ByID(id)
	if s == nil || s.Modified == modified {
		return
	}
	s.Modified = modified
	m.notifyList()
}

// Rename updates the session's backing path and its derived title together.
func (m *Manager) Rename(id int, path string) {
	s := m.ByID(id)
	if s == nil {
		return
	}
	s.Path = path
	s.Title = filepath.Base(path)
	m.notifyList()
}

// Active returns the active session, or nil when no sessions are open.
func (m *Manager) Active() *Session {
	if m.active < 0 || m.active >= len(m.sessions) {
		return nil
	}
	return m.sessions[m.active]
}

// ActiveID returns the active session's id, or 0 when no sessions are open.
func (m *Manager) ActiveID() int {
	if s := m.Active(); s != nil {
		return s.ID
	}
	return 0
}

// ByID returns the session with the given id, or nil.
func (m *Manager) ByID(id int) *Session {
	if idx := m.indexOf(id); idx >= 0 {
		return m.sessions[idx]
	}
	return nil
}

// ByPath returns the session backed by path, or nil.
func (m *Manager) ByPath(path string) *Session {
	if path == "" {
		return nil
	}
	for _, s := range m.sessions {
		if s.Path == path {
			return s
		}
	}
	return nil
}

// Sessions returns the open sessions in tab order. The returned slice is a
// copy; mutating it does not affect the manager.
func (m *Manager) Sessions() []*Session {
	out := make([]*Session, len(m.sessions))
	copy(out, m.sessions)
	return out
}

// AnyModified reports whether any open session has unsaved changes.
func (m *Manager) AnyModified() bool {
	for _, s := range m.sessions {
		if s.Modified {
			return true
		}
	}
	return false
}

// Count returns the number of open sessions.
func (m *Manager) Count() int {
	return len(m.sessions)
}

// syncActive writes snap into the currently active session, if any.
func (m *Manager) syncActive(snap Snapshot) {
	s := m.Active()
	if s == nil {
		return
	}
	s.Content = snap.Content
	s.Line = snap.Line
	s.Col = snap.Col
	s.Scroll = snap.Scroll
}

// activate moves the pointer to idx, emitting a change event only when it
// actually moves.
func (m *Manager) activate(idx int) {
	if idx == m.active {
		return
	}
	m.active = idx
	m.notifyChange()
}

func (m *Manager) indexOf(id int) int {
	for i, s := range m.sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) notifyChange() {
	if m.OnChange != nil {
		m.OnChange(m.Active())
	}
}

func (m *Manager) notifyList() {
	if m.OnListChange != nil {
		m.OnListChange()
	}
}
