// Package app wires the panels, the editing surface, and the session
// manager into the Bubble Tea program.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pfassina/scribe/internal/clipboard"
	"github.com/pfassina/scribe/internal/config"
	"github.com/pfassina/scribe/internal/editor"
	"github.com/pfassina/scribe/internal/index"
	"github.com/pfassina/scribe/internal/lang"
	"github.com/pfassina/scribe/internal/panel"
	"github.com/pfassina/scribe/internal/search"
	"github.com/pfassina/scribe/internal/session"
	"github.com/pfassina/scribe/internal/theme"
	"github.com/pfassina/scribe/internal/workspace"
)

type focusedPanel int

const (
	focusEditor focusedPanel = iota
	focusTree
	focusSearch
)

type promptAction struct {
	kind string // "save-as", "save-close", "close-unsaved", "create-file", "delete-file", "rename-file", "finder-create", "quit"
	path string // target file path for delete/rename, or finder query
	id   int    // session id for close actions
}

type App struct {
	cfg     config.Config
	program *tea.Program

	ws      *workspace.Workspace
	manager *session.Manager
	surface editor.Surface
	coord   *search.Coordinator
	clip    *clipboard.Buffer

	tree      panel.Tree
	tabs      panel.TabBar
	status    panel.Status
	finder    panel.Finder
	prompt    panel.Prompt
	searchBar panel.SearchBar

	db      *index.DB
	indexer *index.Indexer
	watcher *index.Watcher
	store   *config.StateStore

	theme     theme.Theme
	themeName string
	width     int
	height    int
	focused   focusedPanel
	showTree  bool

	// pendingPrompt tracks which action the overlay prompt is serving.
	pendingPrompt promptAction
}

func New(cfg config.Config) *App {
	ws := workspace.New(cfg.WorkspacePath)
	store := config.NewStateStore(cfg.WorkspacePath)
	state, _ := store.Load()
	if cfg.Theme != "" {
		state.Theme = cfg.Theme
	}

	a := &App{
		cfg:       cfg,
		ws:        ws,
		manager:   session.NewManager(),
		coord:     search.NewCoordinator(),
		clip:      clipboard.New(cfg.SystemClip),
		store:     store,
		theme:     theme.ByName(state.Theme),
		themeName: state.Theme,
		focused:   focusEditor,
		showTree:  state.ShowTree,
	}
	if state.TreeWidth > 0 {
		a.cfg.TreeWidth = state.TreeWidth
	}

	a.surface = editor.New(&a.theme)
	a.tree = panel.NewTree(ws, &a.theme)
	a.tree.Refresh()
	a.tabs = panel.NewTabBar(&a.theme)
	a.status = panel.NewStatus(cfg.WorkspacePath, &a.theme)
	a.finder = panel.NewFinder(&a.theme)
	a.prompt = panel.NewPrompt(&a.theme)
	a.searchBar = panel.NewSearchBar(&a.theme)

	a.manager.OnChange = a.activeChanged
	a.manager.OnListChange = a.refreshTabs

	// Initialize index
	dbPath := filepath.Join(cfg.WorkspacePath, ".scribe", "index.db")
	ensureDir(filepath.Dir(dbPath))
	db, err := index.Open(dbPath)
	if err != nil {
		// Fail loud (but keep app usable): without an index the finder and
		// workspace search won't work.
		a.status.SetError(fmt.Sprintf("index open failed: %v", err))
	} else {
		a.db = db
		a.indexer = index.NewIndexer(db, cfg.WorkspacePath)
		a.finder.SetSearchFunc(a.searchFiles)
	}

	return a
}

func (a *App) SetProgram(p *tea.Program) {
	a.program = p
}

func (a *App) Init() tea.Cmd {
	if a.indexer != nil {
		return a.initIndex()
	}
	return nil
}

// activeChanged is the manager's change callback: the surface swaps to the
// new active session and dependent panels refresh.
func (a *App) activeChanged(s *session.Session) {
	if s == nil {
		a.surface.NewDocument()
		a.status.SetFile("")
		a.status.SetLanguage("")
		a.status.SetCursor(0, 0)
		a.refreshSearch()
		return
	}
	a.surface.Swap(s)
	a.status.ClearError()
	a.status.SetFile(a.sessionLabel(s))
	a.status.SetLanguage(s.Language)
	a.status.SetCursor(s.Line, s.Col)
	a.refreshSearch()
}

func (a *App) refreshTabs() {
	a.tabs.SetTabs(a.manager.Sessions(), a.manager.ActiveID())
}

func (a *App) sessionLabel(s *session.Session) string {
	if s.Path != "" {
		return s.Path
	}
	return s.Title
}

// syncSurface writes the live surface state back into the active session.
// Called before any operation that navigates away from it.
func (a *App) syncSurface() {
	act := a.manager.Active()
	if act == nil {
		return
	}
	snap := a.surface.Snapshot()
	a.manager.UpdateContent(act.ID, snap.Content)
	a.manager.UpdateCursor(act.ID, snap.Line, snap.Col)
	a.manager.UpdateScroll(act.ID, snap.Scroll)
}

// openPath opens a workspace-relative file in a new or existing tab.
func (a *App) openPath(relPath string) {
	if existing := a.manager.ByPath(relPath); existing != nil {
		a.manager.Switch(existing.ID, a.surface.Snapshot())
		a.setFocus(focusEditor)
		return
	}

	if !a.ws.Exists(relPath) {
		a.status.SetError(fmt.Sprintf("open %s: no such file", relPath))
		return
	}
	size := a.ws.CheckSize(relPath)
	if size == workspace.SizeTooLarge {
		a.status.SetError(fmt.Sprintf("%s is too large to open", relPath))
		return
	}
	if !a.ws.IsTextFile(relPath) {
		a.status.SetError(fmt.Sprintf("%s is not a text file", relPath))
		return
	}

	content, err := a.ws.ReadFile(relPath)
	if err != nil {
		a.status.SetError(err.Error())
		return
	}

	a.syncSurface()
	a.manager.Open(relPath, content, lang.Detect(relPath))
	if size == workspace.SizeWarn {
		a.status.SetWarning(fmt.Sprintf("%s is large; editing may be slow", relPath))
	}
	a.setFocus(focusEditor)
}

// newUntitled opens an empty untitled tab.
func (a *App) newUntitled() {
	a.syncSurface()
	a.manager.NewUntitled()
	a.setFocus(focusEditor)
}

// saveActive saves the active session, prompting for a path when untitled.
func (a *App) saveActive(closeAfter bool) tea.Cmd {
	act := a.manager.Active()
	if act == nil {
		return nil
	}
	if act.Path == "" {
		kind := "save-as"
		if closeAfter {
			kind = "save-close"
		}
		a.pendingPrompt = promptAction{kind: kind, id: act.ID}
		a.prompt.Show("Save as", "notes.txt", "")
		return nil
	}
	return a.writeActive(act, closeAfter)
}

// writeActive writes the live text to the session's path. A failed write
// leaves the modified flag untouched.
func (a *App) writeActive(act *session.Session, closeAfter bool) tea.Cmd {
	content := a.surface.Value()
	if err := a.ws.WriteFile(act.Path, content); err != nil {
		a.status.SetError(err.Error())
		return nil
	}
	a.surface.MarkSaved()
	a.manager.UpdateContent(act.ID, content)
	a.manager.MarkModified(act.ID, false)
	a.status.ClearError()

	cmd := a.indexFile(a.ws.Abs(act.Path), act.Path)
	if closeAfter {
		a.closeSession(act.ID)
	}
	return cmd
}

// requestClose closes the session, confirming first when it has unsaved
// changes.
func (a *App) requestClose(id int) {
	s := a.manager.ByID(id)
	if s == nil {
		return
	}
	modified := s.Modified
	if s.ID == a.manager.ActiveID() {
		modified = a.surface.Modified()
	}
	if modified {
		a.pendingPrompt = promptAction{kind: "close-unsaved", id: id}
		a.prompt.ShowConfirm(fmt.Sprintf("Close %s without saving?", s.Title))
		return
	}
	a.closeSession(id)
}

func (a *App) closeSession(id int) {
	a.manager.Close(id)
	if a.manager.Count() == 0 {
		a.activeChanged(nil)
	}
}

// setFocus routes keyboard input to one panel at a time.
func (a *App) setFocus(f focusedPanel) {
	a.focused = f
	a.tree.SetFocused(f == focusTree)
	if f == focusEditor {
		a.surface.Focus()
	} else {
		a.surface.Blur()
	}
}

// refreshSearch recomputes matches against the live text and updates the
// indicators. No-op with the overlay closed.
func (a *App) refreshSearch() {
	if a.coord.Mode() == search.ModeClosed {
		a.coord.Clear()
		a.status.SetMatches(0, 0)
		a.searchBar.SetMatches(0, 0)
		return
	}
	a.coord.Find(a.surface.Value(), a.searchBar.Term())
	a.status.SetMatches(a.coord.CurrentIndex(), a.coord.Total())
	a.searchBar.SetMatches(a.coord.CurrentIndex(), a.coord.Total())
}

// gotoCurrentMatch moves the editor cursor to the match under the search
// cursor.
func (a *App) gotoCurrentMatch() {
	m, ok := a.coord.Current()
	if !ok {
		return
	}
	line, col := editor.PositionAt(a.surface.Value(), m.Start)
	a.surface.MoveCursor(line, col)
	a.status.SetCursor(a.surface.Line(), a.surface.Col())
	a.status.SetMatches(a.coord.CurrentIndex(), a.coord.Total())
	a.searchBar.SetMatches(a.coord.CurrentIndex(), a.coord.Total())
}

// replaceCurrent replaces the match under the search cursor and recomputes.
func (a *App) replaceCurrent(repl string) {
	m, ok := a.coord.Current()
	if !ok {
		return
	}
	a.surface.ReplaceRange(m, repl)
	a.afterSurfaceEdit()
	a.refreshSearch()
	a.gotoCurrentMatch()
}

// replaceAll rewrites every match in one pass.
func (a *App) replaceAll(repl string) {
	text, count := search.ReplaceAll(a.surface.Value(), a.searchBar.Term(), repl)
	if count == 0 {
		return
	}
	a.surface.SetText(text)
	a.afterSurfaceEdit()
	a.refreshSearch()
	a.status.SetWarning(fmt.Sprintf("replaced %d occurrences", count))
}

// afterSurfaceEdit propagates a programmatic edit into the session state.
func (a *App) afterSurfaceEdit() {
	act := a.manager.Active()
	if act == nil {
		return
	}
	a.manager.UpdateContent(act.ID, a.surface.Value())
	a.manager.MarkModified(act.ID, a.surface.Modified())
}

func (a *App) toggleSearch(mode search.Mode) {
	var m search.Mode
	if mode == search.ModeFind {
		m = a.coord.ToggleFind()
	} else {
		m = a.coord.ToggleReplace()
	}
	a.searchBar.SetMode(m)
	if m == search.ModeClosed {
		a.coord.CloseOverlay()
		a.status.SetMatches(0, 0)
		a.setFocus(focusEditor)
	} else {
		a.setFocus(focusSearch)
		a.refreshSearch()
	}
	a.updateLayout()
}

func (a *App) closeSearch() {
	a.coord.CloseOverlay()
	a.searchBar.SetMode(search.ModeClosed)
	a.status.SetMatches(0, 0)
	a.setFocus(focusEditor)
	a.updateLayout()
}

func (a *App) updateLayout() {
	if a.width == 0 || a.height == 0 {
		return
	}
	layout := ComputeLayout(a.width, a.height, a.showTree, a.cfg.TreeWidth, a.searchBar.Height())
	a.tree.SetSize(layout.TreeWidth, layout.Height)
	a.tabs.SetWidth(layout.EditorWidth)
	a.searchBar.SetWidth(layout.EditorWidth)
	a.surface.SetSize(layout.EditorWidth, layout.EditorHeight)
	a.status.SetWidth(a.width)
	a.finder.SetSize(a.width, a.height)

	promptW := layout.EditorWidth * 8 / 10
	if promptW > 100 {
		promptW = 100
	}
	if promptW < 40 {
		promptW = 40
	}
	if promptW > layout.EditorWidth-2 {
		promptW = layout.EditorWidth - 2
	}
	a.prompt.SetSize(promptW, layout.Height)
}

// handleClick routes a left click. Only the tab bar reacts; the click column
// is translated into the editor area before the hit test.
func (a *App) handleClick(x, y int) {
	if y != 0 || a.manager.Count() == 0 {
		return
	}
	if a.showTree {
		layout := ComputeLayout(a.width, a.height, a.showTree, a.cfg.TreeWidth, a.searchBar.Height())
		x -= layout.TreeWidth
	}
	if x < 0 {
		return
	}
	if id := a.tabs.TabAt(x); id != 0 && id != a.manager.ActiveID() {
		a.manager.Switch(id, a.surface.Snapshot())
		a.setFocus(focusEditor)
	}
}

func (a *App) newWatcher() (*index.Watcher, error) {
	return index.NewWatcher(a.indexer, a.cfg.WorkspacePath, func() {
		if a.program != nil {
			a.program.Send(indexChangedMsg{})
		}
	}, func(err error) {
		if a.program != nil {
			a.program.Send(fatalErrorMsg{err: err})
		}
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if a.surface.Modified() || a.manager.AnyModified() {
				a.pendingPrompt = promptAction{kind: "quit"}
				a.prompt.ShowConfirm("Unsaved changes. Quit anyway?")
				return a, nil
			}
			a.Close()
			return a, tea.Quit
		}

		// Overlay prompt takes priority when visible
		if a.prompt.Visible() {
			var cmd tea.Cmd
			a.prompt, cmd = a.prompt.Update(msg)
			return a, cmd
		}

		// Finder takes priority when visible
		if a.finder.Visible() {
			var cmd tea.Cmd
			a.finder, cmd = a.finder.Update(msg)
			return a, cmd
		}

		switch msg.String() {
		case "ctrl+s":
			return a, a.saveActive(false)
		case "ctrl+n":
			a.newUntitled()
			return a, nil
		case "ctrl+w":
			if id := a.manager.ActiveID(); id != 0 {
				a.requestClose(id)
			}
			return a, nil
		case "alt+right":
			a.manager.Next(a.surface.Snapshot())
			return a, nil
		case "alt+left":
			a.manager.Previous(a.surface.Snapshot())
			return a, nil
		case "ctrl+p":
			a.finder.Show()
			return a, nil
		case "ctrl+f":
			a.toggleSearch(search.ModeFind)
			return a, nil
		case "ctrl+r":
			a.toggleSearch(search.ModeReplace)
			return a, nil
		case "ctrl+k":
			// Cut the current line, nano style.
			if a.focused == focusEditor && a.manager.Count() > 0 {
				if line := a.surface.DeleteCurrentLine(); line != "" {
					a.clip.Write(line + "\n")
				}
				a.afterSurfaceEdit()
				a.refreshSearch()
			}
			return a, nil
		case "ctrl+u":
			// Paste the clipboard at the cursor.
			if a.focused == focusEditor && a.manager.Count() > 0 {
				if text := a.clip.Read(); text != "" {
					a.surface.InsertText(text)
					a.afterSurfaceEdit()
					a.refreshSearch()
				}
			}
			return a, nil
		case "ctrl+b":
			a.showTree = !a.showTree
			if !a.showTree && a.focused == focusTree {
				a.setFocus(focusEditor)
			}
			a.updateLayout()
			return a, nil
		case "ctrl+h":
			if a.showTree {
				a.setFocus(focusTree)
			}
			return a, nil
		case "ctrl+l":
			a.setFocus(focusEditor)
			return a, nil
		}

		// Escape returns from the tree to the editor (unless tree help is
		// showing, which any key dismisses).
		if msg.String() == "esc" && a.focused == focusTree && !a.tree.ShowingHelp() {
			a.setFocus(focusEditor)
			return a, nil
		}

	case tea.WindowSizeMsg:
		// Some terminals send transient 0x0 sizes during live resizes;
		// ignore them.
		if msg.Width <= 0 || msg.Height <= 0 {
			return a, nil
		}
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, tea.ClearScreen

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			a.handleClick(msg.X, msg.Y)
		}
		return a, nil

	case fatalErrorMsg:
		return a, fatalCmd(msg.err)

	case editor.ContentChangedMsg:
		if act := a.manager.Active(); act != nil {
			a.manager.MarkModified(act.ID, msg.Modified)
			a.manager.UpdateContent(act.ID, a.surface.Value())
		}
		a.refreshSearch()
		return a, nil

	case editor.CursorMovedMsg:
		a.status.SetCursor(msg.Line, msg.Col)
		if act := a.manager.Active(); act != nil {
			a.manager.UpdateCursor(act.ID, msg.Line, msg.Col)
		}
		return a, nil

	case panel.FileSelectedMsg:
		a.openPath(msg.Path)
		return a, nil

	case panel.FinderResultMsg:
		a.openPath(msg.Path)
		return a, nil

	case panel.FinderCreateRequestMsg:
		// Keep finder visible so cancel returns the user to the same query.
		a.pendingPrompt = promptAction{kind: "finder-create", path: msg.Name}
		a.prompt.ShowConfirm(fmt.Sprintf("Create file %q?", msg.Name))
		return a, nil

	case panel.FinderClosedMsg:
		a.setFocus(focusEditor)
		return a, nil

	case panel.TreeNewFileMsg:
		a.pendingPrompt = promptAction{kind: "create-file"}
		a.prompt.Show("New file", "notes.txt or docs/", "")
		return a, nil

	case panel.TreeDeleteFileMsg:
		a.pendingPrompt = promptAction{kind: "delete-file", path: msg.Path}
		a.prompt.ShowConfirm("Delete " + msg.Name + "?")
		return a, nil

	case panel.TreeRenameFileMsg:
		a.pendingPrompt = promptAction{kind: "rename-file", path: msg.Path}
		a.prompt.Show("Rename", msg.Name, msg.Name)
		return a, nil

	case panel.SearchChangedMsg:
		a.refreshSearch()
		a.gotoCurrentMatch()
		return a, nil

	case panel.SearchNextMsg:
		a.coord.Next()
		a.gotoCurrentMatch()
		return a, nil

	case panel.SearchPrevMsg:
		a.coord.Previous()
		a.gotoCurrentMatch()
		return a, nil

	case panel.ReplaceOneMsg:
		a.replaceCurrent(msg.Replacement)
		return a, nil

	case panel.ReplaceAllMsg:
		a.replaceAll(msg.Replacement)
		return a, nil

	case panel.SearchClosedMsg:
		a.closeSearch()
		return a, nil

	case panel.PromptResultMsg:
		return a, a.handlePromptResult(msg.Value)

	case panel.PromptConfirmedMsg:
		return a, a.handlePromptConfirmed()

	case panel.PromptCancelledMsg:
		a.pendingPrompt = promptAction{}
		return a, nil

	case indexInitDoneMsg:
		if msg.err != nil {
			// Fail fast and loud: indexing is a core feature.
			return a, fatalCmd(fmt.Errorf("indexing failed: %w", msg.err))
		}
		return a, a.startWatcher()

	case indexChangedMsg:
		a.tree.Refresh()
		return a, nil

	case fileIndexedMsg:
		if msg.err != nil {
			return a, fatalCmd(fmt.Errorf("index file: %w", msg.err))
		}
		return a, nil
	}

	// Route key events based on focus
	var cmd tea.Cmd
	switch msg.(type) {
	case tea.KeyMsg:
		switch a.focused {
		case focusTree:
			a.tree, cmd = a.tree.Update(msg)
			return a, cmd
		case focusSearch:
			a.searchBar, cmd = a.searchBar.Update(msg)
			return a, cmd
		default:
			a.surface, cmd = a.surface.Update(msg)
			return a, cmd
		}
	default:
		a.surface, cmd = a.surface.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	layout := ComputeLayout(a.width, a.height, a.showTree, a.cfg.TreeWidth, a.searchBar.Height())

	var editorArea string
	if a.manager.Count() == 0 {
		editorArea = a.welcomeView(layout)
	} else {
		parts := []string{a.tabs.View()}
		if a.searchBar.Visible() {
			parts = append(parts, a.searchBar.View())
		}
		parts = append(parts, a.surface.View())
		editorArea = strings.Join(parts, "\n")
	}

	var main string
	if !a.showTree {
		main = lipgloss.NewStyle().
			Width(layout.EditorWidth).
			Height(layout.Height).
			Render(editorArea)
	} else {
		tw := layout.TreeWidth - 1
		if tw < 0 {
			tw = 0
		}
		treeStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, true, false, false).
			BorderForeground(a.theme.Border).
			Width(tw).
			Height(layout.Height)
		editorStyle := lipgloss.NewStyle().
			Width(layout.EditorWidth).
			Height(layout.Height)

		main = lipgloss.JoinHorizontal(lipgloss.Top,
			treeStyle.Render(a.tree.View()),
			editorStyle.Render(editorArea),
		)
	}

	result := main + "\n" + a.status.View()

	if a.finder.Visible() {
		if v := a.finder.View(); v != "" {
			result = overlayCenter(result, v, a.width, a.height)
		}
	}
	if a.prompt.Visible() {
		if v := a.prompt.View(); v != "" {
			result = overlayCenter(result, v, a.width, a.height)
		}
	}

	return result
}

// welcomeView renders the placeholder shown when no tabs are open.
func (a *App) welcomeView(layout Layout) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(a.theme.Accent)
	dim := lipgloss.NewStyle().Foreground(a.theme.Dim)

	lines := []string{
		title.Render("scribe"),
		"",
		dim.Render("ctrl+p  open file"),
		dim.Render("ctrl+n  new file"),
		dim.Render("ctrl+b  toggle explorer"),
		dim.Render("ctrl+c  quit"),
	}
	box := strings.Join(lines, "\n")
	base := strings.Repeat("\n", layout.Height-1)
	return overlayCenter(base, box, layout.EditorWidth, layout.Height)
}

func (a *App) Close() {
	if a.store != nil {
		state := config.UIState{
			ShowTree:  a.showTree,
			TreeWidth: a.cfg.TreeWidth,
			Theme:     a.themeName,
		}
		if err := a.store.Save(state); err != nil {
			fmt.Fprintln(os.Stderr, "save ui state:", err)
		}
	}

	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			fmt.Fprintln(os.Stderr, "stop watcher:", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close db:", err)
		}
	}
}

// handlePromptConfirmed handles a "yes" on a confirmation prompt.
func (a *App) handlePromptConfirmed() tea.Cmd {
	action := a.pendingPrompt
	a.pendingPrompt = promptAction{}

	switch action.kind {
	case "quit":
		a.Close()
		return tea.Quit
	case "close-unsaved":
		a.closeSession(action.id)
	case "delete-file":
		if s := a.manager.ByPath(action.path); s != nil {
			a.closeSession(s.ID)
		}
		if err := a.ws.Delete(action.path); err != nil {
			a.status.SetError(err.Error())
			return nil
		}
		a.tree.Refresh()
		if a.indexer != nil {
			return func() tea.Msg {
				return fileIndexedMsg{err: a.indexer.RemoveFile(a.ws.Abs(action.path))}
			}
		}
	case "finder-create":
		a.finder.Hide()
		a.createFile(action.path)
		a.setFocus(focusEditor)
	}
	return nil
}

// handlePromptResult handles a confirmed value from a text prompt. The
// prompt stays open (with an error) when validation fails.
func (a *App) handlePromptResult(value string) tea.Cmd {
	action := a.pendingPrompt
	if action.kind == "" {
		return nil
	}

	switch action.kind {
	case "save-as", "save-close":
		if a.ws.Exists(value) {
			a.prompt.SetError(fmt.Sprintf("%s already exists", value))
			return nil
		}
		act := a.manager.ByID(action.id)
		if act == nil {
			a.pendingPrompt = promptAction{}
			return nil
		}
		a.manager.Rename(act.ID, value)
		language := lang.Detect(value)
		act.Language = language
		a.surface.SetLanguage(language)
		a.status.SetFile(value)
		a.status.SetLanguage(language)
		a.pendingPrompt = promptAction{}
		cmd := a.writeActive(act, action.kind == "save-close")
		a.tree.Refresh()
		return cmd

	case "create-file":
		// A trailing slash creates a directory instead of a file.
		if dir := strings.TrimSuffix(value, "/"); dir != value {
			if dir == "" {
				a.prompt.SetError("directory name is empty")
				return nil
			}
			if err := a.ws.CreateDir(dir); err != nil {
				a.prompt.SetError(err.Error())
				return nil
			}
			a.pendingPrompt = promptAction{}
			a.tree.Refresh()
			return nil
		}
		if err := a.ws.CreateFile(value, ""); err != nil {
			a.prompt.SetError(err.Error())
			return nil
		}
		a.pendingPrompt = promptAction{}
		a.tree.Refresh()
		a.openPath(value)
		return nil

	case "rename-file":
		if err := a.ws.Rename(action.path, value); err != nil {
			a.prompt.SetError(err.Error())
			return nil
		}
		a.pendingPrompt = promptAction{}
		if s := a.manager.ByPath(action.path); s != nil {
			a.manager.Rename(s.ID, value)
			language := lang.Detect(value)
			s.Language = language
			if s.ID == a.manager.ActiveID() {
				a.surface.SetLanguage(language)
				a.status.SetFile(value)
				a.status.SetLanguage(language)
			}
		}
		a.tree.Refresh()
		if a.indexer != nil {
			oldAbs := a.ws.Abs(action.path)
			return func() tea.Msg {
				if err := a.indexer.RemoveFile(oldAbs); err != nil {
					return fileIndexedMsg{err: err}
				}
				return fileIndexedMsg{relPath: value, err: a.indexer.IndexFile(a.ws.Abs(value))}
			}
		}
		return nil
	}

	a.pendingPrompt = promptAction{}
	return nil
}

// createFile creates and opens a new file from a finder query.
func (a *App) createFile(name string) {
	if err := a.ws.CreateFile(name, ""); err != nil {
		a.status.SetError(err.Error())
		return
	}
	a.tree.Refresh()
	a.openPath(name)
}

func ensureDir(path string) {
	if err := os.MkdirAll(path, 0755); err != nil {
		// Called during startup; there is no Bubble Tea program to report to
		// yet. Crash loudly rather than continuing in a corrupted state.
		panic(err)
	}
}

// overlayCenter draws overlay centered on top of base without breaking ANSI
// sequences.
func overlayCenter(base, overlay string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		if w := lipgloss.Width(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	startRow := (height - len(overlayLines)) / 2
	startCol := (width - overlayWidth) / 2
	if startRow < 0 {
		startRow = 0
	}
	if startCol < 0 {
		startCol = 0
	}

	padToCol := func(s string, col int) string {
		// Pad with spaces based on *visible* width (handles ANSI strings
		// safely).
		for lipgloss.Width(s) < col {
			s += " "
		}
		return s
	}

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(baseLines) {
			break
		}

		baseLine := padToCol(baseLines[row], startCol)

		// Keep the left part of the base line, replace the middle with the
		// overlay, and keep the right tail of the base line.
		left := ansi.Cut(baseLine, 0, startCol)
		right := ansi.Cut(baseLine, startCol+overlayWidth, width)

		line := left + overlayLine + right
		baseLines[row] = ansi.Truncate(line, width, "")
	}

	return strings.Join(baseLines, "\n")
}
