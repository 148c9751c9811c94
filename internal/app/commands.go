package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pfassina/scribe/internal/panel"
)

// initIndex runs the initial indexing pass in a goroutine.
func (a *App) initIndex() tea.Cmd {
	return func() tea.Msg {
		if a.indexer == nil {
			return indexInitDoneMsg{}
		}
		return indexInitDoneMsg{err: a.indexer.IndexAll()}
	}
}

// indexFile re-indexes a single file after a save.
func (a *App) indexFile(absPath, relPath string) tea.Cmd {
	return func() tea.Msg {
		if a.indexer == nil {
			return nil
		}
		return fileIndexedMsg{relPath: relPath, err: a.indexer.IndexFile(absPath)}
	}
}

// searchFiles returns finder items for a query.
func (a *App) searchFiles(query string) []panel.FinderItem {
	if a.db == nil {
		return nil
	}

	if query == "" {
		results, err := a.db.ListAll(50)
		if err != nil {
			return nil
		}
		items := make([]panel.FinderItem, len(results))
		for i, r := range results {
			items[i] = panel.FinderItem{Title: r.Path, Extra: r.Title, Path: r.Path}
		}
		return items
	}

	// Substring match on paths first; fall back to full-text search so a
	// query like "flush cache" still finds the file that mentions it.
	results, err := a.db.SearchFiles(query, 50)
	if err != nil || len(results) == 0 {
		results, err = a.db.Search(query, 50)
		if err != nil {
			return nil
		}
	}

	items := make([]panel.FinderItem, len(results))
	for i, r := range results {
		items[i] = panel.FinderItem{Title: r.Path, Extra: r.Title, Path: r.Path}
	}
	return items
}

// startWatcher spins up the filesystem watcher once initial indexing is done.
func (a *App) startWatcher() tea.Cmd {
	if a.indexer == nil {
		return nil
	}
	w, err := a.newWatcher()
	if err != nil {
		return fatalCmd(fmt.Errorf("watcher init failed: %w", err))
	}
	a.watcher = w
	go w.Start()
	return nil
}
