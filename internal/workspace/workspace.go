package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry represents a file or directory in the workspace.
type Entry struct {
	Name  string
	Path  string // relative to the workspace root
	IsDir bool
	Depth int
}

// Workspace is the directory tree the editor operates on. All relative
// paths in the package are resolved against Root.
type Workspace struct {
	Root string
}

func New(root string) *Workspace {
	return &Workspace{Root: root}
}

// Abs resolves a workspace-relative path to an absolute one.
func (w *Workspace) Abs(relPath string) string {
	return filepath.Join(w.Root, relPath)
}

// Rel converts an absolute path back to a workspace-relative one. Paths
// outside the root are returned unchanged.
func (w *Workspace) Rel(absPath string) string {
	rel, err := filepath.Rel(w.Root, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return absPath
	}
	return rel
}

// ListEntries returns a flat list of all files and directories under the
// root, directories first, then alphabetically by path. Hidden entries are
// skipped.
func (w *Workspace) ListEntries() ([]Entry, error) {
	var entries []Entry

	err := filepath.Walk(w.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}

		rel, _ := filepath.Rel(w.Root, path)
		if rel == "." {
			return nil
		}

		name := filepath.Base(path)
		if strings.HasPrefix(name, ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		entries = append(entries, Entry{
			Name:  name,
			Path:  rel,
			IsDir: info.IsDir(),
			Depth: strings.Count(rel, string(filepath.Separator)),
		})
		return nil
	})

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Path < entries[j].Path
	})

	return entries, err
}
