package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile returns the content of a workspace-relative file.
func (w *Workspace) ReadFile(relPath string) (string, error) {
	data, err := os.ReadFile(w.Abs(relPath))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", relPath, err)
	}
	return string(data), nil
}

// WriteFile overwrites a workspace-relative file, creating parent
// directories as needed.
func (w *Workspace) WriteFile(relPath, content string) error {
	absPath := w.Abs(relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}

// CreateFile creates a new file with the given content. It refuses to
// overwrite an existing file.
func (w *Workspace) CreateFile(relPath, content string) error {
	absPath := w.Abs(relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if _, err := os.Stat(absPath); err == nil {
		return fmt.Errorf("%s already exists", relPath)
	}
	if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("create %s: %w", relPath, err)
	}
	return nil
}

// CreateDir creates a directory inside the workspace.
func (w *Workspace) CreateDir(relPath string) error {
	return os.MkdirAll(w.Abs(relPath), 0755)
}

// Delete removes a file from the workspace.
func (w *Workspace) Delete(relPath string) error {
	return os.Remove(w.Abs(relPath))
}

// Rename moves a file within the workspace. It refuses to overwrite an
// existing target.
func (w *Workspace) Rename(oldRel, newRel string) error {
	oldAbs := w.Abs(oldRel)
	newAbs := w.Abs(newRel)

	if err := os.MkdirAll(filepath.Dir(newAbs), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if _, err := os.Stat(newAbs); err == nil {
		return fmt.Errorf("%s already exists", newRel)
	}
	return os.Rename(oldAbs, newAbs)
}

// Exists reports whether a workspace-relative path exists.
func (w *Workspace) Exists(relPath string) bool {
	_, err := os.Stat(w.Abs(relPath))
	return err == nil
}
