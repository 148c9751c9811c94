package index

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfassina/scribe/internal/lang"
	"github.com/pfassina/scribe/internal/markdown"
	"github.com/pfassina/scribe/internal/workspace"
)

// Indexer manages the workspace indexing pipeline. Every readable text file
// under the root is indexed; markdown files additionally contribute their
// heading structure.
type Indexer struct {
	db     *DB
	parser *markdown.Parser
	root   string
}

func NewIndexer(db *DB, root string) *Indexer {
	return &Indexer{
		db:     db,
		parser: markdown.NewParser(),
		root:   root,
	}
}

// IndexAll performs a full index of the workspace.
func (idx *Indexer) IndexAll() error {
	// Clear hashes so every file gets fully re-indexed.
	if _, err := idx.db.Conn().Exec("UPDATE files SET hash = ''"); err != nil {
		return fmt.Errorf("clear hashes: %w", err)
	}

	return filepath.Walk(idx.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}
		if info.IsDir() {
			return nil
		}
		if workspace.CheckSize(info.Size()) == workspace.SizeTooLarge {
			return nil
		}
		if !workspace.IsTextFile(path) {
			return nil
		}
		return idx.IndexFile(path)
	})
}

// IndexFile indexes a single file. Unchanged files (same content hash) are
// skipped.
func (idx *Indexer) IndexFile(absPath string) error {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", absPath, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("stat %s: %w", absPath, err)
	}

	relPath, err := filepath.Rel(idx.root, absPath)
	if err != nil {
		relPath = absPath
	}

	hash := fmt.Sprintf("%x", sha256.Sum256(content))
	existingHash, _ := idx.db.GetFileHash(relPath)
	if hash == existingHash {
		return nil
	}

	language := lang.Detect(relPath)
	title := titleFromPath(relPath)

	var headings []markdown.Heading
	if language == "markdown" {
		doc := idx.parser.Parse(content)
		if doc.Title != "" {
			title = doc.Title
		}
		headings = doc.Headings
	}

	fileID, err := idx.db.UpsertFile(relPath, title, language, hash, info.ModTime().Unix(), info.Size())
	if err != nil {
		return fmt.Errorf("upsert file: %w", err)
	}

	headingTexts := make([]string, len(headings))
	for i, h := range headings {
		headingTexts[i] = h.Text
	}
	if err := idx.db.UpdateFTS(fileID, title, string(content), strings.Join(headingTexts, " ")); err != nil {
		return fmt.Errorf("update FTS: %w", err)
	}

	if err := idx.db.ClearFileHeadings(fileID); err != nil {
		return fmt.Errorf("clear headings: %w", err)
	}
	for _, h := range headings {
		if err := idx.db.InsertHeading(fileID, h.Level, h.Text, h.Line); err != nil {
			return fmt.Errorf("insert heading %q: %w", h.Text, err)
		}
	}
	return nil
}

// RemoveFile drops a file from the index.
func (idx *Indexer) RemoveFile(absPath string) error {
	relPath, err := filepath.Rel(idx.root, absPath)
	if err != nil {
		relPath = absPath
	}
	return idx.db.DeleteFile(relPath)
}

// workspaceIndexable reports whether a path is a text file small enough to
// index.
func workspaceIndexable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if workspace.CheckSize(info.Size()) == workspace.SizeTooLarge {
		return false
	}
	return workspace.IsTextFile(path)
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return name
}
