// Package index maintains the SQLite workspace index backing file search
// and workspace-wide text search.
package index

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS files (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL DEFAULT '',
    language TEXT NOT NULL DEFAULT '',
    mod_time INTEGER NOT NULL,
    size INTEGER NOT NULL DEFAULT 0,
    hash TEXT NOT NULL DEFAULT ''
);

CREATE VIRTUAL TABLE IF NOT EXISTS files_fts USING fts5(
    title, content, headings,
    content=files, content_rowid=id,
    tokenize='porter unicode61 remove_diacritics 2'
);

CREATE TABLE IF NOT EXISTS headings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    file_id INTEGER NOT NULL REFERENCES files(id) ON DELETE CASCADE,
    level INTEGER NOT NULL,
    text TEXT NOT NULL,
    line INTEGER NOT NULL
);
`

// DB wraps the SQLite database connection.
type DB struct {
	conn *sql.DB
}

// Open opens or creates the database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("init schema: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// OpenMemory opens an in-memory database (for testing).
func OpenMemory() (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(on)")
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(schema); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("init schema: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the underlying sql.DB for advanced queries.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// UpsertFile inserts or updates a file record and returns its ID.
func (db *DB) UpsertFile(path, title, language, hash string, modTime, size int64) (int64, error) {
	_, err := db.conn.Exec(`
		INSERT INTO files (path, title, language, mod_time, size, hash)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			title = excluded.title,
			language = excluded.language,
			mod_time = excluded.mod_time,
			size = excluded.size,
			hash = excluded.hash
	`, path, title, language, modTime, size, hash)
	if err != nil {
		return 0, err
	}

	var id int64
	err = db.conn.QueryRow("SELECT id FROM files WHERE path = ?", path).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateFTS replaces the FTS entry for a file.
func (db *DB) UpdateFTS(fileID int64, title, content, headings string) error {
	// Drop the old FTS row first; for new files there is nothing to drop.
	_, _ = db.conn.Exec("INSERT INTO files_fts(files_fts, rowid, title, content, headings) VALUES('delete', ?, '', '', '')", fileID)

	_, err := db.conn.Exec("INSERT INTO files_fts(rowid, title, content, headings) VALUES(?, ?, ?, ?)",
		fileID, title, content, headings)
	return err
}

// InsertHeading adds a heading record.
func (db *DB) InsertHeading(fileID int64, level int, text string, line int) error {
	_, err := db.conn.Exec("INSERT INTO headings (file_id, level, text, line) VALUES (?, ?, ?, ?)",
		fileID, level, text, line)
	return err
}

// ClearFileHeadings removes all headings for a file.
func (db *DB) ClearFileHeadings(fileID int64) error {
	_, err := db.conn.Exec("DELETE FROM headings WHERE file_id = ?", fileID)
	return err
}

// GetFileHash returns the stored content hash for a path, or "" when the
// path is not indexed.
func (db *DB) GetFileHash(path string) (string, error) {
	var hash string
	err := db.conn.QueryRow("SELECT hash FROM files WHERE path = ?", path).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return hash, err
}

// DeleteFile removes a file and its related data from the index.
func (db *DB) DeleteFile(path string) error {
	var id int64
	err := db.conn.QueryRow("SELECT id FROM files WHERE path = ?", path).Scan(&id)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	_, _ = db.conn.Exec("INSERT INTO files_fts(files_fts, rowid, title, content, headings) VALUES('delete', ?, '', '', '')", id)
	_, err = db.conn.Exec("DELETE FROM files WHERE id = ?", id)
	return err
}
