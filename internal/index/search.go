package index

// SearchResult is a single file match.
type SearchResult struct {
	ID    int64
	Path  string
	Title string
	Rank  float64
}

// HeadingResult is a heading match inside an indexed file.
type HeadingResult struct {
	FileID int64
	Path   string
	Level  int
	Text   string
	Line   int
}

// Search performs a full-text search across indexed files.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.conn.Query(`
		SELECT f.id, f.path, f.title, rank
		FROM files_fts
		JOIN files f ON f.id = files_fts.rowid
		WHERE files_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.Path, &r.Title, &r.Rank); err != nil {
			_ = rows.Close()
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	return results, nil
}

// SearchFiles matches file paths and titles by substring (for the fuzzy
// file finder).
func (db *DB) SearchFiles(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 50
	}

	pattern := "%" + query + "%"
	rows, err := db.conn.Query(`
		SELECT id, path, title, 0 as rank
		FROM files
		WHERE path LIKE ? OR title LIKE ?
		ORDER BY path
		LIMIT ?
	`, pattern, pattern, limit)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.Path, &r.Title, &r.Rank); err != nil {
			_ = rows.Close()
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	return results, nil
}

// ListAll returns all indexed files, sorted by path.
func (db *DB) ListAll(limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 200
	}

	rows, err := db.conn.Query(`
		SELECT id, path, title, 0 as rank
		FROM files
		ORDER BY path
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.Path, &r.Title, &r.Rank); err != nil {
			_ = rows.Close()
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	return results, nil
}

// SearchHeadings matches headings across all indexed files.
func (db *DB) SearchHeadings(query string, limit int) ([]HeadingResult, error) {
	if limit <= 0 {
		limit = 50
	}

	pattern := "%" + query + "%"
	rows, err := db.conn.Query(`
		SELECT h.file_id, f.path, h.level, h.text, h.line
		FROM headings h
		JOIN files f ON f.id = h.file_id
		WHERE h.text LIKE ?
		ORDER BY f.path, h.line
		LIMIT ?
	`, pattern, limit)
	if err != nil {
		return nil, err
	}

	var results []HeadingResult
	for rows.Next() {
		var r HeadingResult
		if err := rows.Scan(&r.FileID, &r.Path, &r.Level, &r.Text, &r.Line); err != nil {
			_ = rows.Close()
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	return results, nil
}
