package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// File represents a counted corpus file.
type File struct {
	FileID    int64
	Path      string
	SizeBytes int64
	ModTimeNS int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InsertFile inserts or refreshes a file record, returning the file_id.
// An existing path keeps its ID; size and mod time are updated to the
// observed values.
func (db *DB) InsertFile(path string, sizeBytes, modTimeNS int64) (int64, error) {
	// Check if file already exists
	var existingID int64
	err := db.QueryRow("SELECT file_id FROM files WHERE path = ?", path).Scan(&existingID)
	if err == nil {
		_, err = db.Exec(`
			UPDATE files
			SET size_bytes = ?, mod_time_ns = ?, updated_at = CURRENT_TIMESTAMP
			WHERE file_id = ?
		`, sizeBytes, modTimeNS, existingID)
		if err != nil {
			return 0, fmt.Errorf("failed to update file: %w", err)
		}
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing file: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO files (path, size_bytes, mod_time_ns)
		VALUES (?, ?, ?)
	`, path, sizeBytes, modTimeNS)
	if err != nil {
		return 0, fmt.Errorf("failed to insert file: %w", err)
	}

	fileID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get file ID: %w", err)
	}

	return fileID, nil
}

// GetFileByPath retrieves a file record by its path.
func (db *DB) GetFileByPath(path string) (*File, error) {
	var f File
	err := db.QueryRow(`
		SELECT file_id, path, size_bytes, mod_time_ns, created_at, updated_at
		FROM files
		WHERE path = ?
	`, path).Scan(&f.FileID, &f.Path, &f.SizeBytes, &f.ModTimeNS, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return &f, nil
}

// ListFiles returns all recorded files, most recently updated first.
func (db *DB) ListFiles() ([]File, error) {
	rows, err := db.Query(`
		SELECT file_id, path, size_bytes, mod_time_ns, created_at, updated_at
		FROM files
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	var files []File
	for rows.Next() {
		var f File
		if err := rows.Scan(&f.FileID, &f.Path, &f.SizeBytes, &f.ModTimeNS, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, f)
	}

	return files, nil
}
