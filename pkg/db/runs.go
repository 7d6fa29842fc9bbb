package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sarkissian001/perf-counter/pkg/freq"
)

// Run statuses
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Run represents a count execution
type Run struct {
	RunID          int64
	FilePath       string
	CreatedAt      time.Time
	Strategy       string
	ChunkSize      int64
	ChunkCount     int
	Workers        int
	FileSizeBytes  int64
	FileModTimeNS  int64
	Status         string
	ErrorMessage   string
	TotalChars     int64
	UniqueSymbols  int
	ElapsedSeconds float64
	RunDir         string
}

const runColumns = `
	r.run_id, f.path, r.created_at, r.strategy, r.chunk_size, r.chunk_count,
	r.workers, r.file_size_bytes, r.file_mod_time_ns, r.status,
	r.error_message, r.total_chars, r.unique_symbols, r.elapsed_seconds, r.run_dir
`

func scanRun(row interface{ Scan(...interface{}) error }) (*Run, error) {
	var r Run
	var errorMessage, runDir sql.NullString

	err := row.Scan(
		&r.RunID, &r.FilePath, &r.CreatedAt, &r.Strategy, &r.ChunkSize, &r.ChunkCount,
		&r.Workers, &r.FileSizeBytes, &r.FileModTimeNS, &r.Status,
		&errorMessage, &r.TotalChars, &r.UniqueSymbols, &r.ElapsedSeconds, &runDir,
	)
	if err != nil {
		return nil, err
	}

	if errorMessage.Valid {
		r.ErrorMessage = errorMessage.String
	}
	if runDir.Valid {
		r.RunDir = runDir.String
	}
	return &r, nil
}

// CreateRun creates a new run record in the running state and returns its
// ID along with the recorded creation time.
func (db *DB) CreateRun(fileID int64, strategy string, chunkSize, fileSizeBytes, fileModTimeNS int64) (int64, time.Time, error) {
	result, err := db.Exec(`
		INSERT INTO runs (file_id, strategy, chunk_size, file_size_bytes, file_mod_time_ns, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, fileID, strategy, chunkSize, fileSizeBytes, fileModTimeNS, StatusRunning)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to get run ID: %w", err)
	}

	var createdAt time.Time
	err = db.QueryRow("SELECT created_at FROM runs WHERE run_id = ?", runID).Scan(&createdAt)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to read run timestamp: %w", err)
	}

	return runID, createdAt, nil
}

// SetRunDir records the results directory for a run.
func (db *DB) SetRunDir(runID int64, runDir string) error {
	_, err := db.Exec("UPDATE runs SET run_dir = ? WHERE run_id = ?", runDir, runID)
	if err != nil {
		return fmt.Errorf("failed to set run dir: %w", err)
	}
	return nil
}

// FinishRun records the outcome of a run.
func (db *DB) FinishRun(runID int64, status string, chunkCount, workers int, totalChars int64, uniqueSymbols int, elapsedSeconds float64, errorMessage string) error {
	_, err := db.Exec(`
		UPDATE runs
		SET status = ?, chunk_count = ?, workers = ?, total_chars = ?,
		    unique_symbols = ?, elapsed_seconds = ?, error_message = ?
		WHERE run_id = ?
	`, status, chunkCount, workers, totalChars, uniqueSymbols, elapsedSeconds, NewNullString(errorMessage), runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// InsertRunCounts stores the full frequency table for a run in one
// transaction. Re-inserting for the same run replaces existing counts.
func (db *DB) InsertRunCounts(runID int64, counts freq.Table) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO run_counts (run_id, symbol, label, count)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_id, symbol) DO UPDATE SET count = excluded.count
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare count insert: %w", err)
	}
	defer stmt.Close()

	for symbol, count := range counts {
		if _, err := stmt.Exec(runID, int64(symbol), freq.Label(symbol), count); err != nil {
			return fmt.Errorf("failed to insert count for %s: %w", freq.Label(symbol), err)
		}
	}

	return tx.Commit()
}

// GetRunCounts retrieves the stored frequency table for a run.
func (db *DB) GetRunCounts(runID int64) (freq.Table, error) {
	rows, err := db.Query("SELECT symbol, count FROM run_counts WHERE run_id = ? ORDER BY symbol", runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run counts: %w", err)
	}
	defer rows.Close()

	counts := make(freq.Table)
	for rows.Next() {
		var symbol, count int64
		if err := rows.Scan(&symbol, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[byte(symbol)] = count
	}

	return counts, nil
}

// GetRunByID retrieves a run by its ID.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	row := db.QueryRow(`
		SELECT `+runColumns+`
		FROM runs r
		JOIN files f ON r.file_id = f.file_id
		WHERE r.run_id = ?
	`, runID)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// GetLatestRunID returns the most recently created run ID.
func (db *DB) GetLatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow("SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1").Scan(&runID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no runs recorded yet")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}

// ListRuns retrieves runs ordered by most recent first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT ` + runColumns + `
		FROM runs r
		JOIN files f ON r.file_id = f.file_id
		ORDER BY r.created_at DESC, r.run_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}

	return runs, nil
}

// QueryRuns filters runs based on criteria.
func (db *DB) QueryRuns(todayOnly, failedOnly bool, filePattern string) ([]Run, error) {
	query := `
		SELECT ` + runColumns + `
		FROM runs r
		JOIN files f ON r.file_id = f.file_id
	`

	var conditions []string
	var args []interface{}

	if todayOnly {
		conditions = append(conditions, "DATE(r.created_at) = DATE('now')")
	}

	if failedOnly {
		conditions = append(conditions, "r.status = '"+StatusFailed+"'")
	}

	if filePattern != "" {
		conditions = append(conditions, "f.path LIKE ?")
		args = append(args, "%"+filePattern+"%")
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY r.created_at DESC, r.run_id DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}

	return runs, nil
}

// FindFreshRun checks if a completed run exists for this exact file
// identity and count configuration. Returns (run, cache_hit, error).
// A maxAge at or below zero disables the cache entirely.
func (db *DB) FindFreshRun(path, strategy string, chunkSize, fileSizeBytes, fileModTimeNS int64, maxAge time.Duration) (*Run, bool, error) {
	if maxAge <= 0 {
		return nil, false, nil
	}

	row := db.QueryRow(`
		SELECT `+runColumns+`
		FROM runs r
		JOIN files f ON r.file_id = f.file_id
		WHERE f.path = ? AND r.strategy = ? AND r.chunk_size = ?
		  AND r.file_size_bytes = ? AND r.file_mod_time_ns = ?
		  AND r.status = ?
		ORDER BY r.created_at DESC, r.run_id DESC
		LIMIT 1
	`, path, strategy, chunkSize, fileSizeBytes, fileModTimeNS, StatusCompleted)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to find run: %w", err)
	}

	// Check freshness
	age := time.Since(run.CreatedAt)
	if age > maxAge {
		return nil, false, nil
	}

	return run, true, nil
}

// NewNullString creates a sql.NullString from a string value.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
