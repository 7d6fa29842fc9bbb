package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Files table: one row per counted corpus file
CREATE TABLE IF NOT EXISTS files (
    file_id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL UNIQUE,
    size_bytes INTEGER NOT NULL,

    -- Modification time in Unix nanoseconds; avoids TIMESTAMP precision loss
    mod_time_ns INTEGER NOT NULL,

    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_files_path ON files(path);

-- Runs: tracks each count execution
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    file_id INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    strategy TEXT NOT NULL,               -- sequential, threads, processes
    chunk_size INTEGER NOT NULL,
    chunk_count INTEGER DEFAULT 0,
    workers INTEGER DEFAULT 0,

    -- File identity snapshot at run time, for cache freshness checks
    file_size_bytes INTEGER NOT NULL,
    file_mod_time_ns INTEGER NOT NULL,

    status TEXT NOT NULL DEFAULT 'running',  -- running, completed, failed
    error_message TEXT,
    total_chars INTEGER DEFAULT 0,
    unique_symbols INTEGER DEFAULT 0,
    elapsed_seconds REAL DEFAULT 0,
    run_dir TEXT,
    FOREIGN KEY (file_id) REFERENCES files(file_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_runs_file ON runs(file_id);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);

-- Run counts: per-symbol frequency rows for a completed run
CREATE TABLE IF NOT EXISTS run_counts (
    count_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    symbol INTEGER NOT NULL,              -- byte value 0-255
    label TEXT NOT NULL,                  -- printable form, 0xNN for the rest
    count INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, symbol)
);

CREATE INDEX IF NOT EXISTS idx_run_counts_run ON run_counts(run_id);
CREATE INDEX IF NOT EXISTS idx_run_counts_symbol ON run_counts(symbol);
`
