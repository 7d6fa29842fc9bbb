package count

// Report is the final stdout document for a count run.
type Report struct {
	Status    string           `json:"status" yaml:"status"`
	File      string           `json:"file" yaml:"file"`
	SizeBytes int64            `json:"size_bytes" yaml:"size_bytes"`
	Strategy  string           `json:"strategy" yaml:"strategy"`
	ChunkSize int64            `json:"chunk_size" yaml:"chunk_size"`
	Chunks    int              `json:"chunks" yaml:"chunks"`
	Workers   int              `json:"workers" yaml:"workers"`
	Counts    map[string]int64 `json:"counts" yaml:"counts"`
	Stats     Stats            `json:"stats" yaml:"stats"`
	Error     string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Stats summarizes a run for the report document.
type Stats struct {
	TotalChars       int64    `json:"total_chars" yaml:"total_chars"`
	UniqueSymbols    int      `json:"unique_symbols" yaml:"unique_symbols"`
	TotalTimeSeconds float64  `json:"total_time_seconds" yaml:"total_time_seconds"`
	TopSymbols       []string `json:"top_symbols" yaml:"top_symbols"`
	CacheHit         bool     `json:"cache_hit" yaml:"cache_hit"`
	RunID            int64    `json:"run_id" yaml:"run_id"`
}

// CompareRow is one strategy's outcome within a comparison.
type CompareRow struct {
	Strategy       string  `json:"strategy" yaml:"strategy"`
	Status         string  `json:"status" yaml:"status"`
	ElapsedSeconds float64 `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	TotalChars     int64   `json:"total_chars" yaml:"total_chars"`
	UniqueSymbols  int     `json:"unique_symbols" yaml:"unique_symbols"`
	Speedup        float64 `json:"speedup" yaml:"speedup"`
	RunID          int64   `json:"run_id" yaml:"run_id"`
	Error          string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// CompareOutput is the final stdout document for a compare run.
type CompareOutput struct {
	Status          string       `json:"status" yaml:"status"`
	File            string       `json:"file" yaml:"file"`
	SizeBytes       int64        `json:"size_bytes" yaml:"size_bytes"`
	ChunkSize       int64        `json:"chunk_size" yaml:"chunk_size"`
	Workers         int          `json:"workers" yaml:"workers"`
	Results         []CompareRow `json:"results" yaml:"results"`
	IdenticalCounts bool         `json:"identical_counts" yaml:"identical_counts"`
}
