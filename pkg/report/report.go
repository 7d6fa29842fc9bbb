package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sarkissian001/perf-counter/pkg/freq"
	"github.com/sarkissian001/perf-counter/pkg/storage"
)

// DefaultBaseDir is the results root created next to wherever the tool runs.
const DefaultBaseDir = "perf-counter-results"

// RunInfo represents metadata about a completed count run.
type RunInfo struct {
	RunID          int64     `yaml:"run_id"`
	File           string    `yaml:"file"`
	Strategy       string    `yaml:"strategy"`
	ChunkSize      int64     `yaml:"chunk_size"`
	Workers        int       `yaml:"workers"`
	Status         string    `yaml:"status"`
	TotalChars     int64     `yaml:"total_chars"`
	UniqueSymbols  int       `yaml:"unique_symbols"`
	ElapsedSeconds float64   `yaml:"elapsed_seconds"`
	Created        time.Time `yaml:"created"`
}

// RunIndex represents the results index.yaml file.
type RunIndex struct {
	Runs []RunInfo `yaml:"runs"`
}

// RunDirName builds a timestamp-first directory name so run directories
// sort chronologically.
func RunDirName(runID int64, created time.Time) string {
	return fmt.Sprintf("%s-run%d", created.Format("2006-01-02T15-04"), runID)
}

// GetRunDir returns the full path to a run directory.
func GetRunDir(baseDir string, runID int64, created time.Time) string {
	return filepath.Join(baseDir, "runs", RunDirName(runID, created))
}

// GetRunsIndexPath returns the path to the run index file (at results root).
func GetRunsIndexPath(baseDir string) string {
	return filepath.Join(baseDir, "index.yaml")
}

// EnsureRunDir creates the run directory structure if it doesn't exist.
func EnsureRunDir(baseDir string, runID int64, created time.Time) (string, error) {
	runsRoot := filepath.Join(baseDir, "runs")
	if err := os.MkdirAll(runsRoot, 0755); err != nil {
		return "", fmt.Errorf("failed to create runs directory: %w", err)
	}

	runDir := GetRunDir(baseDir, runID, created)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}

	return runDir, nil
}

// WriteRunInfo writes the run.yaml metadata file into a run directory.
func WriteRunInfo(runDir string, info RunInfo) error {
	output, err := yaml.Marshal(&info)
	if err != nil {
		return fmt.Errorf("failed to marshal run info: %w", err)
	}

	infoPath := filepath.Join(runDir, "run.yaml")
	if err := os.WriteFile(infoPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write run info: %w", err)
	}

	return nil
}

// WriteCounts writes the full frequency table into counts.yaml, keyed by
// printable symbol label.
func WriteCounts(runDir string, counts freq.Table) error {
	output, err := yaml.Marshal(counts.ByLabel())
	if err != nil {
		return fmt.Errorf("failed to marshal counts: %w", err)
	}

	countsPath := filepath.Join(runDir, "counts.yaml")
	if err := os.WriteFile(countsPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write counts: %w", err)
	}

	return nil
}

// WriteSymbolFiles writes one <label>.txt file per counted symbol, each
// holding that symbol's count.
func WriteSymbolFiles(runDir string, counts freq.Table) error {
	store := &storage.Storage{}

	for symbol, count := range counts {
		name := fmt.Sprintf("%s.txt", freq.Label(symbol))
		content := fmt.Sprintf("%d\n", count)

		if err := store.SaveFile(filepath.Join(runDir, name), []byte(content)); err != nil {
			return fmt.Errorf("failed to write symbol file %s: %w", name, err)
		}
	}

	return nil
}

// UpdateRunIndex adds or updates a run entry in the results index.yaml.
func UpdateRunIndex(baseDir string, info RunInfo) error {
	indexPath := GetRunsIndexPath(baseDir)

	var index RunIndex
	data, err := os.ReadFile(indexPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read run index: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &index); err != nil {
			return fmt.Errorf("failed to parse run index: %w", err)
		}
	}

	found := false
	for i, r := range index.Runs {
		if r.RunID == info.RunID {
			index.Runs[i] = info
			found = true
			break
		}
	}
	if !found {
		index.Runs = append(index.Runs, info)
	}

	// Newest first
	sort.Slice(index.Runs, func(i, j int) bool {
		if index.Runs[i].Created.Equal(index.Runs[j].Created) {
			return index.Runs[i].RunID > index.Runs[j].RunID
		}
		return index.Runs[i].Created.After(index.Runs[j].Created)
	})

	output, err := yaml.Marshal(&index)
	if err != nil {
		return fmt.Errorf("failed to marshal run index: %w", err)
	}

	if err := os.WriteFile(indexPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write run index: %w", err)
	}

	return nil
}

// GenerateFieldsReference creates the FIELDS.yaml reference file at the
// results root, documenting the output layout. Existing files are left
// alone.
func GenerateFieldsReference(baseDir string) error {
	fieldsPath := filepath.Join(baseDir, "FIELDS.yaml")

	if _, err := os.Stat(fieldsPath); err == nil {
		return nil
	}

	content := `# Results Fields Reference
# Auto-generated field documentation for perf-counter output

run_yaml:
  run_id: int (database row ID)
  file: string (counted file path)
  strategy: [sequential, threads, processes]
  chunk_size: int (bytes per chunk)
  workers: int (resolved worker count)
  status: [completed, failed]
  total_chars: int (sum of all symbol counts, equals file size)
  unique_symbols: int (distinct byte values seen)
  elapsed_seconds: float
  created: string (ISO-8601 timestamp)

counts_yaml:
  <label>: int (count for that symbol; non-printable bytes use 0xNN labels)

symbol_files:
  <label>.txt: one file per symbol, containing its count

report_file:
  report.json: copy of the printed report document (report.yaml with --format yaml)

index_yaml:
  runs: list of run_yaml summaries, newest first

layout:
  run_dir: perf-counter-results/runs/{date}-run{id}/
  run_index: perf-counter-results/index.yaml (list all runs)
`

	if err := os.WriteFile(fieldsPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write FIELDS.yaml: %w", err)
	}

	return nil
}
