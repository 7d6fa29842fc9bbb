package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sarkissian001/perf-counter/pkg/freq"
)

func TestRunDirName(t *testing.T) {
	created := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

	got := RunDirName(12, created)
	want := "2024-03-05T09-30-run12"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEnsureRunDir(t *testing.T) {
	baseDir := t.TempDir()
	created := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

	runDir, err := EnsureRunDir(baseDir, 1, created)
	if err != nil {
		t.Fatalf("EnsureRunDir failed: %v", err)
	}

	info, err := os.Stat(runDir)
	if err != nil {
		t.Fatalf("run directory missing: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", runDir)
	}

	// Second call is a no-op
	if _, err := EnsureRunDir(baseDir, 1, created); err != nil {
		t.Errorf("repeat EnsureRunDir failed: %v", err)
	}
}

func TestWriteSymbolFiles(t *testing.T) {
	runDir := t.TempDir()
	counts := freq.Table{'A': 200, '\n': 3}

	if err := WriteSymbolFiles(runDir, counts); err != nil {
		t.Fatalf("WriteSymbolFiles failed: %v", err)
	}

	tests := []struct {
		file string
		want string
	}{
		{"A.txt", "200\n"},
		{"0x0A.txt", "3\n"},
	}
	for _, tt := range tests {
		data, err := os.ReadFile(filepath.Join(runDir, tt.file))
		if err != nil {
			t.Fatalf("missing symbol file %s: %v", tt.file, err)
		}
		if string(data) != tt.want {
			t.Errorf("%s content: got %q, want %q", tt.file, data, tt.want)
		}
	}
}

func TestWriteCounts(t *testing.T) {
	runDir := t.TempDir()
	counts := freq.Table{'A': 200, 'B': 300}

	if err := WriteCounts(runDir, counts); err != nil {
		t.Fatalf("WriteCounts failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(runDir, "counts.yaml"))
	if err != nil {
		t.Fatalf("missing counts.yaml: %v", err)
	}

	var got map[string]int64
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("failed to parse counts.yaml: %v", err)
	}
	if got["A"] != 200 || got["B"] != 300 || len(got) != 2 {
		t.Errorf("got %v, want map[A:200 B:300]", got)
	}
}

func TestUpdateRunIndex(t *testing.T) {
	baseDir := t.TempDir()
	t0 := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

	first := RunInfo{RunID: 1, File: "a.txt", Strategy: "sequential", Status: "completed", Created: t0}
	second := RunInfo{RunID: 2, File: "b.txt", Strategy: "threads", Status: "completed", Created: t0.Add(time.Minute)}

	if err := UpdateRunIndex(baseDir, first); err != nil {
		t.Fatalf("UpdateRunIndex failed: %v", err)
	}
	if err := UpdateRunIndex(baseDir, second); err != nil {
		t.Fatalf("UpdateRunIndex failed: %v", err)
	}

	index := readIndex(t, baseDir)
	if len(index.Runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(index.Runs))
	}
	if index.Runs[0].RunID != 2 || index.Runs[1].RunID != 1 {
		t.Errorf("got order [%d %d], want newest first [2 1]", index.Runs[0].RunID, index.Runs[1].RunID)
	}

	// Updating an existing run replaces its entry instead of appending
	first.Status = "failed"
	if err := UpdateRunIndex(baseDir, first); err != nil {
		t.Fatalf("UpdateRunIndex failed: %v", err)
	}

	index = readIndex(t, baseDir)
	if len(index.Runs) != 2 {
		t.Fatalf("got %d runs after update, want 2", len(index.Runs))
	}
	if index.Runs[1].Status != "failed" {
		t.Errorf("got status %q, want failed", index.Runs[1].Status)
	}
}

func readIndex(t *testing.T, baseDir string) RunIndex {
	t.Helper()

	data, err := os.ReadFile(GetRunsIndexPath(baseDir))
	if err != nil {
		t.Fatalf("failed to read index: %v", err)
	}

	var index RunIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		t.Fatalf("failed to parse index: %v", err)
	}
	return index
}

func TestGenerateFieldsReference(t *testing.T) {
	baseDir := t.TempDir()

	if err := GenerateFieldsReference(baseDir); err != nil {
		t.Fatalf("GenerateFieldsReference failed: %v", err)
	}

	fieldsPath := filepath.Join(baseDir, "FIELDS.yaml")
	if _, err := os.Stat(fieldsPath); err != nil {
		t.Fatalf("FIELDS.yaml missing: %v", err)
	}

	// Existing files are not overwritten
	if err := os.WriteFile(fieldsPath, []byte("edited"), 0644); err != nil {
		t.Fatalf("failed to edit FIELDS.yaml: %v", err)
	}
	if err := GenerateFieldsReference(baseDir); err != nil {
		t.Fatalf("repeat GenerateFieldsReference failed: %v", err)
	}

	data, err := os.ReadFile(fieldsPath)
	if err != nil {
		t.Fatalf("failed to read FIELDS.yaml: %v", err)
	}
	if string(data) != "edited" {
		t.Error("GenerateFieldsReference overwrote an existing file")
	}
}
