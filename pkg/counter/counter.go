// Package counter executes chunked frequency counts under a selectable
// execution strategy. All strategies produce identical tables for the
// same file and chunk size.
package counter

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/sarkissian001/perf-counter/models"
	"github.com/sarkissian001/perf-counter/pkg/chunk"
	"github.com/sarkissian001/perf-counter/pkg/chunkio"
	"github.com/sarkissian001/perf-counter/pkg/freq"
)

// Summary holds the outcome of a completed count.
type Summary struct {
	Counts  freq.Table
	Chunks  int
	Workers int
}

// Run validates cfg, plans the chunk layout, and executes the configured
// strategy. Worker counts at or below zero resolve to the number of CPUs.
func Run(logger *slog.Logger, cfg models.CountConfig) (*Summary, error) {
	if cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("invalid configuration: %w", chunk.ErrChunkSize)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	reader, err := chunkio.Open(cfg.FilePath, cfg.UseMmap)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	spans, err := chunk.Plan(reader.Size(), cfg.ChunkSize)
	if err != nil {
		return nil, err
	}

	logger.Info("Starting count",
		"file", cfg.FilePath,
		"size_bytes", reader.Size(),
		"strategy", cfg.Strategy.String(),
		"chunk_size", cfg.ChunkSize,
		"chunks", len(spans),
		"workers", workers)

	var counts freq.Table
	switch cfg.Strategy {
	case models.StrategyThreads:
		counts, err = runThreads(logger, reader, spans, workers)
	case models.StrategyProcesses:
		counts, err = runProcesses(logger, cfg.FilePath, spans, workers)
	default:
		counts, err = runSequential(reader)
	}
	if err != nil {
		return nil, err
	}

	return &Summary{Counts: counts, Chunks: len(spans), Workers: workers}, nil
}

// runSequential counts the entire file in one read and one pass.
func runSequential(reader chunkio.RangeReader) (freq.Table, error) {
	data, err := reader.ReadRange(0, reader.Size())
	if err != nil {
		return nil, err
	}
	return freq.Count(data), nil
}
