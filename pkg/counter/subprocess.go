package counter

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sarkissian001/perf-counter/pkg/chunk"
	"github.com/sarkissian001/perf-counter/pkg/freq"
)

// WorkerCommand is the hidden CLI command that chunk worker processes run.
const WorkerCommand = "chunk-worker"

// execCommand is swapped out by tests to re-exec the test binary.
var execCommand = exec.Command

// runProcesses executes one isolated child process per span, bounded to
// the worker limit. The group waits for every child before returning, so
// a failed run surfaces the first error and no partial table escapes.
func runProcesses(logger *slog.Logger, path string, spans []chunk.Span, workers int) (freq.Table, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable: %w", err)
	}

	partials := make([]freq.Table, len(spans))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, span := range spans {
		i, span := i, span
		g.Go(func() error {
			logger.Debug("Spawning chunk worker", "chunk", i, "offset", span.Offset, "length", span.Length)

			counts, err := countInChild(exe, path, span)
			if err != nil {
				logger.Error("Chunk worker failed", "chunk", i, "offset", span.Offset, "error", err)
				return fmt.Errorf("chunk %d at offset %d: %w", i, span.Offset, err)
			}

			partials[i] = counts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("All chunk workers finished", "processes", len(spans))
	return freq.Merge(partials), nil
}

// countInChild runs one chunk worker process and decodes its table from
// stdout. Stderr is folded into the error on failure.
func countInChild(exe, path string, span chunk.Span) (freq.Table, error) {
	cmd := execCommand(exe, WorkerCommand, path,
		strconv.FormatInt(span.Offset, 10),
		strconv.FormatInt(span.Length, 10))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("%v: %s", err, detail)
		}
		return nil, err
	}

	return DecodeTable(&stdout)
}
