package counter

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/sarkissian001/perf-counter/pkg/chunk"
	"github.com/sarkissian001/perf-counter/pkg/chunkio"
	"github.com/sarkissian001/perf-counter/pkg/freq"
)

type job struct {
	Index int
	Span  chunk.Span
}

type result struct {
	Index  int
	Counts freq.Table
	Err    error
}

// runThreads fans the spans out to a fixed pool of worker goroutines.
// Workers share only the reader and the results channel. The caller
// blocks until every worker has finished; the first failure discards
// all partial tables and becomes the run error.
func runThreads(logger *slog.Logger, reader chunkio.RangeReader, spans []chunk.Span, workers int) (freq.Table, error) {
	var wg sync.WaitGroup
	jobs := make(chan job, len(spans))
	results := make(chan result, len(spans))

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go countWorker(w, logger, reader, &wg, jobs, results)
	}

	for i, span := range spans {
		jobs <- job{Index: i, Span: span}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All count workers finished", "chunks", len(spans))

	partials := make([]freq.Table, 0, len(spans))
	var runErr error
	for res := range results {
		if res.Err != nil {
			if runErr == nil {
				runErr = res.Err
			}
			continue
		}
		partials = append(partials, res.Counts)
	}
	if runErr != nil {
		return nil, runErr
	}

	return freq.Merge(partials), nil
}

// countWorker drains jobs, counting one span per job. A failed read is
// reported on the results channel and the worker moves on to the next job.
func countWorker(id int, logger *slog.Logger, reader chunkio.RangeReader, wg *sync.WaitGroup, jobs <-chan job, results chan<- result) {
	defer wg.Done()

	for j := range jobs {
		logger.Debug("Worker started chunk", "worker_id", id, "chunk", j.Index, "offset", j.Span.Offset)

		data, err := reader.ReadRange(j.Span.Offset, j.Span.Length)
		if err != nil {
			logger.Error("Error reading chunk", "worker_id", id, "chunk", j.Index, "offset", j.Span.Offset, "error", err)
			results <- result{Index: j.Index, Err: fmt.Errorf("chunk %d at offset %d: %w", j.Index, j.Span.Offset, err)}
			continue
		}

		results <- result{Index: j.Index, Counts: freq.Count(data)}
		logger.Debug("Worker finished chunk", "worker_id", id, "chunk", j.Index)
	}
}
