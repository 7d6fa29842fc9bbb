package count

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/sarkissian001/perf-counter/models"
	"github.com/sarkissian001/perf-counter/pkg/counter"
	"github.com/sarkissian001/perf-counter/pkg/db"
	"github.com/sarkissian001/perf-counter/pkg/freq"
	"github.com/sarkissian001/perf-counter/pkg/report"
	"github.com/sarkissian001/perf-counter/pkg/storage"
	"github.com/sarkissian001/perf-counter/pkg/timing"
)

func CountAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	filePath := c.String("file")
	if filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: No input file provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  perf-counter count --file original.txt`)
		fmt.Fprintln(os.Stderr, `  perf-counter count --file original.txt --strategy threads --chunk-size 100000`)
		fmt.Fprintln(os.Stderr, `  perf-counter count --file original.txt --strategy processes --workers 4`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: perf-counter count --help")
		os.Exit(1)
	}

	chunkSize := c.Int64("chunk-size")
	if chunkSize <= 0 {
		logger.Error("chunk size must be positive", "chunk_size", chunkSize)
		os.Exit(2)
	}

	strategy, err := models.ParseStrategy(c.String("strategy"))
	if err != nil {
		logger.Error("invalid strategy", "error", err)
		os.Exit(2)
	}

	var maxAge time.Duration
	if c.Bool("force") {
		maxAge = 0
	} else {
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	store := &storage.Storage{}
	fileStats, err := store.GetFileStats(filePath)
	if err != nil {
		logger.Error("failed to stat input file", "file", filePath, "error", err)
		os.Exit(2)
	}
	modTimeNS := fileStats.ModTime.UnixNano()

	fileID, err := database.InsertFile(filePath, fileStats.SizeBytes, modTimeNS)
	if err != nil {
		logger.Error("failed to record file", "error", err)
		os.Exit(2)
	}

	// Check for a fresh run with the same file identity and configuration
	cached, cacheHit, err := database.FindFreshRun(filePath, strategy.String(), chunkSize, fileStats.SizeBytes, modTimeNS, maxAge)
	if err != nil {
		logger.Error("failed to check run cache", "error", err)
		os.Exit(2)
	}
	if cacheHit {
		logger.Info("Run cache hit - returning stored counts", "run_id", cached.RunID)

		counts, err := database.GetRunCounts(cached.RunID)
		if err != nil {
			logger.Error("failed to load cached counts", "error", err)
			os.Exit(2)
		}

		rep := Report{
			Status:    "success",
			File:      filePath,
			SizeBytes: cached.FileSizeBytes,
			Strategy:  cached.Strategy,
			ChunkSize: cached.ChunkSize,
			Chunks:    cached.ChunkCount,
			Workers:   cached.Workers,
			Counts:    counts.ByLabel(),
			Stats: Stats{
				TotalChars:       cached.TotalChars,
				UniqueSymbols:    cached.UniqueSymbols,
				TotalTimeSeconds: cached.ElapsedSeconds,
				TopSymbols:       freq.TopSymbols(counts, c.Int("top")),
				CacheHit:         true,
				RunID:            cached.RunID,
			},
		}
		if err := printDocument(c, rep); err != nil {
			logger.Error("failed to marshal report", "error", err)
			os.Exit(2)
		}
		if !c.Bool("quiet") {
			fmt.Fprintf(os.Stderr, "\nRun %d cache hit! Use --force to recount\n", cached.RunID)
		}
		return nil
	}

	runID, createdAt, err := database.CreateRun(fileID, strategy.String(), chunkSize, fileStats.SizeBytes, modTimeNS)
	if err != nil {
		logger.Error("failed to create run", "error", err)
		os.Exit(2)
	}
	logger.Info("Run created", "run_id", runID, "strategy", strategy.String())

	cfg := models.CountConfig{
		FilePath:  filePath,
		ChunkSize: chunkSize,
		Strategy:  strategy,
		Workers:   c.Int("workers"),
		UseMmap:   c.Bool("mmap"),
	}

	var summary *counter.Summary
	elapsed, runErr := timing.Timed(logger, "count", func() error {
		s, err := counter.Run(logger, cfg)
		if err != nil {
			return err
		}
		summary = s
		return nil
	})

	if runErr != nil {
		logger.Error("count failed", "run_id", runID, "error", runErr)
		if err := database.FinishRun(runID, db.StatusFailed, 0, cfg.Workers, 0, 0, elapsed.Seconds(), runErr.Error()); err != nil {
			logger.Warn("Failed to record run failure", "error", err)
		}

		rep := Report{
			Status:    "failed",
			File:      filePath,
			SizeBytes: fileStats.SizeBytes,
			Strategy:  strategy.String(),
			ChunkSize: chunkSize,
			Workers:   cfg.Workers,
			Stats: Stats{
				TotalTimeSeconds: elapsed.Seconds(),
				RunID:            runID,
			},
			Error: runErr.Error(),
		}
		if err := printDocument(c, rep); err != nil {
			logger.Error("failed to marshal report", "error", err)
			os.Exit(2)
		}
		os.Exit(1)
	}

	totalChars := summary.Counts.Total()
	uniqueSymbols := len(summary.Counts)

	if err := database.FinishRun(runID, db.StatusCompleted, summary.Chunks, summary.Workers, totalChars, uniqueSymbols, elapsed.Seconds(), ""); err != nil {
		logger.Warn("Failed to record run outcome", "error", err)
	}
	if err := database.InsertRunCounts(runID, summary.Counts); err != nil {
		logger.Warn("Failed to store run counts", "error", err)
	}

	// Write result artifacts to the run directory
	baseDir := c.String("output-dir")
	runDir, err := report.EnsureRunDir(baseDir, runID, createdAt)
	if err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}
	if err := report.GenerateFieldsReference(baseDir); err != nil {
		logger.Warn("Failed to generate FIELDS.yaml reference", "error", err)
	}

	runInfo := report.RunInfo{
		RunID:          runID,
		File:           filePath,
		Strategy:       strategy.String(),
		ChunkSize:      chunkSize,
		Workers:        summary.Workers,
		Status:         db.StatusCompleted,
		TotalChars:     totalChars,
		UniqueSymbols:  uniqueSymbols,
		ElapsedSeconds: elapsed.Seconds(),
		Created:        createdAt,
	}
	if err := report.WriteRunInfo(runDir, runInfo); err != nil {
		return fmt.Errorf("failed to write run info: %w", err)
	}
	if err := report.WriteCounts(runDir, summary.Counts); err != nil {
		return fmt.Errorf("failed to write counts: %w", err)
	}
	if c.Bool("letter-files") {
		if err := report.WriteSymbolFiles(runDir, summary.Counts); err != nil {
			return fmt.Errorf("failed to write symbol files: %w", err)
		}
	}
	if err := report.UpdateRunIndex(baseDir, runInfo); err != nil {
		logger.Warn("Failed to update run index", "error", err)
	}
	if err := database.SetRunDir(runID, filepath.Join("runs", report.RunDirName(runID, createdAt))); err != nil {
		logger.Warn("Failed to record run directory", "error", err)
	}

	rep := Report{
		Status:    "success",
		File:      filePath,
		SizeBytes: fileStats.SizeBytes,
		Strategy:  strategy.String(),
		ChunkSize: chunkSize,
		Chunks:    summary.Chunks,
		Workers:   summary.Workers,
		Counts:    summary.Counts.ByLabel(),
		Stats: Stats{
			TotalChars:       totalChars,
			UniqueSymbols:    uniqueSymbols,
			TotalTimeSeconds: elapsed.Seconds(),
			TopSymbols:       freq.TopSymbols(summary.Counts, c.Int("top")),
			RunID:            runID,
		},
	}

	outputData, err := marshalDocument(c, rep)
	if err != nil {
		logger.Error("failed to marshal report", "error", err)
		os.Exit(2)
	}

	// The run directory keeps a copy of the printed report
	reportName := "report.json"
	if strings.ToLower(c.String("format")) == "yaml" {
		reportName = "report.yaml"
	}
	if err := store.SaveFile(filepath.Join(runDir, reportName), outputData); err != nil {
		logger.Warn("Failed to write report document", "error", err)
	}

	fmt.Println(string(outputData))

	if !c.Bool("quiet") {
		fmt.Fprintf(os.Stderr, "\n💡 Quick start:\n")
		fmt.Fprintf(os.Stderr, "  perf-counter runs show %d        # Full run details\n", runID)
		fmt.Fprintf(os.Stderr, "  perf-counter compare --file %s   # Benchmark all strategies\n", filePath)
		fmt.Fprintf(os.Stderr, "\nResults: %s\n", runDir)
	}

	return nil
}

func CompareAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	filePath := c.String("file")
	if filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: No input file provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  perf-counter compare --file original.txt`)
		fmt.Fprintln(os.Stderr, `  perf-counter compare --file original.txt --chunk-size 100000 --workers 8`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: perf-counter compare --help")
		os.Exit(1)
	}

	chunkSize := c.Int64("chunk-size")
	if chunkSize <= 0 {
		logger.Error("chunk size must be positive", "chunk_size", chunkSize)
		os.Exit(2)
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	store := &storage.Storage{}
	fileStats, err := store.GetFileStats(filePath)
	if err != nil {
		logger.Error("failed to stat input file", "file", filePath, "error", err)
		os.Exit(2)
	}
	modTimeNS := fileStats.ModTime.UnixNano()

	fileID, err := database.InsertFile(filePath, fileStats.SizeBytes, modTimeNS)
	if err != nil {
		logger.Error("failed to record file", "error", err)
		os.Exit(2)
	}

	strategies := []models.Strategy{
		models.StrategySequential,
		models.StrategyThreads,
		models.StrategyProcesses,
	}

	output := CompareOutput{
		File:      filePath,
		SizeBytes: fileStats.SizeBytes,
		ChunkSize: chunkSize,
		Workers:   c.Int("workers"),
	}

	tables := make([]freq.Table, 0, len(strategies))
	var seqElapsed float64
	var successCount int

	for _, strategy := range strategies {
		runID, _, err := database.CreateRun(fileID, strategy.String(), chunkSize, fileStats.SizeBytes, modTimeNS)
		if err != nil {
			logger.Error("failed to create run", "error", err)
			os.Exit(2)
		}

		cfg := models.CountConfig{
			FilePath:  filePath,
			ChunkSize: chunkSize,
			Strategy:  strategy,
			Workers:   c.Int("workers"),
			UseMmap:   c.Bool("mmap"),
		}

		var summary *counter.Summary
		elapsed, runErr := timing.Timed(logger, "compare/"+strategy.String(), func() error {
			s, err := counter.Run(logger, cfg)
			if err != nil {
				return err
			}
			summary = s
			return nil
		})

		row := CompareRow{
			Strategy:       strategy.String(),
			ElapsedSeconds: elapsed.Seconds(),
			RunID:          runID,
		}

		if runErr != nil {
			logger.Error("strategy failed", "strategy", strategy.String(), "error", runErr)
			row.Status = db.StatusFailed
			row.Error = runErr.Error()
			if err := database.FinishRun(runID, db.StatusFailed, 0, cfg.Workers, 0, 0, elapsed.Seconds(), runErr.Error()); err != nil {
				logger.Warn("Failed to record run failure", "error", err)
			}
		} else {
			row.Status = db.StatusCompleted
			row.TotalChars = summary.Counts.Total()
			row.UniqueSymbols = len(summary.Counts)
			successCount++
			tables = append(tables, summary.Counts)
			output.Workers = summary.Workers

			if strategy == models.StrategySequential {
				seqElapsed = elapsed.Seconds()
			}

			if err := database.FinishRun(runID, db.StatusCompleted, summary.Chunks, summary.Workers, row.TotalChars, row.UniqueSymbols, elapsed.Seconds(), ""); err != nil {
				logger.Warn("Failed to record run outcome", "error", err)
			}
			if err := database.InsertRunCounts(runID, summary.Counts); err != nil {
				logger.Warn("Failed to store run counts", "error", err)
			}
		}

		output.Results = append(output.Results, row)
	}

	// Speedups relative to the sequential baseline
	if seqElapsed > 0 {
		for i := range output.Results {
			if output.Results[i].Status == db.StatusCompleted && output.Results[i].ElapsedSeconds > 0 {
				output.Results[i].Speedup = seqElapsed / output.Results[i].ElapsedSeconds
			}
		}
	}

	output.IdenticalCounts = tablesMatch(tables)

	switch {
	case successCount == 0:
		output.Status = "failure"
	case successCount < len(strategies):
		output.Status = "partial_failure"
	case !output.IdenticalCounts:
		output.Status = "mismatch"
	default:
		output.Status = "success"
	}

	format := strings.ToLower(c.String("format"))
	if format == "json" || format == "yaml" {
		if err := printDocument(c, output); err != nil {
			logger.Error("failed to marshal comparison", "error", err)
			os.Exit(2)
		}
	} else {
		printCompareTable(output)
	}

	if successCount == 0 {
		os.Exit(2)
	}
	if successCount < len(strategies) || !output.IdenticalCounts {
		os.Exit(1)
	}

	return nil
}

func tablesMatch(tables []freq.Table) bool {
	for i := 1; i < len(tables); i++ {
		if !tables[i].Equal(tables[0]) {
			return false
		}
	}
	return true
}

func printCompareTable(output CompareOutput) {
	fmt.Printf("Comparing strategies on %s (%d bytes, chunk size %d)\n\n", output.File, output.SizeBytes, output.ChunkSize)

	fmt.Printf("%-12s %-10s %-10s %-14s %-8s %-8s\n",
		"Strategy", "Status", "Time (s)", "Total Chars", "Unique", "Speedup")
	fmt.Println(strings.Repeat("-", 70))

	for _, r := range output.Results {
		speedup := "-"
		if r.Speedup > 0 {
			speedup = fmt.Sprintf("%.2fx", r.Speedup)
		}
		fmt.Printf("%-12s %-10s %-10.4f %-14d %-8d %-8s\n",
			r.Strategy, r.Status, r.ElapsedSeconds, r.TotalChars, r.UniqueSymbols, speedup)
		if r.Error != "" {
			fmt.Printf("             Error: %s\n", r.Error)
		}
	}

	fmt.Printf("\nIdentical counts: %v\n", output.IdenticalCounts)
	fmt.Printf("\nTip: Use 'perf-counter runs list' to see recorded runs\n")
}

func marshalDocument(c *cli.Context, doc interface{}) ([]byte, error) {
	if strings.ToLower(c.String("format")) == "yaml" {
		return yaml.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}

func printDocument(c *cli.Context, doc interface{}) error {
	outputData, err := marshalDocument(c, doc)
	if err != nil {
		return err
	}

	fmt.Println(string(outputData))
	return nil
}
