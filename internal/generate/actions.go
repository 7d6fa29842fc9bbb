package generate

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sarkissian001/perf-counter/models"
	"github.com/sarkissian001/perf-counter/pkg/gen"
	"github.com/sarkissian001/perf-counter/pkg/storage"
	"github.com/sarkissian001/perf-counter/pkg/timing"
)

func GenerateAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg := models.GenerateConfig{
		Path:     c.String("out"),
		Records:  c.Int64("records"),
		Alphabet: c.String("alphabet"),
		Seed:     c.Int64("seed"),
	}
	if cfg.Records < 0 {
		logger.Error("records must not be negative", "records", cfg.Records)
		os.Exit(2)
	}

	g, err := gen.New(cfg.Alphabet, cfg.Seed)
	if err != nil {
		logger.Error("invalid alphabet", "error", err)
		os.Exit(2)
	}

	store := &storage.Storage{}
	if store.HasFile(cfg.Path) {
		logger.Warn("Overwriting existing file", "file", cfg.Path)
	}

	f, err := os.Create(cfg.Path)
	if err != nil {
		logger.Error("failed to create output file", "file", cfg.Path, "error", err)
		os.Exit(2)
	}

	var written int64
	elapsed, err := timing.Timed(logger, "generate", func() error {
		n, err := g.WriteTo(f, cfg.Records)
		written = n
		return err
	})
	if err != nil {
		f.Close()
		logger.Error("failed to write corpus", "file", cfg.Path, "error", err)
		os.Exit(2)
	}
	if err := f.Close(); err != nil {
		logger.Error("failed to close output file", "file", cfg.Path, "error", err)
		os.Exit(2)
	}

	fmt.Printf("Generated %d symbols to %s in %.2fs\n", written, cfg.Path, elapsed.Seconds())
	fmt.Printf("\nTip: Count it with 'perf-counter count --file %s --strategy threads'\n", cfg.Path)

	return nil
}
