package runs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/sarkissian001/perf-counter/pkg/db"
	"github.com/sarkissian001/perf-counter/pkg/freq"
)

// RunsAction lists recorded runs, optionally filtered.
func RunsAction(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	todayOnly := c.Bool("today")
	failedOnly := c.Bool("failed")
	filePattern := c.String("file")
	filtered := todayOnly || failedOnly || filePattern != ""

	var runs []db.Run
	if filtered {
		runs, err = database.QueryRuns(todayOnly, failedOnly, filePattern)
	} else {
		runs, err = database.ListRuns(c.Int("limit"))
	}
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		if filtered {
			fmt.Println("No runs match the given filters")
		} else {
			fmt.Println("No runs recorded yet. Run 'perf-counter count --file <path>' to create one.")
		}
		return nil
	}

	fmt.Printf("%-6s %-20s %-12s %-10s %-12s %-12s %-9s %-30s\n",
		"ID", "Created", "Strategy", "Status", "Chunk Size", "Total Chars", "Time (s)", "File")
	fmt.Println(strings.Repeat("-", 120))

	for _, run := range runs {
		fmt.Printf("%-6d %-20s %-12s %-10s %-12d %-12d %-9.3f %-30s\n",
			run.RunID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Strategy,
			run.Status,
			run.ChunkSize,
			run.TotalChars,
			run.ElapsedSeconds,
			run.FilePath)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'perf-counter runs show <id>' to see details\n")

	return nil
}

// ShowRunAction prints the details and counts of one run.
func ShowRunAction(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("File:        %s\n", run.FilePath)
	fmt.Printf("Strategy:    %s\n", run.Strategy)
	fmt.Printf("Chunk Size:  %d\n", run.ChunkSize)
	fmt.Printf("Chunks:      %d\n", run.ChunkCount)
	fmt.Printf("Workers:     %d\n", run.Workers)
	fmt.Printf("Status:      %s\n", run.Status)
	fmt.Printf("Total Chars: %d\n", run.TotalChars)
	fmt.Printf("Unique:      %d\n", run.UniqueSymbols)
	fmt.Printf("Time:        %.3fs\n", run.ElapsedSeconds)
	if run.RunDir != "" {
		fmt.Printf("Directory:   %s\n", run.RunDir)
	}
	if run.Status == db.StatusFailed && run.ErrorMessage != "" {
		fmt.Printf("Error:       %s\n", run.ErrorMessage)
	}

	counts, err := database.GetRunCounts(run.RunID)
	if err != nil {
		return fmt.Errorf("failed to load run counts: %w", err)
	}
	if len(counts) == 0 {
		return nil
	}

	fmt.Printf("\nCounts:\n")
	byLabel := counts.ByLabel()
	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Printf("  %-8s %12d\n", label, byLabel[label])
	}

	fmt.Printf("\nTop: %s\n", strings.Join(freq.TopSymbols(counts, 5), ", "))

	return nil
}

// InitAction creates the database and schema if they do not exist yet.
func InitAction(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	fmt.Printf("Database initialized at %s\n", database.Path())
	return nil
}
