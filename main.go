package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sarkissian001/perf-counter/internal/count"
	"github.com/sarkissian001/perf-counter/internal/generate"
	"github.com/sarkissian001/perf-counter/internal/runs"
	"github.com/sarkissian001/perf-counter/pkg/counter"
	"github.com/sarkissian001/perf-counter/pkg/gen"
	"github.com/sarkissian001/perf-counter/pkg/help"
	"github.com/sarkissian001/perf-counter/pkg/report"
)

func main() {
	app := &cli.App{
		Name:  "perf-counter",
		Usage: "Count symbol frequencies in large files and benchmark execution strategies",
		Commands: []*cli.Command{
			{
				Name:  "count",
				Usage: "Count symbol frequencies in a file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "Input file to count"},
					&cli.Int64Flag{Name: "chunk-size", Aliases: []string{"c"}, Value: 100000, Usage: "Chunk size in bytes"},
					&cli.StringFlag{Name: "strategy", Aliases: []string{"s"}, Value: "sequential", Usage: "Execution strategy: sequential, threads, processes"},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Worker count (default: number of CPUs)"},
					&cli.BoolFlag{Name: "mmap", Usage: "Read chunks through a memory map"},
					&cli.StringFlag{Name: "max-age", Value: "24h", Usage: "Reuse a completed run younger than this"},
					&cli.BoolFlag{Name: "force", Usage: "Skip the run cache and count again"},
					&cli.StringFlag{Name: "format", Value: "json", Usage: "Output format: json or yaml"},
					&cli.IntFlag{Name: "top", Value: 10, Usage: "Number of top symbols in the report"},
					&cli.BoolFlag{Name: "letter-files", Value: true, Usage: "Write one <symbol>.txt per counted symbol"},
					&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Value: report.DefaultBaseDir, Usage: "Directory for run result files"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors"},
				},
				Action: count.CountAction,
			},
			{
				Name:  "compare",
				Usage: "Run every strategy on one file and compare timings",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "Input file to count"},
					&cli.Int64Flag{Name: "chunk-size", Aliases: []string{"c"}, Value: 100000, Usage: "Chunk size in bytes"},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Worker count (default: number of CPUs)"},
					&cli.BoolFlag{Name: "mmap", Usage: "Read chunks through a memory map"},
					&cli.StringFlag{Name: "format", Value: "table", Usage: "Output format: table, json, or yaml"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors"},
				},
				Action: count.CompareAction,
			},
			{
				Name:      counter.WorkerCommand,
				Usage:     "Count one chunk and print the table (internal)",
				ArgsUsage: "<file> <offset> <length>",
				Hidden:    true,
				Action:    count.ChunkWorkerAction,
			},
			{
				Name:  "generate",
				Usage: "Generate a random test corpus",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "original.txt", Usage: "Output file path"},
					&cli.Int64Flag{Name: "records", Aliases: []string{"n"}, Value: 10000000, Usage: "Number of symbols to write"},
					&cli.StringFlag{Name: "alphabet", Value: gen.DefaultAlphabet, Usage: "Comma-separated single-character symbols"},
					&cli.Int64Flag{Name: "seed", Usage: "Random seed (default: current time)"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors"},
				},
				Action: generate.GenerateAction,
			},
			{
				Name:  "runs",
				Usage: "Inspect recorded runs",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List recorded runs",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "Maximum rows to show"},
							&cli.BoolFlag{Name: "today", Usage: "Only runs created today"},
							&cli.BoolFlag{Name: "failed", Usage: "Only failed runs"},
							&cli.StringFlag{Name: "file", Usage: "Filter by file path substring"},
						},
						Action: runs.RunsAction,
					},
					{
						Name:      "show",
						Usage:     "Show one run with its counts",
						ArgsUsage: "[run-id]",
						Action:    runs.ShowRunAction,
					},
					{
						Name:   "init",
						Usage:  "Create the database schema",
						Action: runs.InitAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print a machine-readable tour of the tool",
				Action: func(c *cli.Context) error {
					fmt.Print(help.QuickstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
