package count

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/sarkissian001/perf-counter/pkg/counter"
)

// ChunkWorkerAction is the entry point for child processes spawned by the
// processes strategy. It counts one chunk and writes the table to stdout.
func ChunkWorkerAction(c *cli.Context) error {
	if c.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "usage: perf-counter chunk-worker <file> <offset> <length>")
		os.Exit(2)
	}

	filePath := c.Args().Get(0)

	offset, err := strconv.ParseInt(c.Args().Get(1), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid offset: %s\n", c.Args().Get(1))
		os.Exit(2)
	}

	length, err := strconv.ParseInt(c.Args().Get(2), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid length: %s\n", c.Args().Get(2))
		os.Exit(2)
	}

	if err := counter.CountSpan(filePath, offset, length, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return nil
}
