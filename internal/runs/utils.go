package runs

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/sarkissian001/perf-counter/pkg/db"
)

// GetRunIDOrLatest resolves the run ID argument, falling back to the most
// recent run when none is given.
func GetRunIDOrLatest(c *cli.Context, database *db.DB) (int64, error) {
	if c.NArg() == 0 {
		runID, err := database.GetLatestRunID()
		if err != nil {
			return 0, fmt.Errorf("%w (run 'perf-counter count --file <path>' first)", err)
		}
		return runID, nil
	}

	idArg := c.Args().Get(0)
	runID, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid run ID: %s", idArg)
	}

	return runID, nil
}
