// Package timing measures the wall-clock duration of named operations.
package timing

import (
	"log/slog"
	"time"
)

// Timed runs op and logs its wall-clock duration under label. The
// operation's error passes through untouched, so failed runs are still
// timed and reported.
func Timed(logger *slog.Logger, label string, op func() error) (time.Duration, error) {
	start := time.Now()
	err := op()
	elapsed := time.Since(start)

	logger.Info("Operation finished",
		"operation", label,
		"elapsed_seconds", elapsed.Seconds(),
		"success", err == nil)

	return elapsed, err
}
