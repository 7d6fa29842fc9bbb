package models

import (
	"fmt"
	"strings"
)

// Strategy represents how chunk counting work is executed.
type Strategy int

const (
	// StrategySequential counts the whole file in a single pass.
	StrategySequential Strategy = iota
	StrategyThreads   // Worker-pool goroutines over chunks
	StrategyProcesses // Isolated child process per chunk
)

// String returns the canonical name used in flags, logs and run records.
func (s Strategy) String() string {
	switch s {
	case StrategyThreads:
		return "threads"
	case StrategyProcesses:
		return "processes"
	default:
		return "sequential"
	}
}

// ParseStrategy resolves a strategy name from a CLI flag value.
// threading and multiprocessing are accepted as aliases.
func ParseStrategy(value string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "sequential":
		return StrategySequential, nil
	case "threads", "threaded", "threading":
		return StrategyThreads, nil
	case "processes", "multiprocessing":
		return StrategyProcesses, nil
	}
	return StrategySequential, fmt.Errorf("unknown strategy %q (use: sequential, threads, or processes)", value)
}
