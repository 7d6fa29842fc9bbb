// Package models defines data structures for configuration and counting.
package models

// CountConfig holds runtime configuration for count operations.
// All values come from CLI flags.
type CountConfig struct {
	FilePath  string
	ChunkSize int64
	Strategy  Strategy
	Workers   int
	UseMmap   bool
}

// GenerateConfig holds runtime configuration for corpus generation.
type GenerateConfig struct {
	Path     string
	Records  int64
	Alphabet string
	Seed     int64
}
