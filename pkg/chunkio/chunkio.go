// Package chunkio reads byte ranges from local files.
package chunkio

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// RangeReader reads byte ranges from a fixed-size input.
// Implementations are safe for concurrent ReadRange calls.
type RangeReader interface {
	ReadRange(offset, length int64) ([]byte, error)
	Size() int64
	Close() error
}

// Open opens path for range reads. With useMmap the file is memory-mapped,
// otherwise ranges are served by pread on a single shared handle.
func Open(path string, useMmap bool) (RangeReader, error) {
	if useMmap {
		return OpenMmap(path)
	}
	return OpenFile(path)
}

// FileReader serves ranges from an open file via ReadAt.
type FileReader struct {
	f    *os.File
	size int64
}

// OpenFile opens path and captures its current size.
func OpenFile(path string) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &FileReader{f: f, size: info.Size()}, nil
}

// ReadRange returns up to length bytes starting at offset. Ranges that
// start at or past EOF return an empty slice; ranges that extend past EOF
// return the truncated data. Neither case is an error.
func (r *FileReader) ReadRange(offset, length int64) ([]byte, error) {
	length, err := clampRange(offset, length, r.size)
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, length)
	n, err := r.f.ReadAt(buf, offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read %d bytes at offset %d: %w", length, offset, err)
	}
	return buf[:n], nil
}

// Size returns the file size captured at open.
func (r *FileReader) Size() int64 { return r.size }

func (r *FileReader) Close() error { return r.f.Close() }

// clampRange validates offset and length and trims length to the bytes
// remaining before EOF.
func clampRange(offset, length, size int64) (int64, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset %d", offset)
	}
	if length < 0 {
		return 0, fmt.Errorf("negative length %d", length)
	}
	if offset >= size {
		return 0, nil
	}
	if remaining := size - offset; length > remaining {
		return remaining, nil
	}
	return length, nil
}
