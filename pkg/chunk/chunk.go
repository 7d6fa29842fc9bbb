// Package chunk plans fixed-size byte ranges over a file.
package chunk

import "errors"

var (
	// ErrChunkSize reports a non-positive chunk size.
	ErrChunkSize = errors.New("chunk size must be positive")
	// ErrFileSize reports a negative file size.
	ErrFileSize = errors.New("file size must not be negative")
)

// Span describes one contiguous byte range of a file.
// Its ordinal position is its index in the planned slice.
type Span struct {
	Offset int64
	Length int64
}

// Plan partitions a file of fileSize bytes into spans of chunkSize bytes.
// Spans are contiguous, non-overlapping, and cover [0, fileSize) exactly.
// Every span has length chunkSize except the last, which holds the
// remainder. A zero-byte file yields no spans.
func Plan(fileSize, chunkSize int64) ([]Span, error) {
	if chunkSize <= 0 {
		return nil, ErrChunkSize
	}
	if fileSize < 0 {
		return nil, ErrFileSize
	}
	if fileSize == 0 {
		return []Span{}, nil
	}

	count := (fileSize + chunkSize - 1) / chunkSize
	spans := make([]Span, 0, count)
	for offset := int64(0); offset < fileSize; offset += chunkSize {
		length := chunkSize
		if remaining := fileSize - offset; remaining < length {
			length = remaining
		}
		spans = append(spans, Span{Offset: offset, Length: length})
	}

	return spans, nil
}
