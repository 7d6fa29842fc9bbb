package chunkio

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// MmapReader serves ranges from a memory-mapped file.
type MmapReader struct {
	r *mmap.ReaderAt
}

// OpenMmap maps path into memory.
func OpenMmap(path string) (*MmapReader, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to mmap file: %w", err)
	}
	return &MmapReader{r: r}, nil
}

// ReadRange returns up to length bytes starting at offset with the same
// EOF truncation behavior as FileReader.
func (m *MmapReader) ReadRange(offset, length int64) ([]byte, error) {
	length, err := clampRange(offset, length, m.Size())
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, length)
	n, err := m.r.ReadAt(buf, offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read %d bytes at offset %d: %w", length, offset, err)
	}
	return buf[:n], nil
}

// Size returns the mapped length.
func (m *MmapReader) Size() int64 { return int64(m.r.Len()) }

func (m *MmapReader) Close() error { return m.r.Close() }
