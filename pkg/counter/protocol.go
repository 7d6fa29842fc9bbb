package counter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sarkissian001/perf-counter/pkg/chunkio"
	"github.com/sarkissian001/perf-counter/pkg/freq"
)

// EncodeTable writes t to w as a single JSON document keyed by decimal
// byte value. This is the pipe contract between the processes strategy
// and its chunk workers.
func EncodeTable(w io.Writer, t freq.Table) error {
	if err := json.NewEncoder(w).Encode(t); err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}
	return nil
}

// DecodeTable reads one table written by EncodeTable.
func DecodeTable(r io.Reader) (freq.Table, error) {
	var t freq.Table
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode table: %w", err)
	}
	if t == nil {
		t = make(freq.Table)
	}
	return t, nil
}

// CountSpan reads one span of the file at path and writes its frequency
// table to w. It is the entire job of a single chunk worker process.
func CountSpan(path string, offset, length int64, w io.Writer) error {
	reader, err := chunkio.OpenFile(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	data, err := reader.ReadRange(offset, length)
	if err != nil {
		return err
	}

	return EncodeTable(w, freq.Count(data))
}
