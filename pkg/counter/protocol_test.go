package counter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sarkissian001/perf-counter/pkg/freq"
)

func TestTableRoundTrip(t *testing.T) {
	want := freq.Table{'A': 200, 'B': 300, 0x00: 3, 0xFF: 1}

	var buf bytes.Buffer
	if err := EncodeTable(&buf, want); err != nil {
		t.Fatalf("EncodeTable failed: %v", err)
	}

	got, err := DecodeTable(&buf)
	if err != nil {
		t.Fatalf("DecodeTable failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecodeTable_Empty(t *testing.T) {
	got, err := DecodeTable(strings.NewReader("{}\n"))
	if err != nil {
		t.Fatalf("DecodeTable failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty table", got)
	}
}

func TestDecodeTable_Garbage(t *testing.T) {
	if _, err := DecodeTable(strings.NewReader("not a table")); err == nil {
		t.Error("expected error for garbage input, got nil")
	}
}

func TestCountSpan(t *testing.T) {
	path := writeCorpus(t, strings.Repeat("ABCD", 25))

	tests := []struct {
		name   string
		offset int64
		length int64
		want   freq.Table
	}{
		{"start", 0, 10, freq.Table{'A': 3, 'B': 3, 'C': 2, 'D': 2}},
		{"tail past end", 95, 10, freq.Table{'D': 2, 'A': 1, 'B': 1, 'C': 1}},
		{"beyond end", 100, 10, freq.Table{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := CountSpan(path, tt.offset, tt.length, &buf); err != nil {
				t.Fatalf("CountSpan failed: %v", err)
			}

			got, err := DecodeTable(&buf)
			if err != nil {
				t.Fatalf("DecodeTable failed: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCountSpan_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := CountSpan("no-such-file.txt", 0, 10, &buf); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
