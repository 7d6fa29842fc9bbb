package chunk

import (
	"errors"
	"testing"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name      string
		fileSize  int64
		chunkSize int64
		wantCount int
		wantLast  int64
	}{
		{name: "exact multiple", fileSize: 100, chunkSize: 10, wantCount: 10, wantLast: 10},
		{name: "ragged tail", fileSize: 105, chunkSize: 10, wantCount: 11, wantLast: 5},
		{name: "single partial chunk", fileSize: 7, chunkSize: 10, wantCount: 1, wantLast: 7},
		{name: "chunk equals file", fileSize: 10, chunkSize: 10, wantCount: 1, wantLast: 10},
		{name: "chunk larger than file", fileSize: 1300, chunkSize: 1000000, wantCount: 1, wantLast: 1300},
		{name: "unit chunks", fileSize: 5, chunkSize: 1, wantCount: 5, wantLast: 1},
		{name: "empty file", fileSize: 0, chunkSize: 10, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, err := Plan(tt.fileSize, tt.chunkSize)
			if err != nil {
				t.Fatalf("Plan(%d, %d) error = %v", tt.fileSize, tt.chunkSize, err)
			}
			if len(spans) != tt.wantCount {
				t.Fatalf("Plan(%d, %d) returned %d spans, want %d", tt.fileSize, tt.chunkSize, len(spans), tt.wantCount)
			}
			if tt.wantCount > 0 {
				last := spans[len(spans)-1]
				if last.Length != tt.wantLast {
					t.Errorf("last span length = %d, want %d", last.Length, tt.wantLast)
				}
			}
		})
	}
}

func TestPlan_Coverage(t *testing.T) {
	// Spans must tile [0, fileSize) contiguously for any chunk size.
	fileSizes := []int64{0, 1, 7, 13, 100, 1300, 99999}
	chunkSizes := []int64{1, 7, 10, 1000000}

	for _, fileSize := range fileSizes {
		for _, chunkSize := range chunkSizes {
			spans, err := Plan(fileSize, chunkSize)
			if err != nil {
				t.Fatalf("Plan(%d, %d) error = %v", fileSize, chunkSize, err)
			}

			var next, total int64
			for i, s := range spans {
				if s.Offset != next {
					t.Fatalf("Plan(%d, %d) span %d offset = %d, want %d", fileSize, chunkSize, i, s.Offset, next)
				}
				if s.Length <= 0 {
					t.Fatalf("Plan(%d, %d) span %d has non-positive length %d", fileSize, chunkSize, i, s.Length)
				}
				if i < len(spans)-1 && s.Length != chunkSize {
					t.Fatalf("Plan(%d, %d) span %d length = %d, want %d", fileSize, chunkSize, i, s.Length, chunkSize)
				}
				if s.Length > chunkSize {
					t.Fatalf("Plan(%d, %d) span %d length = %d exceeds chunk size", fileSize, chunkSize, i, s.Length)
				}
				next = s.Offset + s.Length
				total += s.Length
			}

			if total != fileSize {
				t.Errorf("Plan(%d, %d) covers %d bytes, want %d", fileSize, chunkSize, total, fileSize)
			}

			wantCount := int64(0)
			if fileSize > 0 {
				wantCount = (fileSize + chunkSize - 1) / chunkSize
			}
			if int64(len(spans)) != wantCount {
				t.Errorf("Plan(%d, %d) returned %d spans, want %d", fileSize, chunkSize, len(spans), wantCount)
			}
		}
	}
}

func TestPlan_InvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		fileSize  int64
		chunkSize int64
		wantErr   error
	}{
		{name: "zero chunk size", fileSize: 100, chunkSize: 0, wantErr: ErrChunkSize},
		{name: "negative chunk size", fileSize: 100, chunkSize: -5, wantErr: ErrChunkSize},
		{name: "negative file size", fileSize: -1, chunkSize: 10, wantErr: ErrFileSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Plan(tt.fileSize, tt.chunkSize)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Plan(%d, %d) error = %v, want %v", tt.fileSize, tt.chunkSize, err, tt.wantErr)
			}
		})
	}
}
