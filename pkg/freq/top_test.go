package freq

import (
	"reflect"
	"testing"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		symbol byte
		want   string
	}{
		{'A', "A"},
		{'z', "z"},
		{'0', "0"},
		{'\n', "0x0A"},
		{' ', "0x20"},
		{0x00, "0x00"},
		{0xFF, "0xFF"},
	}

	for _, tt := range tests {
		if got := Label(tt.symbol); got != tt.want {
			t.Errorf("Label(0x%02X) = %q, want %q", tt.symbol, got, tt.want)
		}
	}
}

func TestByLabel(t *testing.T) {
	counts := Count([]byte("AB\nB"))

	got := counts.ByLabel()
	want := map[string]int64{"A": 1, "B": 2, "0x0A": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByLabel() = %v, want %v", got, want)
	}
}

func TestTopSymbols(t *testing.T) {
	counts := Table{'A': 200, 'B': 300, 'C': 400, 'D': 400}

	got := TopSymbols(counts, 3)
	// C and D tie at 400; the lower byte value sorts first.
	want := []string{"C:400", "D:400", "B:300"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopSymbols(counts, 3) = %v, want %v", got, want)
	}
}

func TestTopSymbols_Limits(t *testing.T) {
	counts := Table{'A': 1, 'B': 2}

	if got := TopSymbols(counts, 10); len(got) != 2 {
		t.Errorf("TopSymbols(counts, 10) returned %d rows, want 2", len(got))
	}
	if got := TopSymbols(counts, 0); len(got) != 0 {
		t.Errorf("TopSymbols(counts, 0) returned %d rows, want 0", len(got))
	}
	if got := TopSymbols(nil, 5); len(got) != 0 {
		t.Errorf("TopSymbols(nil, 5) returned %d rows, want 0", len(got))
	}
}
