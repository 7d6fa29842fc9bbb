package gen

import (
	"bytes"
	"errors"
	"testing"
)

func TestNew_InvalidAlphabet(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"empty", ""},
		{"multi-char symbol", "AB,C"},
		{"empty symbol", "A,,B"},
		{"trailing comma", "A,B,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.spec, 1); !errors.Is(err, ErrAlphabet) {
				t.Errorf("got error %v, want ErrAlphabet", err)
			}
		})
	}
}

func TestGenerate_LengthAndMembership(t *testing.T) {
	g, err := New("A,B,C", 42)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	out := g.Generate(1000)
	if len(out) != 1000 {
		t.Fatalf("got %d bytes, want 1000", len(out))
	}

	seen := map[byte]bool{}
	for _, b := range out {
		if b != 'A' && b != 'B' && b != 'C' {
			t.Fatalf("got symbol %q outside alphabet", b)
		}
		seen[b] = true
	}
	if len(seen) != 3 {
		t.Errorf("got %d distinct symbols in 1000 draws, want 3", len(seen))
	}
}

func TestGenerate_SeedDeterminism(t *testing.T) {
	g1, err := New(DefaultAlphabet, 7)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g2, err := New(DefaultAlphabet, 7)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	a, b := g1.Generate(64), g2.Generate(64)
	if !bytes.Equal(a, b) {
		t.Errorf("same seed produced different output: %q vs %q", a, b)
	}

	g3, err := New(DefaultAlphabet, 8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if bytes.Equal(a, g3.Generate(64)) {
		t.Error("different seeds produced identical output")
	}
}

func TestWriteTo(t *testing.T) {
	g, err := New(DefaultAlphabet, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var buf bytes.Buffer
	const n = 100_000

	written, err := g.WriteTo(&buf, n)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if written != n {
		t.Errorf("got %d bytes written, want %d", written, n)
	}
	if buf.Len() != n {
		t.Errorf("got buffer length %d, want %d", buf.Len(), n)
	}

	for _, b := range buf.Bytes()[:256] {
		if b != 'A' && b != 'B' && b != 'C' && b != 'D' {
			t.Fatalf("got symbol %q outside alphabet", b)
		}
	}
}

func TestWriteTo_Zero(t *testing.T) {
	g, err := New(DefaultAlphabet, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var buf bytes.Buffer
	written, err := g.WriteTo(&buf, 0)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if written != 0 || buf.Len() != 0 {
		t.Errorf("got %d bytes written, want 0", written)
	}
}
