// Package gen produces random test corpora drawn from a fixed symbol
// alphabet.
package gen

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
)

// DefaultAlphabet is the symbol set used when none is configured.
const DefaultAlphabet = "A,B,C,D"

const batchSize = 32 * 1024

// ErrAlphabet indicates a malformed alphabet string.
var ErrAlphabet = errors.New("alphabet symbols must be single characters separated by commas")

// Generator draws random symbols from a parsed alphabet.
type Generator struct {
	alphabet []byte
	rng      *rand.Rand
}

// New parses a comma-separated alphabet such as "A,B,C,D" and returns a
// generator over it. A zero seed picks a time-based one; any other seed
// makes the output deterministic.
func New(alphabet string, seed int64) (*Generator, error) {
	symbols, err := parseAlphabet(alphabet)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		alphabet: symbols,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

func parseAlphabet(spec string) ([]byte, error) {
	parts := strings.Split(spec, ",")

	symbols := make([]byte, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrAlphabet, part)
		}
		symbols = append(symbols, part[0])
	}
	return symbols, nil
}

// Generate returns n random symbols in memory. Intended for small
// corpora; use WriteTo for anything file-sized.
func (g *Generator) Generate(n int64) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = g.alphabet[g.rng.Intn(len(g.alphabet))]
	}
	return out
}

// WriteTo streams n random symbols to w in fixed-size batches and
// returns the number of bytes written.
func (g *Generator) WriteTo(w io.Writer, n int64) (int64, error) {
	buf := make([]byte, batchSize)

	var written int64
	for written < n {
		batch := int64(len(buf))
		if remaining := n - written; remaining < batch {
			batch = remaining
		}

		for i := int64(0); i < batch; i++ {
			buf[i] = g.alphabet[g.rng.Intn(len(g.alphabet))]
		}

		wn, err := w.Write(buf[:batch])
		written += int64(wn)
		if err != nil {
			return written, fmt.Errorf("failed to write corpus: %w", err)
		}
	}
	return written, nil
}
