package freq

import (
	"fmt"
	"sort"
)

// Label returns the display form of a symbol: the character itself for
// visible ASCII, a hex form like 0x0A otherwise.
func Label(b byte) string {
	if b >= 0x21 && b <= 0x7E {
		return string(b)
	}
	return fmt.Sprintf("0x%02X", b)
}

// ByLabel converts the table to a display map keyed by Label.
func (t Table) ByLabel() map[string]int64 {
	labeled := make(map[string]int64, len(t))
	for b, count := range t {
		labeled[Label(b)] = count
	}
	return labeled
}

// TopSymbols returns the top N counts formatted as "label:count" strings
// (e.g. "A:200"), sorted by count descending with ties broken by byte
// value.
func TopSymbols(t Table, n int) []string {
	type kv struct {
		Symbol byte
		Count  int64
	}

	ss := make([]kv, 0, len(t))
	for b, count := range t {
		ss = append(ss, kv{b, count})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count != ss[j].Count {
			return ss[i].Count > ss[j].Count
		}
		return ss[i].Symbol < ss[j].Symbol
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	top := make([]string, limit)
	for i := 0; i < limit; i++ {
		top[i] = fmt.Sprintf("%s:%d", Label(ss[i].Symbol), ss[i].Count)
	}

	return top
}
