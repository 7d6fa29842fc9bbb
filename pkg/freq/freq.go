// Package freq counts byte frequencies and merges partial tables.
package freq

// Table maps a byte value to its occurrence count.
type Table map[byte]int64

// Count tallies every byte of data. Empty input yields an empty table.
func Count(data []byte) Table {
	counts := make(Table)
	for _, b := range data {
		counts[b]++
	}
	return counts
}

// Merge aggregates partial tables into a single table by key-wise
// summation. The result is independent of partial order.
func Merge(partials []Table) Table {
	final := make(Table)

	for _, counts := range partials {
		for b, count := range counts {
			final[b] += count
		}
	}

	return final
}

// Total returns the sum of all counts, which equals the number of bytes
// counted.
func (t Table) Total() int64 {
	var total int64
	for _, count := range t {
		total += count
	}
	return total
}

// Equal reports whether two tables hold identical counts.
func (t Table) Equal(other Table) bool {
	if len(t) != len(other) {
		return false
	}
	for b, count := range t {
		if other[b] != count {
			return false
		}
	}
	return true
}
