package dedup

import "github.com/colefleming/dupless/internal/types"

// Dedupe returns a new table with exactly one row per distinct value at col:
// the last-occurring row, with survivors keeping their original relative
// order. Rows too short to contain col never survive. The input table is
// not modified.
func Dedupe(table types.Table, col int) types.Table {
	seen := make(map[Sum]struct{})
	var kept types.Table

	// Walk back to front so the last occurrence wins.
	for i := len(table) - 1; i >= 0; i-- {
		row := table[i]
		if col >= len(row) {
			continue
		}
		sum := Fingerprint(row[col])
		if _, ok := seen[sum]; ok {
			continue
		}
		seen[sum] = struct{}{}
		kept = append(kept, row)
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}

// ShortRows returns the 1-based line numbers of rows too narrow to contain
// col. These rows are silently excluded from detection and dedup output;
// strict mode uses this to refuse processing instead.
func ShortRows(table types.Table, col int) []int {
	var lines []int
	for i, row := range table {
		if col >= len(row) {
			lines = append(lines, i+1)
		}
	}
	return lines
}
