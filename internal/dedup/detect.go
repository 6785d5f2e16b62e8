package dedup

import "github.com/colefleming/dupless/internal/types"

// Detect scans one column across the whole table and returns every
// fingerprint that occurs in more than one row, with its occurrence count.
// Rows too short to contain col are skipped; an empty table or a column
// beyond every row's width yields an empty result.
func Detect(table types.Table, col int) map[Sum]int {
	occurrences := make(map[Sum]int)
	for _, row := range table {
		if col >= len(row) {
			continue
		}
		occurrences[Fingerprint(row[col])]++
	}

	duplicates := make(map[Sum]int)
	for sum, count := range occurrences {
		if count > 1 {
			duplicates[sum] = count
		}
	}
	return duplicates
}
