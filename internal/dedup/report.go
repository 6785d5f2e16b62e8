package dedup

import (
	"strconv"
	"strings"

	"github.com/colefleming/dupless/internal/types"
)

// BuildReport produces one entry per duplicate fingerprint: the original
// value (captured at its first occurrence), the occurrence count from
// duplicates, and the 1-based line numbers joined ascending. Entries are
// emitted in first-seen order, so the report is deterministic for a given
// table.
func BuildReport(duplicates map[Sum]int, table types.Table, col int) []types.ReportRow {
	values := make(map[Sum]types.Cell)
	lines := make(map[Sum][]int)
	var order []Sum

	for i, row := range table {
		if col >= len(row) {
			continue
		}
		sum := Fingerprint(row[col])
		if _, dup := duplicates[sum]; !dup {
			continue
		}
		if _, seen := values[sum]; !seen {
			values[sum] = row[col]
			order = append(order, sum)
		}
		lines[sum] = append(lines[sum], i+1)
	}

	report := make([]types.ReportRow, 0, len(order))
	for _, sum := range order {
		nums := make([]string, len(lines[sum]))
		for i, n := range lines[sum] {
			nums[i] = strconv.Itoa(n)
		}
		report = append(report, types.ReportRow{
			Value:       values[sum],
			Count:       duplicates[sum],
			LineNumbers: strings.Join(nums, ","),
		})
	}
	return report
}
