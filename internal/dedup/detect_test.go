package dedup

import (
	"testing"

	"github.com/colefleming/dupless/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(cells ...string) types.Row {
	return types.ParseRow(cells)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		table types.Table
		col   int
		want  map[string]int // value -> expected count
	}{
		{
			name: "one duplicated value",
			table: types.Table{
				row("1", "a"), row("2", "b"), row("3", "a"), row("4", "c"),
			},
			col:  1,
			want: map[string]int{"a": 2},
		},
		{
			name:  "single row has no duplicates",
			table: types.Table{row("1", "x")},
			col:   1,
			want:  map[string]int{},
		},
		{
			name:  "short rows are skipped",
			table: types.Table{row("1", "a"), row("2")},
			col:   1,
			want:  map[string]int{},
		},
		{
			name:  "triple occurrence",
			table: types.Table{row("z"), row("z"), row("z")},
			col:   0,
			want:  map[string]int{"z": 3},
		},
		{
			name:  "empty table",
			table: types.Table{},
			col:   0,
			want:  map[string]int{},
		},
		{
			name:  "column beyond every row",
			table: types.Table{row("a"), row("b")},
			col:   5,
			want:  map[string]int{},
		},
		{
			name: "short row does not break a pair elsewhere",
			table: types.Table{
				row("1", "a"), row("2"), row("3", "a"),
			},
			col:  1,
			want: map[string]int{"a": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.table, tt.col)
			require.Len(t, got, len(tt.want))
			for value, count := range tt.want {
				sum := Fingerprint(types.ParseCell(value))
				assert.Equal(t, count, got[sum], "count for %q", value)
			}
		})
	}
}

func TestDetectCountsOnlyStringIdenticalValues(t *testing.T) {
	// "1" (integer) and "1.0" (float) share no fingerprint.
	table := types.Table{row("1"), row("1.0"), row("1")}
	got := Detect(table, 0)

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[Fingerprint(types.ParseCell("1"))])
}
