package types

import "strconv"

// Kind classifies a cell's scalar value.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindInteger
	KindFloat
	KindBool
)

// Cell is one scalar value in a row. It carries its kind and its canonical
// string form; the string form is the single representation used for
// duplicate comparison. Cells parsed from a file keep the source text
// verbatim, so "1" and "1.0" stay distinct even though both are numeric.
type Cell struct {
	Kind Kind
	raw  string
}

// String returns the cell's canonical string form.
func (c Cell) String() string { return c.raw }

// Text builds a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, raw: s} }

// Int builds an integer cell; the canonical form is base-10.
func Int(v int64) Cell { return Cell{Kind: KindInteger, raw: strconv.FormatInt(v, 10)} }

// Float builds a float cell; the canonical form is the shortest
// round-tripping decimal (strconv 'g', precision -1).
func Float(v float64) Cell {
	return Cell{Kind: KindFloat, raw: strconv.FormatFloat(v, 'g', -1, 64)}
}

// Bool builds a boolean cell; the canonical form is "true" or "false".
func Bool(v bool) Cell { return Cell{Kind: KindBool, raw: strconv.FormatBool(v)} }

// Empty builds an empty cell; the canonical form is "".
func Empty() Cell { return Cell{Kind: KindEmpty} }

// ParseCell classifies raw source text into a cell kind. The text itself is
// kept verbatim as the canonical form regardless of the detected kind.
func ParseCell(raw string) Cell {
	if raw == "" {
		return Cell{Kind: KindEmpty}
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Cell{Kind: KindInteger, raw: raw}
	}
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		return Cell{Kind: KindFloat, raw: raw}
	}
	if raw == "true" || raw == "false" {
		return Cell{Kind: KindBool, raw: raw}
	}
	return Cell{Kind: KindText, raw: raw}
}

// Native returns the cell's value as the Go type matching its kind, for
// writers that support typed cells. Falls back to the string form when the
// canonical text no longer parses as the detected kind.
func (c Cell) Native() any {
	switch c.Kind {
	case KindInteger:
		if v, err := strconv.ParseInt(c.raw, 10, 64); err == nil {
			return v
		}
	case KindFloat:
		if v, err := strconv.ParseFloat(c.raw, 64); err == nil {
			return v
		}
	case KindBool:
		if v, err := strconv.ParseBool(c.raw); err == nil {
			return v
		}
	case KindEmpty:
		return nil
	}
	return c.raw
}

// Row is an ordered sequence of cells. Rows in one table may differ in
// width; a row's line number is its 0-based position in the table plus 1.
type Row []Cell

// Table is an ordered sequence of rows from one or more imported files,
// concatenated in upload order.
type Table []Row

// ParseRow converts raw source strings into a row.
func ParseRow(raw []string) Row {
	row := make(Row, len(raw))
	for i, s := range raw {
		row[i] = ParseCell(s)
	}
	return row
}

// Strings returns the row's canonical string forms, for serialization.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.String()
	}
	return out
}

// ReportRow is one duplicate report entry: the shared value, how many rows
// carry it, and the comma-joined ascending 1-based line numbers.
type ReportRow struct {
	Value       Cell
	Count       int
	LineNumbers string
}

// ImportError records a single file that could not contribute rows.
// Import errors are surfaced to the user but never abort the batch.
type ImportError struct {
	File string
	Err  error
}

func (e ImportError) Error() string { return e.File + ": " + e.Err.Error() }

func (e ImportError) Unwrap() error { return e.Err }
