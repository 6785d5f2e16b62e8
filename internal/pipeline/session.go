// Package pipeline drives one detect-and-remove run over an imported table.
// A Session replaces ad-hoc global state: it owns the table, the selected
// column, and the results, and moves through Idle -> Loaded -> Processed.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/colefleming/dupless/internal/dedup"
	"github.com/colefleming/dupless/internal/importer"
	"github.com/colefleming/dupless/internal/types"

	"github.com/google/uuid"
)

// State is the session's position in the pipeline.
type State int

const (
	// StateIdle means no table has been loaded yet.
	StateIdle State = iota
	// StateLoaded means a table is imported and awaiting a column choice.
	StateLoaded
	// StateProcessed means detection has run and results are available.
	StateProcessed
)

// ValidationError rejects a column selection outside the first row's width.
type ValidationError struct {
	Column int // 1-based, as the user entered it
	Width  int
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("column %d does not exist: the first row has %d column(s)", e.Column, e.Width)
}

// StrictRowsError refuses processing when rows are too short for the
// selected column and strict mode is on.
type StrictRowsError struct {
	Lines []int
}

func (e StrictRowsError) Error() string {
	parts := make([]string, len(e.Lines))
	for i, n := range e.Lines {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d row(s) too short for the selected column (lines %s)", len(e.Lines), strings.Join(parts, ","))
}

// Session carries one run of the pipeline from import to results.
type Session struct {
	ID         uuid.UUID
	StrictRows bool

	state      State
	table      types.Table
	headers    []string
	importErrs []types.ImportError

	column int // 0-based; valid only in StateLoaded and later

	report []types.ReportRow
	result types.Table
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{ID: uuid.New()}
}

func (s *Session) State() State                      { return s.state }
func (s *Session) Table() types.Table                { return s.table }
func (s *Session) Headers() []string                 { return s.headers }
func (s *Session) ImportErrors() []types.ImportError { return s.importErrs }
func (s *Session) Report() []types.ReportRow         { return s.report }
func (s *Session) Result() types.Table               { return s.result }

// Column returns the selected 0-based column index.
func (s *Session) Column() int { return s.column }

// Load imports the given files into a single combined table, rows
// concatenated in argument order. Per-file failures are recorded and
// surfaced via ImportErrors; Load fails only when no file contributed any
// rows. Any previous results are discarded.
func (s *Session) Load(paths []string) error {
	table, headers, errs := importer.ImportFiles(paths)

	s.table = table
	s.headers = headers
	s.importErrs = errs
	s.report = nil
	s.result = nil

	if len(table) == 0 {
		s.state = StateIdle
		if len(errs) > 0 {
			return fmt.Errorf("no rows imported from %d file(s)", len(paths))
		}
		return fmt.Errorf("imported files contain no data rows")
	}
	s.state = StateLoaded
	return nil
}

// SelectColumn validates a 1-based column number against the first row's
// width and stores it 0-based. On failure the session state is unchanged.
// Selecting a column after processing drops the previous results.
func (s *Session) SelectColumn(oneBased int) error {
	if s.state == StateIdle {
		return fmt.Errorf("no table loaded")
	}
	width := len(s.table[0])
	if oneBased < 1 || oneBased > width {
		return ValidationError{Column: oneBased, Width: width}
	}
	s.column = oneBased - 1
	s.report = nil
	s.result = nil
	s.state = StateLoaded
	return nil
}

// Process runs detection, reporting, and deduplication over the loaded
// table and selected column. The deduplicated table is produced even when
// no duplicates exist, so the user can still save the output.
func (s *Session) Process() error {
	if s.state == StateIdle {
		return fmt.Errorf("no table loaded")
	}

	if s.StrictRows {
		if short := dedup.ShortRows(s.table, s.column); len(short) > 0 {
			return StrictRowsError{Lines: short}
		}
	}

	duplicates := dedup.Detect(s.table, s.column)
	s.report = dedup.BuildReport(duplicates, s.table, s.column)
	s.result = dedup.Dedupe(s.table, s.column)
	s.state = StateProcessed
	return nil
}

// HasDuplicates reports whether the last Process found any duplicates.
func (s *Session) HasDuplicates() bool { return len(s.report) > 0 }
