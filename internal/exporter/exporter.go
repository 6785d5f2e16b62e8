// Package exporter serializes a table to delimited text or a single-sheet
// spreadsheet. The output encoding is selected by the filename extension.
package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/colefleming/dupless/internal/types"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is used for spreadsheet output unless overridden.
const DefaultSheetName = "Sheet1"

// Write serializes the table to path, dispatching on the extension.
// Unsupported extensions are a caller error.
func Write(path string, table types.Table) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return WriteCSV(path, table)
	case ".xlsx":
		return WriteXLSX(path, table, DefaultSheetName)
	default:
		return fmt.Errorf("unsupported output type: %s", ext)
	}
}

// WriteCSV writes the table as UTF-8 delimited text with a generic
// 0..n-1 header row sized to the widest row.
func WriteCSV(path string, table types.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(indexHeader(table)); err != nil {
		return err
	}
	for _, row := range table {
		if err := w.Write(row.Strings()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteXLSX writes the table as a one-sheet spreadsheet with a generic
// 0..n-1 header row. Numeric and boolean cells keep their native type.
func WriteXLSX(path string, table types.Table, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	if sheetName != f.GetSheetName(0) {
		if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
			return err
		}
	}

	header := indexHeader(table)
	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerCells); err != nil {
		return err
	}

	for i, row := range table {
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = c.Native()
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, start, &cells); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// indexHeader builds the default header row: column indexes 0..n-1 where n
// is the widest row's width.
func indexHeader(table types.Table) []string {
	width := 0
	for _, row := range table {
		if len(row) > width {
			width = len(row)
		}
	}
	header := make([]string, width)
	for i := range header {
		header[i] = strconv.Itoa(i)
	}
	return header
}
