// Package importer assembles a table from uploaded CSV and XLSX files.
// Each file contributes its data rows (first row is treated as a header);
// a file that cannot be read contributes nothing and a per-file error,
// never aborting the batch.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/colefleming/dupless/internal/types"

	"github.com/saintfish/chardet"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/htmlindex"
)

// FileData holds one file's contribution: its header row and its data rows.
type FileData struct {
	Headers []string
	Rows    types.Table
}

// ImportFiles reads every path in order and concatenates the data rows into
// one table. The returned headers come from the first file that loads.
// Failures are collected per file; the batch never fails as a whole.
func ImportFiles(paths []string) (types.Table, []string, []types.ImportError) {
	var table types.Table
	var headers []string
	var errs []types.ImportError

	for _, path := range paths {
		data, err := ReadFile(path)
		if err != nil {
			errs = append(errs, types.ImportError{File: filepath.Base(path), Err: err})
			continue
		}
		if headers == nil {
			headers = data.Headers
		}
		table = append(table, data.Rows...)
	}
	return table, headers, errs
}

// ReadFile reads a single file, dispatching on its extension.
func ReadFile(path string) (*FileData, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

func readCSV(path string) (*FileData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text, err := decodeText(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // ragged rows are tolerated downstream
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	return fromRecords(records), nil
}

func readXLSX(path string) (*FileData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	return fromRecords(rows), nil
}

func fromRecords(records [][]string) *FileData {
	data := &FileData{Headers: records[0]}
	for _, record := range records[1:] {
		data.Rows = append(data.Rows, types.ParseRow(record))
	}
	return data
}

// decodeText returns the file content as UTF-8, sniffing the charset of
// anything that is not already valid UTF-8.
func decodeText(raw []byte) (string, error) {
	raw = stripBOM(raw)
	// NUL bytes mean a wide encoding like UTF-16 even when the bytes
	// happen to be valid UTF-8.
	if utf8.Valid(raw) && bytes.IndexByte(raw, 0) < 0 {
		return string(raw), nil
	}

	best, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil {
		return "", fmt.Errorf("detect encoding: %w", err)
	}
	enc, err := htmlindex.Get(best.Charset)
	if err != nil {
		return "", fmt.Errorf("unsupported encoding %q: %w", best.Charset, err)
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", best.Charset, err)
	}
	return string(decoded), nil
}

func stripBOM(raw []byte) []byte {
	if len(raw) >= 3 && raw[0] == 0xEF && raw[1] == 0xBB && raw[2] == 0xBF {
		return raw[3:]
	}
	return raw
}
