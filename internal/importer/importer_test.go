package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/colefleming/dupless/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestReadFileCSV(t *testing.T) {
	path := writeTempCSV(t, "input.csv", []byte("Name,Email\nAlice,a@example.com\nBob,b@example.com\n"))

	data, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Email"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Alice", data.Rows[0][0].String())
	assert.Equal(t, "b@example.com", data.Rows[1][1].String())
}

func TestReadFileCSVRaggedRows(t *testing.T) {
	path := writeTempCSV(t, "ragged.csv", []byte("A,B\n1,a\n2\n3,c\n"))

	data, err := ReadFile(path)
	require.NoError(t, err)

	require.Len(t, data.Rows, 3)
	assert.Len(t, data.Rows[1], 1)
}

func TestReadFileCSVLatin1(t *testing.T) {
	// "Nom,Prénom\nZoé,Müller" in ISO-8859-1.
	content := []byte("Nom,Pr\xe9nom\nZo\xe9,M\xfcller\n")
	path := writeTempCSV(t, "latin1.csv", content)

	data, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Nom", "Prénom"}, data.Headers)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "Zoé", data.Rows[0][0].String())
	assert.Equal(t, "Müller", data.Rows[0][1].String())
}

func TestReadFileCSVWithBOM(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("A\nx\n")...)
	path := writeTempCSV(t, "bom.csv", content)

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, data.Headers)
}

func TestReadFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"ID", "City"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{1, "Oslo"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{2, "Lima"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	data, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "City"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Oslo", data.Rows[0][1].String())
	assert.Equal(t, types.KindInteger, data.Rows[1][0].Kind)
}

func TestReadFileUnsupportedExtension(t *testing.T) {
	path := writeTempCSV(t, "legacy.xls", []byte("not a real xls"))

	_, err := ReadFile(path)
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestReadFileEmptyCSV(t *testing.T) {
	path := writeTempCSV(t, "empty.csv", nil)

	_, err := ReadFile(path)
	assert.ErrorContains(t, err, "empty file")
}

func TestImportFilesConcatenatesAndCollectsErrors(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	require.NoError(t, os.WriteFile(first, []byte("H\na\nb\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("H\nc\n"), 0o644))
	missing := filepath.Join(dir, "missing.csv")

	table, headers, errs := ImportFiles([]string{first, missing, second})

	assert.Equal(t, []string{"H"}, headers)
	require.Len(t, table, 3)
	assert.Equal(t, "a", table[0][0].String())
	assert.Equal(t, "c", table[2][0].String())

	require.Len(t, errs, 1)
	assert.Equal(t, "missing.csv", errs[0].File)
}
