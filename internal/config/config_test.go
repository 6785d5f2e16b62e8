package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Point at a nonexistent file so only defaults apply.
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "data_without_duplicates.xlsx", s.OutputFile)
	assert.Equal(t, "Sheet1", s.SheetName)
	assert.False(t, s.StrictRows)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := &Settings{
		OutputFile: "clean.csv",
		SheetName:  "Data",
		StrictRows: true,
	}
	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
