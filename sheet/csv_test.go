package sheet_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sheetnet/a1"
	"github.com/katalvlaran/sheetnet/sheet"
)

func sampleSheet(t *testing.T) *sheet.Sheet {
	t.Helper()
	s := sheet.New()
	require.NoError(t, s.Set(a1.At(0, 0), "0", sheet.RoleInput))
	require.NoError(t, s.Set(a1.At(1, 0), "=MAX(0, SUM(ARRAYFORMULA($A$1:$A$1 * $A$2:$A$2)))", sheet.RoleActivation))
	require.NoError(t, s.Set(a1.At(0, 1), "0", sheet.RoleWeight))
	require.NoError(t, s.Set(a1.At(1, 1), ".5", sheet.RoleBias))
	return s
}

// TestWriteCSV_Text pins the literal output, including quoting of comma-bearing formulas.
func TestWriteCSV_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sheet.WriteCSV(&buf, sampleSheet(t)))
	want := "0,\"=MAX(0, SUM(ARRAYFORMULA($A$1:$A$1 * $A$2:$A$2)))\"\n" +
		"0,.5\n"
	assert.Equal(t, want, buf.String())
}

// TestWriteCSV_RoundTrip verifies a CSV reader sees a rectangular grid with the
// sheet's bounds and contents.
func TestWriteCSV_RoundTrip(t *testing.T) {
	s := sheet.New()
	require.NoError(t, s.Set(a1.At(3, 0), "a,b", sheet.RoleActivation))
	require.NoError(t, s.Set(a1.At(0, 4), "0", sheet.RoleWeight))

	var buf bytes.Buffer
	require.NoError(t, sheet.WriteCSV(&buf, s))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	rows, cols := s.Bounds()
	require.Len(t, records, rows)
	for _, rec := range records {
		require.Len(t, rec, cols)
	}
	assert.Equal(t, "a,b", records[0][3])
	assert.Equal(t, "0", records[4][0])
	assert.Empty(t, records[2][2])
}

// TestWriteCSV_Empty verifies an empty sheet writes nothing and errors.
func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, sheet.WriteCSV(&buf, sheet.New()), sheet.ErrEmptySheet)
	assert.Zero(t, buf.Len())
}

// TestWriteFile verifies the file content and that no temp files remain.
func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, sheet.WriteFile(path, sampleSheet(t)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, sheet.WriteCSV(&want, sampleSheet(t)))
	assert.Equal(t, want.String(), string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

// TestWriteFile_Failures verifies failed writes leave no file at the target path.
func TestWriteFile_Failures(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.csv")
	require.ErrorIs(t, sheet.WriteFile(empty, sheet.New()), sheet.ErrEmptySheet)
	assert.NoFileExists(t, empty)

	missing := filepath.Join(dir, "no", "such", "dir", "net.csv")
	require.Error(t, sheet.WriteFile(missing, sampleSheet(t)))
	assert.NoFileExists(t, missing)
}
