package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tablemerge/internal/errors"
)

func readArtifact(t *testing.T, path string) [][]string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := strings.TrimPrefix(string(data), "\uFEFF")
	rows, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVWriter_Write(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir, false)

	path, err := writer.Write("combined_test.csv",
		[]string{"Name", "Age", "City"},
		[][]string{
			{"Alice", "30", "New York"},
			{"Bob", "25", ""},
		})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "combined_test.csv"), path)

	rows := readArtifact(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Age", "City"}, rows[0])
	assert.Equal(t, []string{"Alice", "30", "New York"}, rows[1])
	assert.Equal(t, []string{"Bob", "25", ""}, rows[2])
}

func TestCSVWriter_QuotesEmbeddedDelimiters(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir, false)

	path, err := writer.Write("single_test.csv",
		[]string{"Name", "Description"},
		[][]string{{"Widget", `contains, comma and "quotes"`}})
	require.NoError(t, err)

	rows := readArtifact(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, `contains, comma and "quotes"`, rows[1][1])
}

func TestCSVWriter_BOMPrefix(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir, true)

	path, err := writer.Write("single_bom.csv", []string{"A"}, [][]string{{"1"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])

	// The parsed content is unaffected by the BOM
	rows := readArtifact(t, path)
	assert.Equal(t, []string{"A"}, rows[0])
}

func TestCSVWriter_CreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	writer := NewCSVWriter(dir, false)

	_, err := writer.Write("single_x.csv", []string{"A"}, nil)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "single_x.csv"))
	assert.NoError(t, err)
}

func TestCSVWriter_HeaderOnly(t *testing.T) {
	writer := NewCSVWriter(t.TempDir(), false)

	path, err := writer.Write("single_empty.csv", []string{"A", "B"}, nil)
	require.NoError(t, err)

	rows := readArtifact(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"A", "B"}, rows[0])
}

func TestCSVWriter_StorageError(t *testing.T) {
	// Point the writer at a directory path that is actually a file
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	writer := NewCSVWriter(filepath.Join(blocker, "out"), false)

	_, err := writer.Write("single_x.csv", []string{"A"}, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}
