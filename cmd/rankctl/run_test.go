package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMatrixCSV(t *testing.T, dir string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(dir, "matrix.csv")
	var content string
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				content += ","
			}
			content += cell
		}
		content += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadMatrix_ParsesIntegerGrid(t *testing.T) {
	dir := t.TempDir()
	path := writeMatrixCSV(t, dir, [][]string{{"0", "0"}, {"1", "0"}})

	m, err := readMatrix(path)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {1, 0}}, m)
}

func TestReadMatrix_RejectsNonIntegerCell(t *testing.T) {
	dir := t.TempDir()
	path := writeMatrixCSV(t, dir, [][]string{{"0", "x"}, {"1", "0"}})

	_, err := readMatrix(path)
	assert.Error(t, err)
}

func TestReadMatrix_MissingFile(t *testing.T) {
	_, err := readMatrix(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
