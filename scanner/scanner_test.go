package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerFindsDelimitedFiles(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "typediscover-scanner")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	files := map[string]string{
		"sales.csv":         "id,amount\n1,2.5\n",
		"inventory.tsv":     "id\tcount\n1\t3\n",
		"notes.txt":         "not delimited data",
		"nested/orders.csv": "id,qty\n1,4\n",
	}

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}

	scanner := New(tempDir, ".csv", ".tsv")
	found, err := scanner.Scan()
	require.NoError(t, err)
	assert.Equal(t, 3, len(found), "should find 3 csv/tsv files")

	foundPaths := make(map[string]bool)
	for _, f := range found {
		foundPaths[f.Path] = true
		assert.Greater(t, f.Size, int64(0))
	}

	assert.True(t, foundPaths[filepath.Join(tempDir, "sales.csv")])
	assert.True(t, foundPaths[filepath.Join(tempDir, "inventory.tsv")])
	assert.True(t, foundPaths[filepath.Join(tempDir, "nested/orders.csv")])
	assert.False(t, foundPaths[filepath.Join(tempDir, "notes.txt")])

	byPath := make(map[string]FileInfo)
	for _, f := range found {
		byPath[f.Path] = f
	}
	assert.Equal(t, ',', byPath[filepath.Join(tempDir, "sales.csv")].Delimiter)
	assert.Equal(t, '\t', byPath[filepath.Join(tempDir, "inventory.tsv")].Delimiter)
	assert.Equal(t, ',', byPath[filepath.Join(tempDir, "nested/orders.csv")].Delimiter)
}

func TestScannerSniffsTabDelimiterFromCSVExtension(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "typediscover-scanner-sniff")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	// A .csv file whose content is actually tab-delimited should still be
	// sniffed as tab, not trusted blindly off its extension.
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "mislabeled.csv"), []byte("id\tamount\n1\t2.5\n"), 0o644))

	scanner := New(tempDir, ".csv")
	found, err := scanner.Scan()
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, '\t', found[0].Delimiter)
}

func TestScannerDefaultExtensions(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "typediscover-scanner-default")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "a.csv"), []byte("a\n1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "b.json"), []byte("{}"), 0o644))

	scanner := New(tempDir)
	found, err := scanner.Scan()
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, filepath.Join(tempDir, "a.csv"), found[0].Path)
}
