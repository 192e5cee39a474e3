package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/sef-spiri/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("<x/>"), 0600))
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.xml")
	writeFile(t, testFile)

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.xml")))
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.xml")
	writeFile(t, testFile)

	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nonexistent")))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	newDir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, fileutils.EnsureDirectoryExists(newDir))
	assert.True(t, fileutils.DirectoryExists(newDir))
	require.NoError(t, fileutils.EnsureDirectoryExists(newDir))
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "spiri.xml")

	f, err := fileutils.CreateFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.True(t, fileutils.FileExists(path))
}

func TestEnsureExtension(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"spiri", "spiri.xml"},
		{"spiri.xml", "spiri.xml"},
		{"spiri.XML", "spiri.XML"},
		{"out/2025", "out/2025.xml"},
		{"report.txt", "report.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, fileutils.EnsureExtension(tt.in, fileutils.XMLExtension))
		})
	}
}

func TestListFilesWithExtension(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "b.xml"))
	writeFile(t, filepath.Join(tmpDir, "a.XML"))
	writeFile(t, filepath.Join(tmpDir, "notes.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "sub.xml"), 0750))

	files, err := fileutils.ListFilesWithExtension(tmpDir, ".xml")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "a.XML"), filepath.Join(tmpDir, "b.xml")}, files)

	_, err = fileutils.ListFilesWithExtension(filepath.Join(tmpDir, "missing"), ".xml")
	assert.Error(t, err)
}

func TestExpandSelection(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "batch")
	require.NoError(t, os.Mkdir(dir, 0750))
	writeFile(t, filepath.Join(dir, "2.xml"))
	writeFile(t, filepath.Join(dir, "1.xml"))
	single := filepath.Join(tmpDir, "z.xml")
	writeFile(t, single)
	other := filepath.Join(tmpDir, "readme.md")
	writeFile(t, other)
	missing := filepath.Join(tmpDir, "gone.xml")

	files, err := fileutils.ExpandSelection([]string{single, dir, other, missing, single, ""})
	require.NoError(t, err)
	assert.Equal(t, []string{
		single,
		filepath.Join(dir, "1.xml"),
		filepath.Join(dir, "2.xml"),
		missing,
		single,
	}, files)
}

func TestExpandSelection_Empty(t *testing.T) {
	files, err := fileutils.ExpandSelection([]string{"notes.txt"})
	require.NoError(t, err)
	assert.Empty(t, files)
}
