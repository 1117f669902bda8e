package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindHCLFilesInDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.hcl"), []byte("site {}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "more.hcl"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(""), 0o644))

	files, err := FindHCLFiles(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestFindHCLFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.hcl")
	require.NoError(t, os.WriteFile(path, []byte("site {}"), 0o644))

	files, err := FindHCLFiles(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestFindHCLFilesRejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	_, err := FindHCLFiles(path)
	assert.Error(t, err)
}

func TestFindHCLFilesMissingPath(t *testing.T) {
	files, err := FindHCLFiles(filepath.Join(t.TempDir(), "nowhere"))
	require.NoError(t, err)
	assert.Nil(t, files)
}
