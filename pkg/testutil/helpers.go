package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateFile writes content to baseDir/relPath, creating parent directories
func CreateFile(t *testing.T, baseDir, relPath, content string) string {
	t.Helper()

	path := filepath.Join(baseDir, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// CreateDir creates baseDir/relPath and any missing parents
func CreateDir(t *testing.T, baseDir, relPath string) string {
	t.Helper()

	path := filepath.Join(baseDir, relPath)
	require.NoError(t, os.MkdirAll(path, 0755))
	return path
}

// ListDir returns the sorted entry names of dir
func ListDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// AssertSymlinkTo checks that link is a symlink whose fully resolved target
// equals the fully resolved target path.
func AssertSymlinkTo(t *testing.T, link, target string) {
	t.Helper()

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "%s should be a symlink", link)

	resolvedLink, err := filepath.EvalSymlinks(link)
	require.NoError(t, err)
	resolvedTarget, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, resolvedTarget, resolvedLink)
}

// AssertRealDir checks that path is a directory and not a symlink
func AssertRealDir(t *testing.T, path string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "%s should be a directory", path)
	assert.Zero(t, info.Mode()&os.ModeSymlink, "%s should not be a symlink", path)
}

// AssertNotExists checks that nothing, not even a dangling link, is at path
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "%s should not exist", path)
}
