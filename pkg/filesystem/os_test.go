package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")
	require.NoError(t, os.WriteFile(testFile, testContent, 0644))

	// Stat / ReadFile
	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	// MkdirAll / ReadDir
	subDir := filepath.Join(tmpDir, "sub", "dir")
	require.NoError(t, fs.MkdirAll(subDir, 0755))

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // test.txt and sub/

	// Symlink / Lstat
	linkPath := filepath.Join(tmpDir, "link.txt")
	require.NoError(t, fs.Symlink(testFile, linkPath))

	target, err := os.Readlink(linkPath)
	require.NoError(t, err)
	assert.Equal(t, testFile, target)

	linfo, err := fs.Lstat(linkPath)
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&os.ModeSymlink)

	// Remove / RemoveAll
	require.NoError(t, fs.Remove(linkPath))
	_, err = fs.Lstat(linkPath)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.RemoveAll(filepath.Join(tmpDir, "sub")))
	_, err = fs.Stat(subDir)
	assert.True(t, os.IsNotExist(err))
}

func TestOSFS_EvalSymlinks(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()

	realDir := filepath.Join(tmpDir, "real")
	require.NoError(t, os.MkdirAll(realDir, 0755))
	linkDir := filepath.Join(tmpDir, "alias")
	require.NoError(t, os.Symlink(realDir, linkDir))

	resolved, err := fs.EvalSymlinks(linkDir)
	require.NoError(t, err)

	expected, err := filepath.EvalSymlinks(realDir)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)
	assert.True(t, filepath.IsAbs(resolved))

	_, err = fs.EvalSymlinks(filepath.Join(tmpDir, "missing"))
	assert.Error(t, err)
}
